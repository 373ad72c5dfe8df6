// preview renders the ContextAware icon set in memory and shows it in a
// window so the placeholder art can be inspected without installing the
// extension. Usage: go run ./cmd/preview
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ki3ani/ContextAware/icons"
)

const (
	screenWidth  = 360
	screenHeight = 200
	padding      = 24
)

var colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}

type tile struct {
	img  *ebiten.Image
	size int
}

// Viewer lays the icons out left to right, vertically centered
type Viewer struct {
	tiles []tile
}

func (v *Viewer) Update() error {
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	x := padding
	for _, t := range v.tiles {
		y := (screenHeight - t.size) / 2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(t.img, op)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%dpx", t.size), x, y+t.size+6)
		x += t.size + padding
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg := icons.DefaultConfig()
	svgData, err := os.ReadFile(cfg.LogoPath)
	if err != nil {
		svgData = nil
	}

	v := &Viewer{}
	for _, size := range cfg.Sizes {
		img, err := renderOne(cfg, size, svgData)
		if err != nil {
			log.Fatal(err)
		}
		v.tiles = append(v.tiles, tile{img: ebiten.NewImageFromImage(img), size: size})
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("ContextAware Icons")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func renderOne(cfg icons.Config, size int, svgData []byte) (image.Image, error) {
	if svgData != nil {
		if img, err := cfg.RenderLogo(size, svgData); err == nil {
			return img, nil
		}
	}
	return cfg.Render(size)
}
