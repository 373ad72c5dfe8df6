package icons

import (
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// loadFace returns a bold face sized for an icon of the given side length.
// It prefers the system font at path, falls back to the embedded Go Bold
// face, and degrades to a fixed-size bitmap face if neither parses.
func loadFace(path string, size int) font.Face {
	if data, err := os.ReadFile(path); err == nil {
		if face := parseFace(data, size); face != nil {
			return face
		}
	}
	if face := parseFace(gobold.TTF, size); face != nil {
		return face
	}
	return basicfont.Face7x13
}

func parseFace(ttf []byte, size int) font.Face {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size / 2),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}

// drawLabel draws text centered on dst with a drop shadow offset down-right.
// Centering uses the visual bounding box of the rendered glyphs rather than
// their advance width, so short labels sit optically centered.
func drawLabel(dst *image.NRGBA, face font.Face, text string) {
	if c, ok := face.(io.Closer); ok {
		defer c.Close()
	}

	size := dst.Bounds().Dx()
	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (size-w)/2 - bounds.Min.X.Floor()
	y := (size-h)/2 - bounds.Min.Y.Floor()

	off := shadowOffset(size)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{A: 100}),
		Face: face,
		Dot:  fixed.P(x+off, y+off),
	}
	d.DrawString(text)

	d.Src = image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// shadowOffset scales the drop shadow with the icon, never below one pixel
func shadowOffset(size int) int {
	if off := size / 32; off > 1 {
		return off
	}
	return 1
}
