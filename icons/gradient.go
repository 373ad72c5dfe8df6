package icons

import (
	"image"
	"image/color"
)

// gradient fills a size×size canvas with a vertical ramp from top to bottom.
// Row y gets the color at fraction y/size, so the first row is exactly the
// top color and the last row stops one step short of the bottom color.
func gradient(size int, top, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		f := float64(y) / float64(size)
		c := color.NRGBA{
			R: lerp(top.R, bottom.R, f),
			G: lerp(top.G, bottom.G, f),
			B: lerp(top.B, bottom.B, f),
			A: 255,
		}
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// lerp interpolates between two channel values, truncating toward zero
func lerp(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f)
}
