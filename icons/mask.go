package icons

import (
	"image"
	"image/color"
)

// roundedMask builds the opacity mask for a size×size icon: fully opaque
// inside a rounded rectangle of the given corner radius, fully transparent
// in the clipped corner regions.
func roundedMask(size, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if insideRounded(x, y, size, radius) {
				mask.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return mask
}

// insideRounded reports whether pixel (x,y) lies within the rounded
// rectangle covering the whole canvas. Pixels in the four radius×radius
// corner squares must fall within the quarter circle centered radius pixels
// inside the corner; everything else is inside.
func insideRounded(x, y, size, radius int) bool {
	if radius <= 0 {
		return true
	}
	cx, cy := -1, -1
	if x < radius {
		cx = radius
	} else if x > size-1-radius {
		cx = size - 1 - radius
	}
	if y < radius {
		cy = radius
	} else if y > size-1-radius {
		cy = size - 1 - radius
	}
	if cx < 0 || cy < 0 {
		return true
	}
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= radius*radius
}

// composite combines the gradient's RGB channels with the mask's alpha
// channel into one non-premultiplied RGBA image.
func composite(rgb *image.NRGBA, mask *image.Alpha) *image.NRGBA {
	bounds := rgb.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := rgb.NRGBAAt(x, y)
			c.A = mask.AlphaAt(x, y).A
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
