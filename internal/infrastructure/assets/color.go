package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// ToRGBA copies any image into a fresh RGBA with its origin at (0, 0).
func ToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// ApplyColorKey makes every pixel of the key colour fully transparent.
func ApplyColorKey(img *image.RGBA, key color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if matches(img.RGBAAt(x, y), key) {
				img.SetRGBA(x, y, color.RGBA{})
			}
		}
	}
}

// SwapColor returns a copy of img with every pixel of colour from replaced
// by to.
func SwapColor(img *image.RGBA, from, to color.RGBA) *image.RGBA {
	out := ToRGBA(img)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if matches(out.RGBAAt(x, y), from) {
				out.SetRGBA(x, y, to)
			}
		}
	}
	return out
}

// matches reports whether an opaque pixel has the key colour.
func matches(c, key color.RGBA) bool {
	return c.A == 255 && c.R == key.R && c.G == key.G && c.B == key.B
}
