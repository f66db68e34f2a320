// Package texture produces RGBA images ready for GPU upload, either generated
// procedurally or decoded from image files.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io/fs"
	"path"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// Checker returns a size x size test pattern of cells x cells squares that
// alternate between a and b, starting with a in the top-left corner.
func Checker(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	if cells <= 0 {
		cells = 1
	}

	for y := 0; y < size; y++ {
		cy := y * cells / size
		for x := 0; x < size; x++ {
			cx := x * cells / size
			c := a
			if (cx+cy)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Load reads and decodes an image from fsys. TGA files use DecodeTGA; other
// formats go through the registered decoders (PNG, JPEG, BMP).
func Load(fsys fs.FS, name string) (*image.RGBA, error) {
	if strings.EqualFold(path.Ext(name), ".tga") {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading texture: %w", err)
		}
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		return img, nil
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image.Image to *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
