package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: pixel data truncated")

type tgaHeader struct {
	idLength     int
	colorMapType byte
	imageType    byte
	width        int
	height       int
	bpp          int
	topToBottom  bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, errors.New("tga: header too short")
	}
	h := tgaHeader{
		idLength:     int(data[0]),
		colorMapType: data[1],
		imageType:    data[2],
		width:        int(data[12]) | int(data[13])<<8,
		height:       int(data[14]) | int(data[15])<<8,
		bpp:          int(data[16]),
		topToBottom:  data[17]&0x20 != 0,
	}

	switch {
	case h.colorMapType != 0:
		return h, errors.New("tga: color-mapped images not supported")
	case h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE:
		return h, fmt.Errorf("tga: unsupported image type %d", h.imageType)
	case h.bpp != 24 && h.bpp != 32:
		return h, fmt.Errorf("tga: unsupported bit depth %d", h.bpp)
	}
	return h, nil
}

// DecodeTGA decodes an uncompressed or RLE true-color TGA image.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}

	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		hdr: h,
		img: image.NewRGBA(image.Rect(0, 0, h.width, h.height)),
		src: data[offset:],
		bpp: h.bpp / 8,
	}
	if h.imageType == TGATypeUncompressed {
		err = d.raw(h.width * h.height)
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

// tgaDecoder writes pixels in file order, flipping rows for bottom-up images.
type tgaDecoder struct {
	hdr tgaHeader
	img *image.RGBA
	src []byte
	bpp int
	pos int // next pixel index
}

func (d *tgaDecoder) next() (color.RGBA, error) {
	if len(d.src) < d.bpp {
		return color.RGBA{}, errTGATruncated
	}
	c := color.RGBA{R: d.src[2], G: d.src[1], B: d.src[0], A: 255}
	if d.bpp == 4 {
		c.A = d.src[3]
	}
	d.src = d.src[d.bpp:]
	return c, nil
}

func (d *tgaDecoder) put(c color.RGBA) {
	x := d.pos % d.hdr.width
	y := d.pos / d.hdr.width
	if !d.hdr.topToBottom {
		y = d.hdr.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.pos++
}

func (d *tgaDecoder) remaining() int {
	return d.hdr.width*d.hdr.height - d.pos
}

func (d *tgaDecoder) raw(n int) error {
	for i := 0; i < n && d.remaining() > 0; i++ {
		c, err := d.next()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	for d.remaining() > 0 {
		if len(d.src) == 0 {
			return errTGATruncated
		}
		packet := d.src[0]
		d.src = d.src[1:]
		count := int(packet&0x7F) + 1

		if packet&0x80 == 0 {
			if err := d.raw(count); err != nil {
				return err
			}
			continue
		}

		// run of a single pixel
		c, err := d.next()
		if err != nil {
			return err
		}
		for i := 0; i < count && d.remaining() > 0; i++ {
			d.put(c)
		}
	}
	return nil
}
