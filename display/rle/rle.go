// Package rle is the boot images' run-length format: a byte sequence of
// run lengths that alternate background and foreground, starting with
// background, covering the image row by row.
package rle

import (
	"fmt"

	"wristboot/boot/fault"
)

// MaxSide is the largest width or height an image may have.
const MaxSide = 240

// RGB565 colours used by the boot screens.
const (
	Black uint16 = 0x0000
	White uint16 = 0xFFFF
	Red   uint16 = 0xF800
	Green uint16 = 0x07E0
	Blue  uint16 = 0x001F

	Background = Black
)

// Image is an immutable run-length encoded bitmap.
type Image struct {
	Width  uint16
	Height uint16
	Data   []byte
}

// DataSize is the number of run-length bytes.
func (img *Image) DataSize() int { return len(img.Data) }

// Pixels returns the number of pixels the runs decode to.
func (img *Image) Pixels() int {
	n := 0
	for _, r := range img.Data {
		n += int(r)
	}
	return n
}

// Validate checks the dimensions and that the runs cover the whole image.
func (img *Image) Validate() error {
	if img.Width == 0 || img.Height == 0 || img.Width > MaxSide || img.Height > MaxSide {
		return fault.Invariant("rle image", "size %dx%d out of range", img.Width, img.Height)
	}
	if n, want := img.Pixels(), int(img.Width)*int(img.Height); n < want {
		return fault.Invariant("rle image", "runs cover %d pixels, want %d", n, want)
	}
	return nil
}

// Encode builds an image from a foreground predicate evaluated row by row.
// Runs longer than 255 are split with zero-length runs of the other kind.
func Encode(width, height int, fg func(x, y int) bool) (Image, error) {
	if width <= 0 || height <= 0 || width > MaxSide || height > MaxSide {
		return Image{}, fmt.Errorf("rle: size %dx%d out of range", width, height)
	}

	var data []byte
	foreground := false
	run := 0
	flush := func() {
		for run > 255 {
			data = append(data, 255, 0)
			run -= 255
		}
		data = append(data, byte(run))
		run = 0
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if fg(x, y) != foreground {
				flush()
				foreground = !foreground
			}
			run++
		}
	}
	flush()

	return Image{Width: uint16(width), Height: uint16(height), Data: data}, nil
}
