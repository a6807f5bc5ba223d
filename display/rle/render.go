package rle

import "wristboot/boot/fault"

// Target is the display the renderer streams rows to.
type Target interface {
	SetWindow(left, top, right, bottom int) error
	WritePixels(data []byte) error
}

// Renderer decodes images into its row buffer and flushes one row at a
// time. It is not safe for concurrent use.
type Renderer struct {
	target Target
	row    [MaxSide * 2]byte
}

func NewRenderer(target Target) *Renderer {
	return &Renderer{target: target}
}

// Draw renders img at (x, y) in white.
func (r *Renderer) Draw(img *Image, x, y int) error {
	return r.Render(img, x, y, White, White, 0)
}

// Render decodes img at (x, y). Foreground runs that start on a row above
// splitRow use colorA, the rest colorB; background runs are always
// Background. Rendering stops after img.Height rows even if runs remain.
func (r *Renderer) Render(img *Image, x, y int, colorA, colorB uint16, splitRow int) error {
	width := int(img.Width)
	height := int(img.Height)
	if width == 0 || height == 0 {
		return nil
	}
	if width > MaxSide {
		return fault.Invariant("rle render", "width %d exceeds %d", width, MaxSide)
	}
	stride := width * 2

	row := 0
	n := 0
	background := true
	for _, run := range img.Data {
		c := Background
		if !background {
			c = colorB
			if row < splitRow {
				c = colorA
			}
		}
		for ; run > 0; run-- {
			r.row[n] = byte(c >> 8)
			r.row[n+1] = byte(c)
			n += 2
			if n < stride {
				continue
			}
			if err := r.flush(x, y+row, width); err != nil {
				return err
			}
			n = 0
			row++
			if row >= height {
				return nil
			}
		}
		background = !background
	}
	return nil
}

func (r *Renderer) flush(x, y, width int) error {
	if err := r.target.SetWindow(x, y, x+width-1, y); err != nil {
		return err
	}
	return r.target.WritePixels(r.row[:width*2])
}
