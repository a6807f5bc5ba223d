// Command mkimage converts a picture (or a line of text) into a run-length
// encoded boot screen image and writes it as Go source.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"wristboot/display/rle"
)

const threshold = 0x7F

type options struct {
	in        string
	text      string
	textScale int
	name      string
	doc       string
	pkg       string
	out       string
}

func main() {
	var o options
	flag.StringVar(&o.in, "in", "", "Input image (PNG).")
	flag.StringVar(&o.text, "text", "", "Render this text instead of reading -in.")
	flag.IntVar(&o.textScale, "text-scale", 2, "Pixel scale for -text.")
	flag.StringVar(&o.name, "name", "", "Go variable name.")
	flag.StringVar(&o.doc, "doc", "", "Doc comment for the variable.")
	flag.StringVar(&o.pkg, "pkg", "assets", "Go package name.")
	flag.StringVar(&o.out, "out", "", "Output Go file (default stdout).")
	flag.Parse()

	if err := run(o); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(o options) error {
	if o.name == "" {
		return errors.New("-name is required")
	}

	var src image.Image
	origin := o.in
	switch {
	case o.text != "":
		src = renderText(o.text, o.textScale)
		origin = fmt.Sprintf("%q", o.text)
	case o.in != "":
		f, err := os.Open(o.in)
		if err != nil {
			return err
		}
		src, _, err = image.Decode(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("decode %q: %w", o.in, err)
		}
		origin = filepath.Base(o.in)
	default:
		return errors.New("one of -in or -text is required")
	}

	img, err := encode(fit(src, rle.MaxSide))
	if err != nil {
		return err
	}
	code, err := source(o.pkg, o.name, o.doc, origin, img)
	if err != nil {
		return err
	}

	if o.out == "" {
		_, err = os.Stdout.Write(code)
		return err
	}
	if err := os.WriteFile(o.out, code, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s: %dx%d, %d bytes\n", o.out, img.Width, img.Height, len(img.Data))
	return nil
}

// renderText draws s in white on black with the default bitmap face and
// scales it up by scale.
func renderText(s string, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	measure := gg.NewContext(1, 1)
	tw, th := measure.MeasureString(s)
	w := int(math.Ceil(tw)) + 2
	h := int(math.Ceil(th)) + 4

	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(s, float64(w)/2, float64(h)/2, 0.5, 0.5)
	if scale == 1 {
		return dc.Image()
	}

	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), dc.Image(), dc.Image().Bounds(), draw.Src, nil)
	return dst
}

// fit shrinks src, keeping its aspect ratio, until neither side exceeds max.
func fit(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}
	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// encode treats bright opaque pixels as foreground.
func encode(src image.Image) (rle.Image, error) {
	b := src.Bounds()
	return rle.Encode(b.Dx(), b.Dy(), func(x, y int) bool {
		c := src.At(b.Min.X+x, b.Min.Y+y)
		_, _, _, a := c.RGBA()
		if a>>8 <= threshold {
			return false
		}
		return color.GrayModel.Convert(c).(color.Gray).Y > threshold
	})
}

func source(pkg, name, doc, origin string, img rle.Image) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkimage from %s; DO NOT EDIT.\n\n", origin)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"wristboot/display/rle\"\n\n")
	if doc != "" {
		fmt.Fprintf(&b, "// %s\n", doc)
	}
	fmt.Fprintf(&b, "var %s = rle.Image{\n", name)
	fmt.Fprintf(&b, "Width: %d,\nHeight: %d,\nData: []byte{\n", img.Width, img.Height)
	for i, v := range img.Data {
		fmt.Fprintf(&b, "0x%02x,", v)
		if i%16 == 15 || i == len(img.Data)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("},\n}\n")
	return format.Source(b.Bytes())
}
