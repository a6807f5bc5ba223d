package main

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"wristboot/display/rle"
)

func TestEncodeThreshold(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(1, 0, color.White)
	src.Set(2, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x10})
	src.Set(3, 1, color.Gray{Y: 0x80})

	img, err := encode(src)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{1, 1, 5, 1}
	if !bytes.Equal(img.Data, want) {
		t.Fatalf("data=%v want %v", img.Data, want)
	}
}

func TestFitKeepsAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 480, 120))
	got := fit(src, rle.MaxSide).Bounds()
	if got.Dx() != 240 || got.Dy() != 60 {
		t.Fatalf("fit=%v want 240x60", got)
	}

	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if fit(small, rle.MaxSide) != image.Image(small) {
		t.Fatalf("small image was rescaled")
	}
}

func TestRenderText(t *testing.T) {
	img := renderText("v1", 2)
	b := img.Bounds()
	if b.Dx()%2 != 0 || b.Dy()%2 != 0 {
		t.Fatalf("bounds=%v not scaled by 2", b)
	}
	enc, err := encode(img)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(enc.Data) < 3 {
		t.Fatalf("text produced no foreground: %v", enc.Data)
	}
}

func TestSource(t *testing.T) {
	img := rle.Image{Width: 2, Height: 1, Data: []byte{1, 1}}
	code, err := source("assets", "Dot", "Dot is a test image.", "dot.png", img)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	s := string(code)
	for _, want := range []string{
		"// Code generated by mkimage from dot.png; DO NOT EDIT.",
		"package assets",
		"// Dot is a test image.\nvar Dot = rle.Image{",
		"\tWidth:  2,\n\tHeight: 1,",
		"\t\t0x01, 0x01,\n",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in:\n%s", want, s)
		}
	}
}
