package rle

import (
	"bytes"
	"errors"
	"testing"

	"wristboot/boot/fault"
)

type window struct {
	l, t, r, b int
}

type recordTarget struct {
	windows []window
	rows    [][]byte
	failAt  int
}

func (rt *recordTarget) SetWindow(l, t, r, b int) error {
	rt.windows = append(rt.windows, window{l, t, r, b})
	return nil
}

func (rt *recordTarget) WritePixels(data []byte) error {
	if rt.failAt > 0 && len(rt.rows)+1 == rt.failAt {
		return fault.Transfer("test", errors.New("bus"))
	}
	rt.rows = append(rt.rows, append([]byte(nil), data...))
	return nil
}

func (rt *recordTarget) pixel(x, y int) uint16 {
	row := rt.rows[y]
	return uint16(row[2*x])<<8 | uint16(row[2*x+1])
}

func TestAllBackgroundTenByTen(t *testing.T) {
	img := &Image{Width: 10, Height: 10, Data: []byte{100}}
	rt := &recordTarget{}
	if err := NewRenderer(rt).Draw(img, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(rt.windows) != 10 || len(rt.rows) != 10 {
		t.Fatalf("got %d windows and %d rows, want 10 each", len(rt.windows), len(rt.rows))
	}
	for i, w := range rt.windows {
		if w != (window{0, i, 9, i}) {
			t.Fatalf("window %d = %+v", i, w)
		}
		if !bytes.Equal(rt.rows[i], make([]byte, 20)) {
			t.Fatalf("row %d = % x, want 20 background bytes", i, rt.rows[i])
		}
	}
}

func TestRenderStopsAtHeight(t *testing.T) {
	// 3x2 image with a full extra row of runs.
	img := &Image{Width: 3, Height: 2, Data: []byte{1, 2, 3, 3}}
	rt := &recordTarget{}
	if err := NewRenderer(rt).Draw(img, 5, 7); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(rt.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rt.rows))
	}
	if rt.windows[1] != (window{5, 8, 7, 8}) {
		t.Fatalf("second window = %+v", rt.windows[1])
	}
}

func TestRenderAlternatesRuns(t *testing.T) {
	img := &Image{Width: 4, Height: 1, Data: []byte{1, 1, 1, 1}}
	rt := &recordTarget{}
	if err := NewRenderer(rt).Render(img, 0, 0, Red, Blue, 1); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := []uint16{Background, Red, Background, Red}
	for x, c := range want {
		if got := rt.pixel(x, 0); got != c {
			t.Fatalf("pixel %d = %#04x, want %#04x", x, got, c)
		}
	}
}

func TestRenderSplitRow(t *testing.T) {
	// 2x4, every row: background then foreground.
	img := &Image{Width: 2, Height: 4, Data: []byte{1, 1, 1, 1, 1, 1, 1, 1}}
	rt := &recordTarget{}
	if err := NewRenderer(rt).Render(img, 0, 0, White, Green, 2); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for y := 0; y < 4; y++ {
		want := Green
		if y < 2 {
			want = White
		}
		if got := rt.pixel(0, y); got != Background {
			t.Fatalf("row %d background = %#04x", y, got)
		}
		if got := rt.pixel(1, y); got != want {
			t.Fatalf("row %d foreground = %#04x, want %#04x", y, got, want)
		}
	}
}

func TestRenderColourFixedAtRunStart(t *testing.T) {
	// A single foreground run spanning rows 0 and 1 keeps colorA.
	img := &Image{Width: 2, Height: 2, Data: []byte{0, 4}}
	rt := &recordTarget{}
	if err := NewRenderer(rt).Render(img, 0, 0, White, Red, 1); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := rt.pixel(1, 1); got != White {
		t.Fatalf("pixel(1,1) = %#04x, want white", got)
	}
}

func TestRenderPropagatesTargetError(t *testing.T) {
	img := &Image{Width: 2, Height: 3, Data: []byte{6}}
	rt := &recordTarget{failAt: 2}
	err := NewRenderer(rt).Draw(img, 0, 0)
	if !errors.Is(err, fault.ErrTransfer) {
		t.Fatalf("err = %v, want transfer fault", err)
	}
	if len(rt.rows) != 1 {
		t.Fatalf("rows = %d, want 1 before the failure", len(rt.rows))
	}
}

func TestRenderRejectsWideImage(t *testing.T) {
	img := &Image{Width: 241, Height: 1, Data: []byte{241}}
	if err := NewRenderer(&recordTarget{}).Draw(img, 0, 0); !errors.Is(err, fault.ErrInvariant) {
		t.Fatalf("err = %v, want invariant violation", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	const w, h = 20, 30
	fg := func(x, y int) bool { return (x/5+y/3)%2 == 1 }
	img, err := Encode(w, h, fg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := img.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if img.Pixels() != w*h {
		t.Fatalf("Pixels = %d, want %d", img.Pixels(), w*h)
	}

	rt := &recordTarget{}
	if err := NewRenderer(rt).Draw(&img, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := Background
			if fg(x, y) {
				want = White
			}
			if got := rt.pixel(x, y); got != want {
				t.Fatalf("pixel(%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestEncodeSplitsLongRuns(t *testing.T) {
	img, err := Encode(200, 2, func(x, y int) bool { return false })
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{255, 0, 145}
	if !bytes.Equal(img.Data, want) {
		t.Fatalf("Data = %v, want %v", img.Data, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		img Image
		ok  bool
	}{
		{Image{Width: 2, Height: 2, Data: []byte{4}}, true},
		{Image{Width: 2, Height: 2, Data: []byte{1, 2}}, false},
		{Image{Width: 0, Height: 2, Data: []byte{4}}, false},
		{Image{Width: 241, Height: 1, Data: []byte{241}}, false},
	}
	for i, tt := range tests {
		err := tt.img.Validate()
		if (err == nil) != tt.ok {
			t.Fatalf("case %d: Validate() = %v, want ok=%v", i, err, tt.ok)
		}
	}
}
