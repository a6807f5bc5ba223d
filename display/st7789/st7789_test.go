package st7789

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"wristboot/boot/fault"
	"wristboot/hal"

	"tinygo.org/x/drivers"
)

// wire records pin levels and bus writes in the order they happen.
type wire struct {
	events []string
	dc     bool
	frames []frame
	txErr  error
}

type frame struct {
	data bool
	b    []byte
}

func (w *wire) Tx(tx, rx []byte) error {
	if w.txErr != nil {
		return w.txErr
	}
	w.events = append(w.events, fmt.Sprintf("tx % x", tx))
	w.frames = append(w.frames, frame{data: w.dc, b: append([]byte(nil), tx...)})
	return nil
}

func (w *wire) Transfer(b byte) (byte, error) { return 0, w.Tx([]byte{b}, nil) }

type pin struct {
	w    *wire
	name string
}

func (p *pin) Name() string        { return p.name }
func (p *pin) Caps() hal.GPIOCaps  { return hal.GPIOCapOutput }
func (p *pin) Read() (bool, error) { return false, nil }
func (p *pin) Configure(hal.GPIOMode, hal.GPIOPull) error {
	p.w.events = append(p.w.events, "cfg "+p.name)
	return nil
}

func (p *pin) Write(level bool) error {
	v := 0
	if level {
		v = 1
	}
	if p.name == "dc" {
		p.w.dc = level
	}
	p.w.events = append(p.w.events, fmt.Sprintf("%s %d", p.name, v))
	return nil
}

type sleeps []uint32

func (s *sleeps) Milliseconds(ms uint32) { *s = append(*s, ms) }

func newDevice(cfg Config) (*Device, *wire, *sleeps) {
	w := &wire{}
	s := &sleeps{}
	d := New(w, &pin{w, "cs"}, &pin{w, "dc"}, &pin{w, "rst"}, s, cfg)
	return d, w, s
}

func TestCommandFraming(t *testing.T) {
	d, w, _ := newDevice(Config{})
	if err := d.WriteCommand(MADCTL, 0x60); err != nil {
		t.Fatalf("WriteCommand: %v", err)
	}
	want := "dc 0,cs 0,tx 36,cs 1,dc 1,cs 0,tx 60,cs 1"
	if got := strings.Join(w.events, ","); got != want {
		t.Fatalf("events = %s, want %s", got, want)
	}
}

func TestCommandWithoutParamsSendsOneFrame(t *testing.T) {
	d, w, _ := newDevice(Config{})
	if err := d.WriteCommand(DISPON); err != nil {
		t.Fatalf("WriteCommand: %v", err)
	}
	if len(w.frames) != 1 || w.frames[0].data || w.frames[0].b[0] != DISPON {
		t.Fatalf("frames = %+v", w.frames)
	}
}

func TestSetWindowBytes(t *testing.T) {
	tests := []struct {
		l, t, r, b int
	}{
		{0, 0, 0, 0},
		{0, 5, 239, 5},
		{17, 3, 200, 239},
		{239, 239, 239, 239},
	}
	for _, tt := range tests {
		d, w, _ := newDevice(Config{})
		if err := d.SetWindow(tt.l, tt.t, tt.r, tt.b); err != nil {
			t.Fatalf("SetWindow(%v): %v", tt, err)
		}
		if len(w.frames) != 4 {
			t.Fatalf("SetWindow(%v): %d frames, want 4", tt, len(w.frames))
		}
		checks := []frame{
			{false, []byte{CASET}},
			{true, []byte{0x00, byte(tt.l), 0x00, byte(tt.r)}},
			{false, []byte{RASET}},
			{true, []byte{0x00, byte(tt.t), 0x00, byte(tt.b)}},
		}
		for i, c := range checks {
			if w.frames[i].data != c.data || !bytes.Equal(w.frames[i].b, c.b) {
				t.Fatalf("SetWindow(%v) frame %d = %+v, want %+v", tt, i, w.frames[i], c)
			}
		}
	}
}

func TestSetWindowRejectsInvalid(t *testing.T) {
	tests := [][4]int{
		{5, 0, 4, 0},
		{0, 9, 0, 8},
		{0, 0, 240, 0},
		{0, 0, 0, 240},
		{-1, 0, 0, 0},
	}
	for _, tt := range tests {
		d, w, _ := newDevice(Config{})
		err := d.SetWindow(tt[0], tt[1], tt[2], tt[3])
		if !errors.Is(err, fault.ErrInvariant) {
			t.Fatalf("SetWindow(%v) err = %v, want invariant violation", tt, err)
		}
		if len(w.events) != 0 {
			t.Fatalf("SetWindow(%v) touched the bus: %v", tt, w.events)
		}
	}
}

func TestInitSequence(t *testing.T) {
	d, w, s := newDevice(Config{})
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := strings.Join(w.events[:3], ","); got != "rst 1,rst 0,rst 1" {
		t.Fatalf("reset = %s", got)
	}

	var cmds []byte
	for _, f := range w.frames {
		if !f.data {
			cmds = append(cmds, f.b[0])
		}
	}
	want := []byte{SWRESET, SLPOUT, FRMCTR1, FRMCTR2, FRMCTR3, INVCTR,
		PWCTR1, PWCTR2, PWCTR3, PWCTR4, PWCTR5, VMCTR1, INVON, MADCTL, COLMOD, DISPON}
	if !bytes.Equal(cmds, want) {
		t.Fatalf("commands = % x, want % x", cmds, want)
	}
	if len(*s) != 3 {
		t.Fatalf("delays = %v, want three", *s)
	}
	for _, ms := range *s {
		if ms != SettleMs {
			t.Fatalf("delay = %d, want %d", ms, SettleMs)
		}
	}
}

func TestInitBGRAndNoInvert(t *testing.T) {
	d, w, _ := newDevice(Config{BGR: true, NoInvert: true})
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	var sawInvOff, sawMADCTL bool
	for i, f := range w.frames {
		if f.data {
			continue
		}
		switch f.b[0] {
		case INVON:
			t.Fatal("INVON sent with NoInvert")
		case INVOFF:
			sawInvOff = true
		case MADCTL:
			sawMADCTL = true
			if got := w.frames[i+1].b[0]; got != 0x08 {
				t.Fatalf("MADCTL = %#x, want 0x08", got)
			}
		}
	}
	if !sawInvOff || !sawMADCTL {
		t.Fatal("missing INVOFF or MADCTL")
	}
}

func TestSetOrientation(t *testing.T) {
	tests := []struct {
		r   drivers.Rotation
		bgr bool
		v   byte
	}{
		{drivers.Rotation0, false, Portrait},
		{drivers.Rotation90, false, Landscape},
		{drivers.Rotation180, false, PortraitSwapped},
		{drivers.Rotation270, false, LandscapeSwapped},
		{drivers.Rotation90, true, Landscape | 0x08},
	}
	for _, tt := range tests {
		d, w, _ := newDevice(Config{BGR: tt.bgr})
		if err := d.SetOrientation(tt.r); err != nil {
			t.Fatalf("SetOrientation(%d): %v", tt.r, err)
		}
		if len(w.frames) != 2 || w.frames[1].b[0] != tt.v {
			t.Fatalf("SetOrientation(%d) frames = %+v, want value %#x", tt.r, w.frames, tt.v)
		}
	}
}

func TestWritePixelsBurst(t *testing.T) {
	d, w, _ := newDevice(Config{})
	px := []byte{0xF8, 0x00, 0x07, 0xE0}
	if err := d.WritePixels(px); err != nil {
		t.Fatalf("WritePixels: %v", err)
	}
	if len(w.frames) != 2 || w.frames[0].b[0] != RAMWR || !w.frames[1].data || !bytes.Equal(w.frames[1].b, px) {
		t.Fatalf("frames = %+v", w.frames)
	}
}

func TestClear(t *testing.T) {
	d, w, _ := newDevice(Config{})
	if err := d.Clear(0xF800); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	var rows int
	for _, f := range w.frames {
		if !f.data || len(f.b) != Width*BytesPerPixel {
			continue
		}
		rows++
		if f.b[0] != 0xF8 || f.b[1] != 0x00 || f.b[len(f.b)-2] != 0xF8 {
			t.Fatalf("row %d not filled with colour", rows)
		}
	}
	if rows != Height {
		t.Fatalf("rows = %d, want %d", rows, Height)
	}
	// 240 rows, 6 frames each.
	if len(w.frames) != Height*6 {
		t.Fatalf("frames = %d, want %d", len(w.frames), Height*6)
	}
}

func TestTransferErrorIsClassified(t *testing.T) {
	d, w, _ := newDevice(Config{})
	w.txErr = errors.New("dma timeout")
	err := d.WriteCommand(SWRESET)
	if !errors.Is(err, fault.ErrTransfer) {
		t.Fatalf("err = %v, want transfer fault", err)
	}
	if got := w.events[len(w.events)-1]; got != "cs 1" {
		t.Fatalf("last event = %q, want chip deselected", got)
	}
}
