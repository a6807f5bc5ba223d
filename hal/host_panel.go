//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

// Panel controller opcodes the simulator understands.
const (
	panelSWRESET = 0x01
	panelSLPOUT  = 0x11
	panelINVOFF  = 0x20
	panelINVON   = 0x21
	panelDISPON  = 0x29
	panelCASET   = 0x2A
	panelRASET   = 0x2B
	panelRAMWR   = 0x2C
	panelMADCTL  = 0x36
	panelCOLMOD  = 0x3A
)

// PanelCommand is one command seen on the bus with its parameter bytes.
// Pixel data is counted in PixelBytes instead of being kept.
type PanelCommand struct {
	Cmd        byte
	Data       []byte
	PixelBytes int
}

// Panel simulates a 240x240 ST7789 controller by decoding command/data
// traffic into an RGB565 frame. The panel mounting makes the configured
// orientation render upright, so MADCTL does not remap addresses here.
type Panel struct {
	mu     sync.Mutex
	dc     *virtualPin
	width  int
	height int
	fb     []uint16

	cmd      byte
	param    [4]byte
	nparam   int
	col0     int
	col1     int
	row0     int
	row1     int
	x, y     int
	hi       byte
	haveHi   bool
	madctl   byte
	colmod   byte
	on       bool
	asleep   bool
	inverted bool

	log []PanelCommand
}

func newPanel(dc *virtualPin, width, height int) *Panel {
	return &Panel{
		dc:     dc,
		width:  width,
		height: height,
		fb:     make([]uint16, width*height),
		col1:   width - 1,
		row1:   height - 1,
		asleep: true,
	}
}

func (p *Panel) transfer(w, r []byte) {
	_ = r
	data := p.dc.get()

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range w {
		if data {
			p.data(b)
		} else {
			p.command(b)
		}
	}
}

func (p *Panel) command(b byte) {
	p.cmd = b
	p.nparam = 0
	p.haveHi = false
	p.log = append(p.log, PanelCommand{Cmd: b})

	switch b {
	case panelSWRESET:
		p.on = false
		p.asleep = true
		p.madctl = 0
	case panelSLPOUT:
		p.asleep = false
	case panelDISPON:
		p.on = true
	case panelINVON:
		p.inverted = true
	case panelINVOFF:
		p.inverted = false
	case panelRAMWR:
		p.x, p.y = p.col0, p.row0
	}
}

func (p *Panel) data(b byte) {
	if len(p.log) == 0 {
		return
	}
	last := &p.log[len(p.log)-1]

	switch p.cmd {
	case panelCASET, panelRASET:
		last.Data = append(last.Data, b)
		if p.nparam < len(p.param) {
			p.param[p.nparam] = b
			p.nparam++
		}
		if p.nparam != 4 {
			return
		}
		start := int(p.param[0])<<8 | int(p.param[1])
		end := int(p.param[2])<<8 | int(p.param[3])
		if p.cmd == panelCASET {
			p.col0, p.col1 = start, end
		} else {
			p.row0, p.row1 = start, end
		}
	case panelRAMWR:
		last.PixelBytes++
		if !p.haveHi {
			p.hi = b
			p.haveHi = true
			return
		}
		p.haveHi = false
		p.plot(uint16(p.hi)<<8 | uint16(b))
	case panelMADCTL:
		last.Data = append(last.Data, b)
		p.madctl = b
	case panelCOLMOD:
		last.Data = append(last.Data, b)
		p.colmod = b
	default:
		last.Data = append(last.Data, b)
	}
}

func (p *Panel) plot(c uint16) {
	if p.x >= 0 && p.x < p.width && p.y >= 0 && p.y < p.height {
		p.fb[p.y*p.width+p.x] = c
	}
	p.x++
	if p.x > p.col1 {
		p.x = p.col0
		p.y++
		if p.y > p.row1 {
			p.y = p.row0
		}
	}
}

func (p *Panel) Width() int  { return p.width }
func (p *Panel) Height() int { return p.height }

// Pixel returns the RGB565 value at (x, y).
func (p *Panel) Pixel(x, y int) uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.fb[y*p.width+x]
}

// On reports whether the panel is out of sleep with the display enabled.
func (p *Panel) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on && !p.asleep
}

// MADCTL returns the last memory access control value.
func (p *Panel) MADCTL() byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.madctl
}

// Commands returns a copy of the command log.
func (p *Panel) Commands() []PanelCommand {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PanelCommand, len(p.log))
	copy(out, p.log)
	return out
}

// ClearLog drops the command log.
func (p *Panel) ClearLog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.log = p.log[:0]
}

// Snapshot renders the frame as RGBA.
func (p *Panel) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	p.SnapshotInto(img)
	return img
}

// SnapshotInto renders the frame into dst, which must be width x height.
func (p *Panel) SnapshotInto(dst *image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, c := range p.fb {
		r, g, b := rgb888From565(c)
		j := i * 4
		if j+3 >= len(dst.Pix) {
			return
		}
		dst.Pix[j+0] = r
		dst.Pix[j+1] = g
		dst.Pix[j+2] = b
		dst.Pix[j+3] = 0xFF
	}
}
