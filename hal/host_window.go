//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"wristboot/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/tinyfont"
)

const statusHeight = 12

// RunWindow opens a desktop window that shows the simulated panel and maps
// the space bar to the side button. It blocks until the window closes.
func RunWindow(boot func(HAL) error, cfg HostConfig, scale int) error {
	if scale <= 0 {
		scale = 2
	}

	var pressed atomic.Bool
	cfg.Button = paced(pressed.Load, 192, time.Millisecond)

	g := &hostGame{pressed: &pressed, status: "hold SPACE to roll back"}
	userReset := cfg.OnReset
	cfg.OnReset = func() {
		g.setStatus("RESET")
		if userReset != nil {
			userReset()
		}
	}
	userStart := cfg.OnStart
	cfg.OnStart = func(vt uint32) {
		g.setStatus(fmt.Sprintf("app started vt=0x%04x", vt))
		if userStart != nil {
			userStart(vt)
		}
	}

	h, err := NewHost(cfg)
	if err != nil {
		return err
	}
	defer h.Close()
	g.h = h

	go func() {
		if err := boot(h); err != nil {
			g.setStatus(err.Error())
		}
	}()

	ebiten.SetWindowTitle("wristboot (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.panel.Width()*scale, (h.panel.Height()+statusHeight)*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

// paced slows button sampling so the sampling window spans real time.
func paced(src func() bool, every int, d time.Duration) func() bool {
	var n int
	return func() bool {
		n++
		if n%every == 0 {
			time.Sleep(d)
		}
		return src()
	}
}

type hostGame struct {
	h       *Host
	pressed *atomic.Bool

	mu     sync.Mutex
	status string

	img   *image.RGBA
	bar   *image.RGBA
	panel *ebiten.Image
	strip *ebiten.Image
}

func (g *hostGame) setStatus(s string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = s
}

func (g *hostGame) Update() error {
	g.pressed.Store(ebiten.IsKeyPressed(ebiten.KeySpace))
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, p.Width(), p.Height()))
		g.bar = image.NewRGBA(image.Rect(0, 0, p.Width(), statusHeight))
		g.panel = ebiten.NewImage(p.Width(), p.Height())
		g.strip = ebiten.NewImage(p.Width(), statusHeight)
	}

	if p.On() && g.h.BacklightOn() {
		p.SnapshotInto(g.img)
	} else {
		for i := range g.img.Pix {
			g.img.Pix[i] = 0
		}
	}
	g.panel.WritePixels(g.img.Pix)
	screen.DrawImage(g.panel, nil)

	g.mu.Lock()
	status := g.status
	g.mu.Unlock()
	for i := range g.bar.Pix {
		g.bar.Pix[i] = 0x20
	}
	fg := color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	tinyfont.WriteLine(rgbaDisplay{img: g.bar}, &tinyfont.Picopixel, 2, statusHeight-3, status, fg)
	g.strip.WritePixels(g.bar.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(p.Height()))
	screen.DrawImage(g.strip, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.Width(), g.h.panel.Height() + statusHeight
}

// rgbaDisplay lets tinyfont draw into an image.RGBA.
type rgbaDisplay struct {
	img *image.RGBA
}

func (d rgbaDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d rgbaDisplay) Display() error { return nil }
