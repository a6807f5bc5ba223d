//go:build !tinygo

package hal

import (
	"errors"
	"sync"
)

var errNoChipSelect = errors.New("spi: no device selected")

type spiDevice interface {
	transfer(w, r []byte)
}

type spiTarget struct {
	cs  *virtualPin
	dev spiDevice
}

// hostSPI is a shared bus: every Tx goes to the devices whose chip-select
// pin is driven low.
type hostSPI struct {
	mu      sync.Mutex
	targets []spiTarget
	scratch [1]byte
}

func (b *hostSPI) attach(cs *virtualPin, dev spiDevice) {
	b.targets = append(b.targets, spiTarget{cs: cs, dev: dev})
}

func (b *hostSPI) Tx(w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	selected := false
	for _, t := range b.targets {
		if t.cs.get() {
			continue
		}
		t.dev.transfer(w, r)
		selected = true
	}
	if !selected {
		return errNoChipSelect
	}
	return nil
}

func (b *hostSPI) Transfer(c byte) (byte, error) {
	var r [1]byte
	err := b.Tx([]byte{c}, r[:])
	return r[0], err
}

// norChip simulates a 25-series SPI NOR flash on top of a hostFlash store.
type norChip struct {
	mu    sync.Mutex
	store *hostFlash
	id    [3]byte

	selected bool
	wel      bool
	pos      int
	cmd      byte
	addr     uint32
	page     []byte
}

func newNORChip(store *hostFlash) *norChip {
	// XTX XT25F32B.
	return &norChip{store: store, id: [3]byte{0x0B, 0x40, 0x16}}
}

// chipSelect observes the CS line; a rising edge ends the command.
func (c *norChip) chipSelect(level bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !level {
		c.selected = true
		c.pos = 0
		c.page = c.page[:0]
		return
	}
	if !c.selected {
		return
	}
	c.selected = false
	switch c.cmd {
	case 0x02:
		if c.wel && c.pos >= 4 {
			c.programPage()
		}
		c.wel = false
	case 0x20:
		if c.wel && c.pos >= 4 {
			sector := c.addr &^ (ExternalFlashEraseBlock - 1)
			_ = c.store.Erase(sector, ExternalFlashEraseBlock)
		}
		c.wel = false
	}
}

func (c *norChip) programPage() {
	base := c.addr &^ 0xFF
	for i, b := range c.page {
		off := base | ((c.addr + uint32(i)) & 0xFF)
		_ = c.store.program([]byte{b}, off)
	}
}

func (c *norChip) transfer(w, r []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(w)
	if len(r) > n {
		n = len(r)
	}
	for i := 0; i < n; i++ {
		var in byte
		if i < len(w) {
			in = w[i]
		}
		out := c.exchange(in)
		if i < len(r) {
			r[i] = out
		}
	}
}

func (c *norChip) exchange(in byte) byte {
	pos := c.pos
	c.pos++
	if pos == 0 {
		c.cmd = in
		c.addr = 0
		switch in {
		case 0x06:
			c.wel = true
		case 0x04:
			c.wel = false
		}
		return 0xFF
	}

	switch c.cmd {
	case 0x05:
		var st byte
		if c.wel {
			st |= 0x02
		}
		return st
	case 0x9F:
		return c.id[(pos-1)%3]
	case 0x03, 0x02, 0x20:
		if pos <= 3 {
			c.addr = c.addr<<8 | uint32(in)
			return 0xFF
		}
	default:
		return 0xFF
	}

	switch c.cmd {
	case 0x03:
		var b [1]byte
		off := (c.addr + uint32(pos-4)) % c.store.SizeBytes()
		_, _ = c.store.ReadAt(b[:], off)
		return b[0]
	case 0x02:
		if len(c.page) < 256 {
			c.page = append(c.page, in)
		}
	}
	return 0xFF
}
