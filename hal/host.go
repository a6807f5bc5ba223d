//go:build !tinygo

package hal

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"wristboot/hal/spiflash"

	"tinygo.org/x/drivers"
)

// HostConfig selects the simulated board's inputs and storage.
type HostConfig struct {
	// FlashDir holds internal.flash and external.flash images. Empty keeps
	// both devices in RAM.
	FlashDir string
	// Button reports whether the side button is pressed on each read.
	Button func() bool
	// Log receives console lines; nil means os.Stdout.
	Log io.Writer
	// OnReset and OnStart observe the terminal events of a boot.
	OnReset func()
	OnStart func(vectorTable uint32)
	// VirtualClock advances the cycle counter by one millisecond per read
	// instead of following wall time, so delays cost nothing.
	VirtualClock bool
}

// Host is the desktop simulation of the watch.
type Host struct {
	logger    *hostLogger
	backlight *hostLED
	gpio      GPIO
	bus       *hostSPI
	panel     *Panel
	internal  *hostFlash
	external  *spiflash.Device
	norStore  *hostFlash
	mem       *hostMemory
	cycles    CycleCounter
	cpu       *hostCPU
	loader    *slotLoader

	mu      sync.Mutex
	started bool
	entry   uint32
	onStart func(uint32)
}

// New returns a host HAL implementation.
func New() HAL {
	h, err := NewHost(HostConfig{FlashDir: os.Getenv("WRISTBOOT_FLASH_DIR")})
	if err != nil {
		h, _ = NewHost(HostConfig{})
		h.logger.WriteLineString(fmt.Sprintf("host: %v; using RAM flash", err))
	}
	return h
}

// NewHost builds a simulated board.
func NewHost(cfg HostConfig) (*Host, error) {
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	logger := &hostLogger{w: w}

	var internal, norStore *hostFlash
	if cfg.FlashDir == "" {
		internal = newMemFlash("internal", InternalFlashSize, InternalFlashEraseBlock)
		norStore = newMemFlash("external", ExternalFlashSize, ExternalFlashEraseBlock)
	} else {
		var err error
		internal, err = openFileFlash(cfg.FlashDir, "internal", InternalFlashSize, InternalFlashEraseBlock)
		if err != nil {
			return nil, err
		}
		norStore, err = openFileFlash(cfg.FlashDir, "external", ExternalFlashSize, ExternalFlashEraseBlock)
		if err != nil {
			_ = internal.close()
			return nil, err
		}
	}

	pins := make([]GPIOPin, PinCount)
	virt := make([]*virtualPin, PinCount)
	for i := range pins {
		p := newVirtualPin(fmt.Sprintf("P0.%02d", i), gpioCapAll)
		virt[i] = p
		pins[i] = p
	}
	backlight := &hostLED{logger: logger}
	pins[PinBacklight] = newLEDPin("BACKLIGHT", backlight)
	pins[PinButtonIn] = newButtonPin("BUTTON_IN", virt[PinButtonOut], cfg.Button)

	// Chip selects idle high until the drivers configure them.
	virt[PinDisplayCS].level = true
	virt[PinFlashCS].level = true

	bus := &hostSPI{}
	panel := newPanel(virt[PinDisplayDC], 240, 240)
	nor := newNORChip(norStore)
	virt[PinFlashCS].onWrite = nor.chipSelect
	bus.attach(virt[PinDisplayCS], panel)
	bus.attach(virt[PinFlashCS], nor)

	mem := &hostMemory{flash: internal, regs: make(map[uint32]uint32)}
	var cycles CycleCounter = hostCycles{t0: time.Now()}
	if cfg.VirtualClock {
		cycles = &virtualCycles{}
	}
	h := &Host{
		logger:    logger,
		backlight: backlight,
		gpio:      newVirtualGPIO(pins),
		bus:       bus,
		panel:     panel,
		internal:  internal,
		external:  spiflash.New(bus, pins[PinFlashCS], norStore.SizeBytes()),
		norStore:  norStore,
		mem:       mem,
		cycles:    cycles,
		cpu:       &hostCPU{logger: logger, mem: mem, onReset: cfg.OnReset},
		onStart:   cfg.OnStart,
	}
	if err := pins[PinFlashCS].Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		return nil, err
	}
	if err := h.external.Configure(); err != nil {
		return nil, err
	}
	h.loader = newSlotLoader(h.external, h.start)
	return h, nil
}

func (h *Host) Logger() Logger        { return h.logger }
func (h *Host) Backlight() LED        { return h.backlight }
func (h *Host) GPIO() GPIO            { return h.gpio }
func (h *Host) SPI() drivers.SPI      { return h.bus }
func (h *Host) Registers() Registers  { return h.mem }
func (h *Host) Cycles() CycleCounter  { return h.cycles }
func (h *Host) CPU() CPU              { return h.cpu }
func (h *Host) Loader() BootLoader    { return h.loader }
func (h *Host) Panel() *Panel         { return h.panel }
func (h *Host) BacklightOn() bool     { return h.backlight.isOn() }
func (h *Host) Resets() int           { return h.cpu.count() }
func (h *Host) Pending(slot int) bool { return h.loader.Pending(slot) }
func (h *Host) RawExternal() Flash    { return h.norStore }
func (h *Host) Flash(dev FlashDevice) Flash {
	switch dev {
	case FlashInternal:
		return h.internal
	case FlashExternal:
		return h.external
	default:
		return nil
	}
}

// Started reports the vector table the application was started from.
func (h *Host) Started() (uint32, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entry, h.started
}

// RegisterWrites returns every value stored to addr, oldest first.
func (h *Host) RegisterWrites(addr uint32) []uint32 {
	return h.mem.writesTo(addr)
}

// Close flushes file-backed flash images.
func (h *Host) Close() error {
	err := h.internal.close()
	if nerr := h.norStore.close(); err == nil {
		err = nerr
	}
	return err
}

func (h *Host) start(vectorTable uint32) {
	h.mu.Lock()
	h.started = true
	h.entry = vectorTable
	fn := h.onStart
	h.mu.Unlock()

	sp := h.mem.Load32(vectorTable)
	pc := h.mem.Load32(vectorTable + 4)
	h.logger.WriteLineString(fmt.Sprintf("system: start application vt=0x%08x sp=0x%08x pc=0x%08x", vectorTable, sp, pc))
	if fn != nil {
		fn(vectorTable)
	}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("backlight: ON")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("backlight: OFF")
}

func (l *hostLED) isOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

// hostMemory maps internal flash at address zero and keeps every other
// address as a plain register.
type hostMemory struct {
	mu     sync.Mutex
	flash  *hostFlash
	regs   map[uint32]uint32
	writes map[uint32][]uint32
}

func (m *hostMemory) Load32(addr uint32) uint32 {
	if m.flash != nil && uint64(addr)+4 <= uint64(m.flash.SizeBytes()) {
		var b [4]byte
		if _, err := m.flash.ReadAt(b[:], addr); err != nil {
			return 0
		}
		return binary.LittleEndian.Uint32(b[:])
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[addr]
}

func (m *hostMemory) Store32(addr, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regs[addr] = v
	if m.writes == nil {
		m.writes = make(map[uint32][]uint32)
	}
	m.writes[addr] = append(m.writes[addr], v)
}

func (m *hostMemory) writesTo(addr uint32) []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uint32(nil), m.writes[addr]...)
}

type hostCycles struct {
	t0 time.Time
}

func (c hostCycles) Cycles() uint32 {
	return uint32(time.Since(c.t0).Nanoseconds() * CPUFrequencyMHz / 1000)
}

type virtualCycles struct {
	mu  sync.Mutex
	now uint32
}

func (c *virtualCycles) Cycles() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.now
	c.now += CPUFrequencyMHz * 1000
	return v
}

type hostCPU struct {
	mu      sync.Mutex
	logger  *hostLogger
	mem     *hostMemory
	resets  int
	onReset func()
}

func (c *hostCPU) SetVectorTableBase(addr uint32) {
	c.mem.Store32(RegVTOR, addr)
}

func (c *hostCPU) Reset() {
	c.mu.Lock()
	c.resets++
	fn := c.onReset
	c.mu.Unlock()
	c.logger.WriteLineString("system: reset")
	if fn != nil {
		fn()
	}
}

func (c *hostCPU) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resets
}
