package hal

// Watch wiring. Pin numbers are nRF52 P0.x GPIOs.
const (
	PinSPISCK       = 2
	PinSPISDO       = 3
	PinSPISDI       = 4
	PinFlashCS      = 5
	PinButtonIn     = 13
	PinButtonOut    = 15
	PinDisplayDC    = 18
	PinBacklight    = 23
	PinDisplayCS    = 25
	PinDisplayReset = 26

	PinCount = 32
)

// CPUFrequencyMHz is the core clock the busy-wait delay is calibrated against.
const CPUFrequencyMHz = 64

// Memory map.
const (
	// RegVTOR is the vector table offset register in the system control block.
	RegVTOR = 0xE000ED08

	// RegVersionExport is TIMER2 CC[0]; the application reads the
	// bootloader version from it before using the timer.
	RegVersionExport = 0x4000A540

	RegDEMCR     = 0xE000EDFC
	RegDWTCtrl   = 0xE0001000
	RegDWTCycles = 0xE0001004
)

// Flash layout shared by the loader and the factory restore.
const (
	InternalFlashSize       = 0x80000
	InternalFlashEraseBlock = 0x100
	ExternalFlashSize       = 0x400000
	ExternalFlashEraseBlock = 0x1000

	PrimarySlotOffset   = 0x8000
	ImageHeaderSize     = 0x20
	SecondarySlotOffset = 0x40000
	SlotSize            = 0x74000
)
