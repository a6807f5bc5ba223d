package hal

import (
	"bytes"
	"fmt"
)

// bootMagic is the MCUboot image trailer magic; writing it to the end of a
// slot requests a test swap to that slot on the next boot.
var bootMagic = [16]byte{
	0x77, 0xc2, 0x95, 0xf3,
	0x60, 0xd2, 0xef, 0x7f,
	0x35, 0x52, 0x50, 0x0f,
	0x2c, 0xb6, 0x79, 0x80,
}

type slotLoader struct {
	flash    Flash
	slots    []uint32
	slotSize uint32
	resp     BootResponse
	start    func(vectorTable uint32)
}

func newSlotLoader(flash Flash, start func(uint32)) *slotLoader {
	return &slotLoader{
		flash:    flash,
		slots:    []uint32{SecondarySlotOffset},
		slotSize: SlotSize,
		resp: BootResponse{
			FlashBase:   0,
			ImageOffset: PrimarySlotOffset,
			HeaderSize:  ImageHeaderSize,
		},
		start: start,
	}
}

func (l *slotLoader) MarkPending(slot int) error {
	if slot < 0 || slot >= len(l.slots) {
		return fmt.Errorf("loader: no slot %d", slot)
	}
	off := l.slots[slot] + l.slotSize - uint32(len(bootMagic))

	var cur [len(bootMagic)]byte
	if _, err := l.flash.ReadAt(cur[:], off); err != nil {
		return fmt.Errorf("loader: read trailer of slot %d: %w", slot, err)
	}
	if bytes.Equal(cur[:], bootMagic[:]) {
		return nil
	}
	if _, err := l.flash.WriteAt(bootMagic[:], off); err != nil {
		return fmt.Errorf("loader: write trailer of slot %d: %w", slot, err)
	}
	return nil
}

// Pending reports whether slot carries the swap request magic.
func (l *slotLoader) Pending(slot int) bool {
	if slot < 0 || slot >= len(l.slots) {
		return false
	}
	var cur [len(bootMagic)]byte
	off := l.slots[slot] + l.slotSize - uint32(len(bootMagic))
	if _, err := l.flash.ReadAt(cur[:], off); err != nil {
		return false
	}
	return bytes.Equal(cur[:], bootMagic[:])
}

func (l *slotLoader) Response() BootResponse { return l.resp }

func (l *slotLoader) Start(vectorTable uint32) {
	if l.start != nil {
		l.start(vectorTable)
	}
}
