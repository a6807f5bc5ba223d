//go:build !tinygo

// Command mkflash writes the internal.flash and external.flash images the
// host simulator boots from.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"wristboot/boot/factory"
	"wristboot/hal"
)

// imageMagic starts an MCUboot image header.
const imageMagic = 0x96f3b83d

func main() {
	var dir string
	var appPath string
	var factoryPath string
	var secondaryPath string
	flag.StringVar(&dir, "dir", ".", "Directory for internal.flash and external.flash.")
	flag.StringVar(&appPath, "app", "", "Application binary for the primary slot (vector table first). Empty writes a stub.")
	flag.StringVar(&factoryPath, "factory", "", "Factory firmware image for the start of external flash.")
	flag.StringVar(&secondaryPath, "secondary", "", "Image for the secondary slot.")
	flag.Parse()

	if err := run(dir, appPath, factoryPath, secondaryPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(dir, appPath, factoryPath, secondaryPath string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %q: %w", dir, err)
	}

	images, err := hal.CreateFlashImages(dir)
	if err != nil {
		return err
	}
	defer images.Close()
	internal, external := images.Internal, images.External

	app := stubApplication()
	if appPath != "" {
		if app, err = os.ReadFile(appPath); err != nil {
			return err
		}
	}
	if err := writeImage(internal, hal.PrimarySlotOffset, hal.SlotSize, app); err != nil {
		return fmt.Errorf("primary slot: %w", err)
	}
	fmt.Printf("primary slot: %d bytes at %#x\n", len(app), hal.PrimarySlotOffset)

	if factoryPath != "" {
		blob, err := os.ReadFile(factoryPath)
		if err != nil {
			return err
		}
		r := factory.Factory
		if uint32(len(blob)) > r.Size {
			return fmt.Errorf("factory image %d bytes exceeds %#x", len(blob), r.Size)
		}
		if _, err := external.WriteAt(blob, r.SourceOffset); err != nil {
			return fmt.Errorf("factory image: %w", err)
		}
		fmt.Printf("factory image: %d bytes at %#x\n", len(blob), r.SourceOffset)
	}

	if secondaryPath != "" {
		img, err := os.ReadFile(secondaryPath)
		if err != nil {
			return err
		}
		if err := writeImage(external, hal.SecondarySlotOffset, hal.SlotSize, img); err != nil {
			return fmt.Errorf("secondary slot: %w", err)
		}
		fmt.Printf("secondary slot: %d bytes at %#x\n", len(img), hal.SecondarySlotOffset)
	}
	return nil
}

// writeImage writes an image header followed by the binary at off.
func writeImage(f hal.Flash, off, slotSize uint32, bin []byte) error {
	if uint32(len(bin))+hal.ImageHeaderSize > slotSize {
		return fmt.Errorf("image %d bytes does not fit slot of %#x", len(bin), slotSize)
	}
	hdr := make([]byte, hal.ImageHeaderSize)
	binary.LittleEndian.PutUint32(hdr[0:], imageMagic)
	binary.LittleEndian.PutUint16(hdr[8:], hal.ImageHeaderSize)
	binary.LittleEndian.PutUint32(hdr[12:], uint32(len(bin)))
	if _, err := f.WriteAt(hdr, off); err != nil {
		return err
	}
	_, err := f.WriteAt(bin, off+hal.ImageHeaderSize)
	return err
}

// stubApplication is a vector table with a stack at the top of RAM and
// every handler pointing just past the table.
func stubApplication() []byte {
	const (
		numVectors = 16 + 38
		stackTop   = 0x20010000
	)
	entry := uint32(hal.PrimarySlotOffset+hal.ImageHeaderSize+4*numVectors) | 1
	b := make([]byte, 4*numVectors+4)
	binary.LittleEndian.PutUint32(b[0:], stackTop)
	for i := 1; i < numVectors; i++ {
		binary.LittleEndian.PutUint32(b[4*i:], entry)
	}
	// b .
	binary.LittleEndian.PutUint16(b[4*numVectors:], 0xE7FE)
	return b
}
