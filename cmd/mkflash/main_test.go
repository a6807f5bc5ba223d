//go:build !tinygo

package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"wristboot/hal"
)

func TestRunWritesImages(t *testing.T) {
	dir := t.TempDir()
	factoryBlob := bytes.Repeat([]byte{0xA5, 0x5A}, 300)
	factoryPath := filepath.Join(dir, "factory.bin")
	if err := os.WriteFile(factoryPath, factoryBlob, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(dir, "", factoryPath, ""); err != nil {
		t.Fatalf("run: %v", err)
	}

	internal, err := os.ReadFile(filepath.Join(dir, "internal.flash"))
	if err != nil {
		t.Fatal(err)
	}
	if len(internal) != hal.InternalFlashSize {
		t.Fatalf("internal size=%#x want %#x", len(internal), hal.InternalFlashSize)
	}
	if got := binary.LittleEndian.Uint32(internal[hal.PrimarySlotOffset:]); got != imageMagic {
		t.Fatalf("magic=%#x want %#x", got, imageMagic)
	}
	vt := internal[hal.PrimarySlotOffset+hal.ImageHeaderSize:]
	if sp := binary.LittleEndian.Uint32(vt[0:]); sp != 0x20010000 {
		t.Fatalf("sp=%#x", sp)
	}
	if pc := binary.LittleEndian.Uint32(vt[4:]); pc&1 != 1 {
		t.Fatalf("reset vector %#x is not thumb", pc)
	}
	if internal[0] != 0xFF {
		t.Fatalf("internal[0]=%#x want erased", internal[0])
	}

	external, err := os.ReadFile(filepath.Join(dir, "external.flash"))
	if err != nil {
		t.Fatal(err)
	}
	if len(external) != hal.ExternalFlashSize {
		t.Fatalf("external size=%#x want %#x", len(external), hal.ExternalFlashSize)
	}
	if !bytes.Equal(external[:len(factoryBlob)], factoryBlob) {
		t.Fatalf("factory image not at offset 0")
	}
	if external[len(factoryBlob)] != 0xFF {
		t.Fatalf("byte after factory image not erased")
	}
}

func TestRunReplacesImages(t *testing.T) {
	dir := t.TempDir()
	secondary := filepath.Join(dir, "secondary.bin")
	if err := os.WriteFile(secondary, []byte{1, 2, 3, 4}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(dir, "", "", secondary); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := run(dir, "", "", ""); err != nil {
		t.Fatalf("second run: %v", err)
	}
	external, err := os.ReadFile(filepath.Join(dir, "external.flash"))
	if err != nil {
		t.Fatal(err)
	}
	if external[hal.SecondarySlotOffset] != 0xFF {
		t.Fatalf("secondary slot survived a rebuild")
	}
}

func TestWriteImageTooLarge(t *testing.T) {
	images, err := hal.CreateFlashImages(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer images.Close()
	big := make([]byte, hal.SlotSize)
	if err := writeImage(images.Internal, hal.PrimarySlotOffset, hal.SlotSize, big); err == nil {
		t.Fatalf("expected error for oversized image")
	}
}
