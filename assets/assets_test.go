package assets

import (
	"testing"

	"wristboot/display/rle"
)

func TestImagesAreComplete(t *testing.T) {
	for name, img := range map[string]*rle.Image{"logo": &Logo, "version": &Version} {
		if err := img.Validate(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got, want := img.Pixels(), int(img.Width)*int(img.Height); got != want {
			t.Fatalf("%s: runs cover %d pixels, want exactly %d", name, got, want)
		}
	}
}

func TestVersionFitsBelowLogo(t *testing.T) {
	if int(Logo.Height)+int(Version.Height) > rle.MaxSide {
		t.Fatalf("logo %d + version %d rows overlap", Logo.Height, Version.Height)
	}
}
