package hal

import "testing"

func TestButtonPinNeedsPullDownAndEnable(t *testing.T) {
	enable := newVirtualPin("OUT", gpioCapAll)
	pin := newButtonPin("IN", enable, func() bool { return true })

	if _, err := pin.Read(); err == nil {
		t.Fatal("expected error reading a floating input")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullDown); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	level, err := pin.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if level {
		t.Fatal("expected low while the enable pin is low")
	}

	if err := enable.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		t.Fatalf("Configure enable: %v", err)
	}
	if err := enable.Write(true); err != nil {
		t.Fatalf("Write enable: %v", err)
	}
	level, err = pin.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !level {
		t.Fatal("expected high while pressed and enabled")
	}
	if err := pin.Write(true); err == nil {
		t.Fatal("expected error writing the button input")
	}
}

func TestHoldFor(t *testing.T) {
	src := HoldFor(3)
	for i := 0; i < 3; i++ {
		if !src() {
			t.Fatalf("read %d: expected pressed", i)
		}
	}
	for i := 0; i < 5; i++ {
		if src() {
			t.Fatalf("read %d after hold: expected released", i)
		}
	}
}

func TestVirtualPinWriteRequiresOutput(t *testing.T) {
	pin := newVirtualPin("P", gpioCapAll)
	if err := pin.Write(true); err == nil {
		t.Fatal("expected error writing an input pin")
	}

	var seen []bool
	pin.onWrite = func(level bool) { seen = append(seen, level) }
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	_ = pin.Write(false)
	_ = pin.Write(true)
	if len(seen) != 2 || seen[0] || !seen[1] {
		t.Fatalf("onWrite saw %v, want [false true]", seen)
	}
}

func TestCheckConfigRejectsMissingCaps(t *testing.T) {
	if err := checkConfig("X", GPIOCapInput, GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("expected output to be rejected")
	}
	if err := checkConfig("X", GPIOCapInput, GPIOModeInput, GPIOPullUp); err == nil {
		t.Fatal("expected pull-up to be rejected")
	}
	if err := checkConfig("X", gpioCapAll, GPIOModeInput, GPIOPullDown); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
