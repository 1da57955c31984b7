package hal

import (
	"testing"

	"tinycore-go/errcode"
	"tinycore-go/variants/tinyx7"
)

func TestPinChangeGroups(t *testing.T) {
	h, m := newHAL()
	if err := h.EnablePinChange(tinyx7.PA5); err != nil {
		t.Fatal(err)
	}
	if err := h.EnablePinChange(tinyx7.PB1); err != nil {
		t.Fatal(err)
	}
	if m.Raw(tinyx7.PCMSK0) != 1<<5 || m.Raw(tinyx7.PCMSK1) != 1<<1 {
		t.Fatalf("PCMSK0=%#x PCMSK1=%#x", m.Raw(tinyx7.PCMSK0), m.Raw(tinyx7.PCMSK1))
	}
	if m.Raw(tinyx7.PCICR) != 0x03 {
		t.Fatalf("PCICR=%#x", m.Raw(tinyx7.PCICR))
	}
	_ = h.EnablePinChange(tinyx7.PB7)
	_ = h.DisablePinChange(tinyx7.PB1)
	if m.Raw(tinyx7.PCICR) != 0x03 {
		t.Fatal("group 1 still has PB7 unmasked")
	}
	_ = h.DisablePinChange(tinyx7.PB7)
	if m.Raw(tinyx7.PCICR) != 0x01 || m.Raw(tinyx7.PCMSK1) != 0 {
		t.Fatalf("PCICR=%#x PCMSK1=%#x", m.Raw(tinyx7.PCICR), m.Raw(tinyx7.PCMSK1))
	}
	if err := h.EnablePinChange(16); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("err=%v", err)
	}
}

func TestAttachInterrupt(t *testing.T) {
	h, m := newHAL()
	if err := h.AttachInterrupt(tinyx7.PB6, EdgeFalling); err != nil {
		t.Fatal(err)
	}
	if err := h.AttachInterrupt(tinyx7.PA3, EdgeRising); err != nil {
		t.Fatal(err)
	}
	// INT0 falling = 10, INT1 rising = 11 at bits 3:2.
	if got := m.Raw(tinyx7.EICRA); got != 0b1110 {
		t.Fatalf("EICRA=%#b", got)
	}
	if got := m.Raw(tinyx7.EIMSK); got != 0b11 {
		t.Fatalf("EIMSK=%#b", got)
	}
	if err := h.AttachInterrupt(tinyx7.PB6, EdgeBoth); err != nil {
		t.Fatal(err)
	}
	if got := m.Raw(tinyx7.EICRA); got != 0b1101 {
		t.Fatalf("EICRA=%#b after re-attach", got)
	}
	if err := h.AttachInterrupt(tinyx7.PB6, EdgeNone); err != nil {
		t.Fatal(err)
	}
	if got := m.Raw(tinyx7.EIMSK); got != 0b10 {
		t.Fatalf("EIMSK=%#b after detach", got)
	}
	if err := h.AttachInterrupt(tinyx7.PA0, EdgeRising); errcode.Of(err) != errcode.NotAnInterrupt {
		t.Fatalf("PA0 err=%v", err)
	}
	if err := h.DetachInterrupt(20); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("pin 20 err=%v", err)
	}
}
