package hal

import (
	"testing"

	"tinycore-go/errcode"
	"tinycore-go/variants/tinyx7"
)

func TestAnalogWriteTimer0(t *testing.T) {
	h, m := newHAL()
	if err := h.AnalogWrite(tinyx7.PA2, 100); err != nil {
		t.Fatal(err)
	}
	if m.Raw(tinyx7.OCR0A) != 100 {
		t.Fatalf("OCR0A=%d", m.Raw(tinyx7.OCR0A))
	}
	if m.Raw(tinyx7.TCCR0A)>>6 != 0b10 {
		t.Fatalf("TCCR0A=%#b", m.Raw(tinyx7.TCCR0A))
	}
	if m.Raw(tinyx7.DDRA)&0x04 == 0 {
		t.Fatal("PWM pin should be an output")
	}
	if !h.PWMActive(tinyx7.PA2) {
		t.Fatal("PWMActive")
	}
	g, _ := h.ClaimGPIO("x", tinyx7.PA2)
	g.Set(true)
	if h.PWMActive(tinyx7.PA2) || m.Raw(tinyx7.TCCR0A) != 0 {
		t.Fatal("digital write should disconnect PWM")
	}
}

func TestConfigureInputStopsPWM(t *testing.T) {
	h, m := newHAL()
	_ = h.AnalogWrite(tinyx7.PA2, 100)
	g, _ := h.ClaimGPIO("in", tinyx7.PA2)
	if err := g.ConfigureInput(PullNone); err != nil {
		t.Fatal(err)
	}
	if h.PWMActive(tinyx7.PA2) || m.Raw(tinyx7.DDRA)&0x04 != 0 {
		t.Fatal("input pin should be off its compare output")
	}
}

func TestAnalogWriteSteering(t *testing.T) {
	h, m := newHAL()
	_ = h.AnalogWrite(tinyx7.PB0, 10) // OC1AU
	_ = h.AnalogWrite(tinyx7.PB2, 10) // OC1AV, same compare unit
	_ = h.AnalogWrite(tinyx7.PB3, 50) // OC1BV
	if got := m.Raw(tinyx7.TCCR1D); got != 1<<tinyx7.OC1AU|1<<tinyx7.OC1AV|1<<tinyx7.OC1BV {
		t.Fatalf("TCCR1D=%#b", got)
	}
	if m.Raw(tinyx7.OCR1AL) != 10 || m.Raw(tinyx7.OCR1BL) != 50 || m.Raw(tinyx7.OCR1AL+1) != 0 {
		t.Fatal("compare registers")
	}
	if got := m.Raw(tinyx7.TCCR1A) >> 4; got != 0b1010 {
		t.Fatalf("TCCR1A COM bits %#b", got)
	}
	// Stopping PB0 leaves PB2 on the shared unit running.
	g, _ := h.ClaimGPIO("x", tinyx7.PB0)
	g.Set(false)
	if h.PWMActive(tinyx7.PB0) || !h.PWMActive(tinyx7.PB2) {
		t.Fatal("steering should only unhook PB0")
	}
}

func TestAnalogWriteEnds(t *testing.T) {
	h, m := newHAL()
	_ = h.AnalogWrite(tinyx7.PB5, 255)
	if h.PWMActive(tinyx7.PB5) || m.Raw(tinyx7.PORTB)&(1<<5) == 0 {
		t.Fatal("255 should be a plain high")
	}
	_ = h.AnalogWrite(tinyx7.PB5, 0)
	if m.Raw(tinyx7.PORTB)&(1<<5) != 0 {
		t.Fatal("0 should be a plain low")
	}
}

func TestAnalogWriteNoPWM(t *testing.T) {
	h, _ := newHAL()
	if err := h.AnalogWrite(tinyx7.PA0, 10); errcode.Of(err) != errcode.NoPWM {
		t.Fatalf("err=%v", err)
	}
	if err := h.AnalogWrite(99, 10); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("err=%v", err)
	}
}
