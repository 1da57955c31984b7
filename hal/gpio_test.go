package hal

import (
	"testing"

	"tinycore-go/errcode"
	"tinycore-go/variants/tinyx7"
)

func TestOutputSetToggle(t *testing.T) {
	h, m := newHAL()
	g, _ := h.ClaimGPIO("led", tinyx7.PA3)
	if err := g.ConfigureOutput(true); err != nil {
		t.Fatal(err)
	}
	if m.Raw(tinyx7.DDRA) != 0x08 || m.Raw(tinyx7.PORTA) != 0x08 {
		t.Fatalf("DDRA=%#x PORTA=%#x", m.Raw(tinyx7.DDRA), m.Raw(tinyx7.PORTA))
	}
	if !g.Get() {
		t.Fatal("output high should read high")
	}
	g.Toggle()
	if g.Get() || m.Raw(tinyx7.PORTA) != 0 {
		t.Fatal("toggle should drive low")
	}
	g.Set(true)
	if !g.Get() {
		t.Fatal("Set(true)")
	}
}

func TestOutputLeavesNeighbours(t *testing.T) {
	h, m := newHAL()
	a, _ := h.ClaimGPIO("a", tinyx7.PB0)
	b, _ := h.ClaimGPIO("b", tinyx7.PB1)
	_ = a.ConfigureOutput(true)
	_ = b.ConfigureOutput(false)
	b.Set(true)
	a.Set(false)
	if got := m.Raw(tinyx7.PORTB); got != 0x02 {
		t.Fatalf("PORTB=%#x want 0x02", got)
	}
	if got := m.Raw(tinyx7.DDRB); got != 0x03 {
		t.Fatalf("DDRB=%#x want 0x03", got)
	}
}

func TestInputPulls(t *testing.T) {
	h, m := newHAL()
	g, _ := h.ClaimGPIO("btn", tinyx7.PB2)
	if err := g.ConfigureInput(PullUp); err != nil {
		t.Fatal(err)
	}
	if !g.Get() {
		t.Fatal("pull-up should read high")
	}
	m.Drive(tinyx7.PB2, false)
	if g.Get() {
		t.Fatal("pressed button should read low")
	}
	if err := g.ConfigureInput(PullNone); err != nil {
		t.Fatal(err)
	}
	if m.Raw(tinyx7.PORTB)&0x04 != 0 {
		t.Fatal("PullNone should clear the pull-up")
	}
	if err := g.ConfigureInput(PullDown); errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("PullDown err=%v", err)
	}
}

func TestParseEdge(t *testing.T) {
	cases := map[string]Edge{
		"rising": EdgeRising, " Falling ": EdgeFalling, "both": EdgeBoth,
		"change": EdgeBoth, "LOW": EdgeLow, "": EdgeNone, "bogus": EdgeNone,
	}
	for in, want := range cases {
		if got := ParseEdge(in); got != want {
			t.Fatalf("ParseEdge(%q)=%v want %v", in, got, want)
		}
	}
	if isc, ok := SenseBits(EdgeFalling); !ok || isc != 0b10 {
		t.Fatalf("SenseBits(falling)=%#b,%v", isc, ok)
	}
	if _, ok := SenseBits(EdgeNone); ok {
		t.Fatal("EdgeNone has no sense bits")
	}
	if EdgeToString(EdgeLow) != "low" || EdgeToString(EdgeNone) != "none" || EdgeToString(EdgeBoth) != "both" {
		t.Fatal("EdgeToString")
	}
}
