package hal

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tinycore-go/types"
)

func TestDescribe(t *testing.T) {
	h, _ := newHAL()
	doc := h.Describe()
	if doc.Name != "attiny167" || len(doc.Pins) != 16 {
		t.Fatalf("doc %s with %d pins", doc.Name, len(doc.Pins))
	}
	ch, irq := 9, 0
	want := types.PinDoc{
		Pin:  14,
		Name: "PB6",
		Port: "PB",
		Bit:  6,
		Capabilities: []types.Kind{
			types.KindGPIO, types.KindPWM, types.KindADC, types.KindInterrupt, types.KindPCInt,
		},
		Timer:     "OC1AX",
		Channel:   &ch,
		Interrupt: &irq,
		PCInt:     types.PCIntDoc{Mask: 0x6C, Bit: 6, Ctrl: 0x68, CtrlBit: 1},
		Registers: types.PortRegDoc{DDR: 0x24, PORT: 0x25, PIN: 0x23},
	}
	if diff := cmp.Diff(want, doc.Pins[14]); diff != "" {
		t.Fatalf("pin 14 (-want +got):\n%s", diff)
	}
	if p := doc.Pins[0]; p.Channel == nil || *p.Channel != 0 || p.Interrupt != nil || p.Timer != "" {
		t.Fatalf("pin 0 doc %+v", p)
	}
}

func TestDescribeJSON(t *testing.T) {
	h, _ := newHAL()
	b, err := json.Marshal(h.Describe().Pins[9])
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["adc_channel"]; ok {
		t.Fatal("PB1 has no ADC channel; field should be omitted")
	}
	if m["timer"] != "OC1BU" {
		t.Fatalf("timer=%v", m["timer"])
	}
}
