package tinyx7

import "tinycore-go/variants"

type table struct{ name string }

var (
	attiny167 = table{name: "attiny167"}
	attiny87  = table{name: "attiny87"}
)

// ATtiny167 returns the table for the 16 KiB part.
func ATtiny167() variants.Table { return attiny167 }

// ATtiny87 returns the table for the 8 KiB part. The pinout is identical.
func ATtiny87() variants.Table { return attiny87 }

func (t table) Name() string       { return t.name }
func (table) NumDigitalPins() int  { return NumDigitalPins }
func (table) NumAnalogInputs() int { return NumAnalogInputs }

func (table) PortOf(p Pin) Port     { return PortOf(p) }
func (table) BitMaskOf(p Pin) uint8 { return BitMaskOf(p) }
func (table) TimerOf(p Pin) Timer   { return TimerOf(p) }
func (table) HasPWM(p Pin) bool     { return HasPWM(p) }
func (table) InterruptOf(p Pin) int { return InterruptOf(p) }
func (table) DigitalPinOf(c ADCChannel) Pin {
	return DigitalPinOf(c)
}
func (table) AnalogInputOf(p Pin) ADCChannel {
	return AnalogInputOf(p)
}
func (table) ValidChannel(c ADCChannel) bool { return ValidChannel(c) }
func (table) PortRegisters(port Port) (variants.PortRegs, bool) {
	return PortRegisters(port)
}
func (table) TimerOutput(t Timer) (variants.TimerOut, bool) {
	return TimerOutput(t)
}
func (table) PCIntOf(p Pin) (variants.PCInt, bool)   { return PCIntOf(p) }
func (table) ExtIntOf(n int) (variants.ExtInt, bool) { return ExtIntOf(n) }
