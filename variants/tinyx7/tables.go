package tinyx7

import (
	"tinycore-go/variants"
	"tinycore-go/x/tablex"
)

type (
	Port       = variants.Port
	Timer      = variants.Timer
	ADCChannel = variants.ADCChannel
)

const (
	PA = variants.PA
	PB = variants.PB
)

var portRegs = [...]variants.PortRegs{
	variants.NotAPort: {},
	variants.PA:       {Mode: DDRA, Output: PORTA, Input: PINA},
	variants.PB:       {Mode: DDRB, Output: PORTB, Input: PINB},
}

var pinToPort = [NumDigitalPins]Port{
	PA, PA, PA, PA, PA, PA, PA, PA,
	PB, PB, PB, PB, PB, PB, PB, PB,
}

var pinToBitMask = [NumDigitalPins]uint8{
	1 << 0, 1 << 1, 1 << 2, 1 << 3, 1 << 4, 1 << 5, 1 << 6, 1 << 7,
	1 << 0, 1 << 1, 1 << 2, 1 << 3, 1 << 4, 1 << 5, 1 << 6, 1 << 7,
}

var pinToTimer = [NumDigitalPins]Timer{
	variants.NotOnTimer,
	variants.NotOnTimer,
	variants.Timer0A, // PA2
	variants.NotOnTimer,
	variants.NotOnTimer,
	variants.NotOnTimer,
	variants.NotOnTimer,
	variants.NotOnTimer,
	variants.Timer1AU,
	variants.Timer1BU,
	variants.Timer1AV,
	variants.Timer1BV,
	variants.Timer1AW,
	variants.Timer1BW,
	variants.Timer1AX,
	variants.Timer1BX,
}

var timerOutputs = [...]variants.TimerOut{
	variants.Timer0A:  {Control: TCCR0A, COMShift: 6, Compare: OCR0A},
	variants.Timer1AU: {Control: TCCR1A, COMShift: 6, Compare: OCR1AL, Steer: TCCR1D, SteerBit: OC1AU, Wide: true},
	variants.Timer1AV: {Control: TCCR1A, COMShift: 6, Compare: OCR1AL, Steer: TCCR1D, SteerBit: OC1AV, Wide: true},
	variants.Timer1AW: {Control: TCCR1A, COMShift: 6, Compare: OCR1AL, Steer: TCCR1D, SteerBit: OC1AW, Wide: true},
	variants.Timer1AX: {Control: TCCR1A, COMShift: 6, Compare: OCR1AL, Steer: TCCR1D, SteerBit: OC1AX, Wide: true},
	variants.Timer1BU: {Control: TCCR1A, COMShift: 4, Compare: OCR1BL, Steer: TCCR1D, SteerBit: OC1BU, Wide: true},
	variants.Timer1BV: {Control: TCCR1A, COMShift: 4, Compare: OCR1BL, Steer: TCCR1D, SteerBit: OC1BV, Wide: true},
	variants.Timer1BW: {Control: TCCR1A, COMShift: 4, Compare: OCR1BL, Steer: TCCR1D, SteerBit: OC1BW, Wide: true},
	variants.Timer1BX: {Control: TCCR1A, COMShift: 4, Compare: OCR1BL, Steer: TCCR1D, SteerBit: OC1BX, Wide: true},
}

// PortOf returns the port p belongs to, or NotAPort.
func PortOf(p Pin) Port { return tablex.At(pinToPort[:], p, variants.NotAPort) }

// BitMaskOf returns the single-bit mask of p within its port registers.
// Callers validate p first; an invalid pin yields 0.
func BitMaskOf(p Pin) uint8 { return tablex.At(pinToBitMask[:], p, 0) }

// PortRegisters returns the DDR/PORT/PIN addresses of port.
func PortRegisters(port Port) (variants.PortRegs, bool) {
	if port == variants.NotAPort {
		return variants.PortRegs{}, false
	}
	r := tablex.At(portRegs[:], port, variants.PortRegs{})
	return r, r.Mode != 0
}

// TimerOf returns the compare output driving p, or NotOnTimer.
func TimerOf(p Pin) Timer { return tablex.At(pinToTimer[:], p, variants.NotOnTimer) }

// TimerOutput describes the registers behind a compare output.
func TimerOutput(t Timer) (variants.TimerOut, bool) {
	o := tablex.At(timerOutputs[:], t, variants.TimerOut{})
	return o, o.Control != 0
}

// HasPWM reports whether p is wired to a compare output.
func HasPWM(p Pin) bool { return p == PA2 || (p > PA7 && p <= PB7) }
