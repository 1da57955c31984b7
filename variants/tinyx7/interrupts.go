package tinyx7

import "tinycore-go/variants"

// InterruptOf returns the external interrupt number of p (INT0 on PB6,
// INT1 on PA3), or NotAnInterrupt.
func InterruptOf(p Pin) int {
	switch p {
	case PB6:
		return 0
	case PA3:
		return 1
	default:
		return variants.NotAnInterrupt
	}
}

// PCIntOf locates the pin-change enable for p. Port A is PCINT0..7 behind
// PCMSK0/PCIE0, port B is PCINT8..15 behind PCMSK1/PCIE1.
func PCIntOf(p Pin) (variants.PCInt, bool) {
	switch {
	case p < PB0:
		return variants.PCInt{Mask: PCMSK0, MaskBit: uint8(p), Ctrl: PCICR, CtrlBit: PCIE0}, true
	case p <= PB7:
		return variants.PCInt{Mask: PCMSK1, MaskBit: uint8(p & 7), Ctrl: PCICR, CtrlBit: PCIE1}, true
	default:
		return variants.PCInt{}, false
	}
}

// ExtIntOf returns the control bits of INTn.
func ExtIntOf(n int) (variants.ExtInt, bool) {
	switch n {
	case 0:
		return variants.ExtInt{Sense: EICRA, SenseShift: 0, Mask: EIMSK, MaskBit: INT0}, true
	case 1:
		return variants.ExtInt{Sense: EICRA, SenseShift: 2, Mask: EIMSK, MaskBit: INT1}, true
	default:
		return variants.ExtInt{}, false
	}
}
