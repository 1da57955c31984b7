package variants

// Timer identifies the timer compare output wired to a pin.
type Timer uint8

const (
	NotOnTimer Timer = iota
	Timer0A
	Timer0B
	Timer1A
	Timer1B
	// Timer1 on parts with output steering: one compare unit, several pins.
	Timer1AU
	Timer1BU
	Timer1AV
	Timer1BV
	Timer1AW
	Timer1BW
	Timer1AX
	Timer1BX
)

var timerNames = [...]string{
	NotOnTimer: "-",
	Timer0A:    "OC0A",
	Timer0B:    "OC0B",
	Timer1A:    "OC1A",
	Timer1B:    "OC1B",
	Timer1AU:   "OC1AU",
	Timer1BU:   "OC1BU",
	Timer1AV:   "OC1AV",
	Timer1BV:   "OC1BV",
	Timer1AW:   "OC1AW",
	Timer1BW:   "OC1BW",
	Timer1AX:   "OC1AX",
	Timer1BX:   "OC1BX",
}

func (t Timer) String() string {
	if int(t) < len(timerNames) {
		return timerNames[t]
	}
	return "?"
}

// TimerOut describes how to route a compare unit to its pin.
//
// Control is the register holding the COMnx bits, COMShift their position.
// Compare is the OCRnx address. When Steer is non-zero the pin is only driven
// while bit SteerBit of Steer is set.
type TimerOut struct {
	Control  uint16
	COMShift uint8
	Compare  uint16
	Steer    uint16
	SteerBit uint8
	Wide     bool // 16-bit compare register
}
