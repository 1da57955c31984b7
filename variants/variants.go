// Package variants defines the contract every chip variant's pin table meets,
// so board-support code can work the same way across parts.
package variants

// Pin is a digital pin index, 0..N-1 for a variant with N digital pins.
type Pin uint8

// NotAPin is returned where no digital pin corresponds to the input.
const NotAPin Pin = 0xFF

// Port identifies an I/O register group (DDRx/PORTx/PINx).
type Port uint8

const (
	NotAPort Port = iota
	PA
	PB
	PC
	PD
)

func (p Port) String() string {
	switch p {
	case PA:
		return "PA"
	case PB:
		return "PB"
	case PC:
		return "PC"
	case PD:
		return "PD"
	default:
		return "-"
	}
}

// PortRegs holds the data-space addresses of one port's register triple.
type PortRegs struct {
	Mode   uint16 // DDRx
	Output uint16 // PORTx
	Input  uint16 // PINx
}

// ADCChannel is an ADC multiplexer selection. Values with ChannelFlag set
// name a channel rather than a digital pin.
type ADCChannel uint8

const (
	ChannelFlag ADCChannel = 0x80
	NotAnalog   ADCChannel = 0xFF
)

// Ch strips the channel flag.
func (c ADCChannel) Ch() ADCChannel {
	if c == NotAnalog {
		return NotAnalog
	}
	return c &^ ChannelFlag
}

// NotAnInterrupt is the InterruptOf result for pins without a dedicated
// external interrupt.
const NotAnInterrupt = -1

// PCInt locates the pin-change interrupt enable for one pin.
type PCInt struct {
	Mask    uint16 // PCMSKn address
	MaskBit uint8
	Ctrl    uint16 // PCICR address
	CtrlBit uint8  // PCIEn
}

// ExtInt locates the sense-control and enable bits of an INTn interrupt.
type ExtInt struct {
	Sense      uint16 // EICRx address
	SenseShift uint8  // position of ISCn1:0
	Mask       uint16 // EIMSK address
	MaskBit    uint8
}

// Table is the read-only lookup surface of a pin mapping.
type Table interface {
	Name() string
	NumDigitalPins() int
	NumAnalogInputs() int

	PortOf(p Pin) Port
	BitMaskOf(p Pin) uint8
	PortRegisters(port Port) (PortRegs, bool)
	TimerOf(p Pin) Timer
	TimerOutput(t Timer) (TimerOut, bool)
	HasPWM(p Pin) bool
	AnalogInputOf(p Pin) ADCChannel
	ValidChannel(ch ADCChannel) bool
	DigitalPinOf(ch ADCChannel) Pin
	InterruptOf(p Pin) int
	PCIntOf(p Pin) (PCInt, bool)
	ExtIntOf(n int) (ExtInt, bool)
}
