package tinyx7

import "tinycore-go/variants"

type Pin = variants.Pin

const (
	NumDigitalPins  = 16
	NumAnalogInputs = 11
)

const (
	PA0 Pin = iota
	PA1
	PA2
	PA3
	PA4
	PA5
	PA6
	PA7
	PB0
	PB1
	PB2
	PB3
	PB4 // XTAL1
	PB5 // XTAL2
	PB6
	PB7 // RESET
)

const (
	XTAL1 = PB4
	XTAL2 = PB5
	RESET = PB7

	LEDBuiltin = PA3
)

// PinAn is the digital pin carrying analog channel n.
const (
	PinA0  = PA0
	PinA1  = PA1
	PinA2  = PA2
	PinA3  = PA3
	PinA4  = PA4
	PinA5  = PA5
	PinA6  = PA6
	PinA7  = PA7
	PinA8  = PB5
	PinA9  = PB6
	PinA10 = PB7
)

// ADCCh marks n as an analog channel number rather than a pin number.
func ADCCh(n uint8) variants.ADCChannel {
	return variants.ChannelFlag | variants.ADCChannel(n)
}

// An name analog channels directly.
const (
	A0  = variants.ChannelFlag | 0
	A1  = variants.ChannelFlag | 1
	A2  = variants.ChannelFlag | 2
	A3  = variants.ChannelFlag | 3
	A4  = variants.ChannelFlag | 4
	A5  = variants.ChannelFlag | 5
	A6  = variants.ChannelFlag | 6
	A7  = variants.ChannelFlag | 7
	A8  = variants.ChannelFlag | 8
	A9  = variants.ChannelFlag | 9
	A10 = variants.ChannelFlag | 10
)

var pinNames = [NumDigitalPins]string{
	"PA0", "PA1", "PA2", "PA3", "PA4", "PA5", "PA6", "PA7",
	"PB0", "PB1", "PB2", "PB3", "PB4", "PB5", "PB6", "PB7",
}

// PinName returns "PAn"/"PBn", or "" for an invalid pin.
func PinName(p Pin) string {
	if int(p) >= NumDigitalPins {
		return ""
	}
	return pinNames[p]
}
