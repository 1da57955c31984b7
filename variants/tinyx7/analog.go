package tinyx7

import "tinycore-go/variants"

// Pins 8..12 (PB0..PB4) have no ADC; PB5..PB7 carry channels 8..10.
const analogPinOffset = 5

// AnalogInputOf returns the ADC channel on p, or NotAnalog.
func AnalogInputOf(p Pin) ADCChannel {
	switch {
	case p < PB0:
		return ADCChannel(p)
	case p > PB4 && p <= PB7:
		return ADCChannel(p - analogPinOffset)
	default:
		return variants.NotAnalog
	}
}

// DigitalPinOf returns the pin carrying channel ch. The channel flag is
// ignored. Internal, differential and reserved channels give NotAPin.
func DigitalPinOf(ch ADCChannel) Pin {
	c := ch.Ch()
	switch {
	case c < 8:
		return Pin(c)
	case c < NumAnalogInputs:
		return Pin(c + analogPinOffset)
	default:
		return variants.NotAPin
	}
}

// ValidChannel reports whether ch (flagged or not) is a real multiplexer
// selection: an input channel, an internal source or a differential pair.
func ValidChannel(ch ADCChannel) bool {
	c := ch.Ch()
	switch {
	case c < NumAnalogInputs:
		return true
	case c >= ADCTemperature.Ch() && c <= ADCGround.Ch():
		return true
	default:
		return c >= DiffA0A1x8.Ch() && c <= DiffA9A10x20.Ch()
	}
}

// AnalogPin resolves v, either a pin number or a flagged channel such as A3,
// to the digital pin it refers to.
func AnalogPin(v uint8) Pin {
	if ADCChannel(v)&variants.ChannelFlag != 0 {
		return DigitalPinOf(ADCChannel(v))
	}
	if AnalogInputOf(Pin(v)) == variants.NotAnalog {
		return variants.NotAPin
	}
	return Pin(v)
}

// Reference is a voltage reference selection pre-encoded for the registers:
// bits 7:6 go to ADMUX REFS, bits 2:1 to AMISCR AREFEN/XREFEN.
type Reference uint8

// Encoded as (x&3)<<6 | (x&0xC)>>1 from the 4-bit selector x.
const (
	Default          Reference = (0x00&0x03)<<6 | (0x00&0x0C)>>1
	External         Reference = (0x08&0x03)<<6 | (0x08&0x0C)>>1
	Internal1V1      Reference = (0x02&0x03)<<6 | (0x02&0x0C)>>1 // AREF pin free
	Internal                   = Internal1V1
	Internal2V56     Reference = (0x03&0x03)<<6 | (0x03&0x0C)>>1 // AREF pin free
	Internal1V1XRef  Reference = (0x06&0x03)<<6 | (0x06&0x0C)>>1 // drives AREF
	Internal2V56XRef Reference = (0x07&0x03)<<6 | (0x07&0x0C)>>1 // drives AREF
)

// RefsBits returns the ADMUX portion of r.
func (r Reference) RefsBits() uint8 { return uint8(r) & (1<<REFS1 | 1<<REFS0) }

// AMISCRBits returns the AMISCR portion of r.
func (r Reference) AMISCRBits() uint8 { return uint8(r) & (1<<AREFEN | 1<<XREFEN) }

// Special channels.
const (
	ADCTemperature = variants.ChannelFlag | 0x0B
	ADCInternal1V1 = variants.ChannelFlag | 0x0C
	ADCAVCCDiv4    = variants.ChannelFlag | 0x0D
	ADCGround      = variants.ChannelFlag | 0x0E
)

// Differential channels, positive input first.
const (
	DiffA0A1x8   = variants.ChannelFlag | 0x10
	DiffA0A1x20  = variants.ChannelFlag | 0x11
	DiffA1A2x8   = variants.ChannelFlag | 0x12
	DiffA1A2x20  = variants.ChannelFlag | 0x13
	DiffA2A3x8   = variants.ChannelFlag | 0x14
	DiffA2A3x20  = variants.ChannelFlag | 0x15
	DiffA4A5x8   = variants.ChannelFlag | 0x16
	DiffA4A5x20  = variants.ChannelFlag | 0x17
	DiffA5A6x8   = variants.ChannelFlag | 0x18
	DiffA5A6x20  = variants.ChannelFlag | 0x19
	DiffA6A7x8   = variants.ChannelFlag | 0x1A
	DiffA6A7x20  = variants.ChannelFlag | 0x1B
	DiffA8A9x8   = variants.ChannelFlag | 0x1C
	DiffA8A9x20  = variants.ChannelFlag | 0x1D
	DiffA9A10x8  = variants.ChannelFlag | 0x1E
	DiffA9A10x20 = variants.ChannelFlag | 0x1F
)

var diffPairs = [8][2]ADCChannel{
	{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}, {8, 9}, {9, 10},
}

// Diff decodes a differential selection into its inputs and gain.
func Diff(ch ADCChannel) (pos, neg ADCChannel, gain int, ok bool) {
	c := ch.Ch()
	if c < 0x10 || c > 0x1F {
		return 0, 0, 0, false
	}
	i := c - 0x10
	gain = 8
	if i&1 != 0 {
		gain = 20
	}
	pr := diffPairs[i>>1]
	return pr[0], pr[1], gain, true
}
