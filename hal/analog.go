package hal

import (
	"tinycore-go/errcode"
	"tinycore-go/variants"
)

// AnalogChannel resolves v, either a pin number or a channel-flagged value,
// to the multiplexer channel to select.
func (h *HAL) AnalogChannel(v uint8) (variants.ADCChannel, error) {
	if variants.ADCChannel(v)&variants.ChannelFlag != 0 {
		c := variants.ADCChannel(v).Ch()
		if !h.tbl.ValidChannel(c) {
			return variants.NotAnalog, &errcode.E{C: errcode.NotAnalog, Op: "analog_channel", Msg: "reserved selection"}
		}
		// Internal and differential selections pass through unchanged.
		return c, nil
	}
	p := variants.Pin(v)
	if !h.valid(p) {
		return variants.NotAnalog, errcode.UnknownPin
	}
	c := h.tbl.AnalogInputOf(p)
	if c == variants.NotAnalog {
		return variants.NotAnalog, &errcode.E{C: errcode.NotAnalog, Op: "analog_channel"}
	}
	return c, nil
}
