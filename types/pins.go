package types

// ------------------------
// Pin descriptor (one per digital pin)
// ------------------------

type PinDoc struct {
	Pin          int        `json:"pin"`
	Name         string     `json:"name"`
	Port         string     `json:"port"`
	Bit          int        `json:"bit"`
	Capabilities []Kind     `json:"capabilities"`
	Timer        string     `json:"timer,omitempty"`
	Channel      *int       `json:"adc_channel,omitempty"`
	Interrupt    *int       `json:"interrupt,omitempty"`
	PCInt        PCIntDoc   `json:"pcint"`
	Registers    PortRegDoc `json:"registers"`
}

type PCIntDoc struct {
	Mask    uint16 `json:"mask_reg"`
	Bit     uint8  `json:"mask_bit"`
	Ctrl    uint16 `json:"ctrl_reg"`
	CtrlBit uint8  `json:"ctrl_bit"`
}

type PortRegDoc struct {
	DDR  uint16 `json:"ddr"`
	PORT uint16 `json:"port"`
	PIN  uint16 `json:"pin"`
}

// VariantDoc is the whole table.
type VariantDoc struct {
	Name         string   `json:"name"`
	DigitalPins  int      `json:"digital_pins"`
	AnalogInputs int      `json:"analog_inputs"`
	Pins         []PinDoc `json:"pins"`
}
