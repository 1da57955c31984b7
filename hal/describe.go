package hal

import (
	"tinycore-go/types"
	"tinycore-go/variants"
)

// Describe renders the table as JSON-ready documents.
func (h *HAL) Describe() types.VariantDoc {
	doc := types.VariantDoc{
		Name:         h.tbl.Name(),
		DigitalPins:  h.tbl.NumDigitalPins(),
		AnalogInputs: h.tbl.NumAnalogInputs(),
	}
	for p := 0; p < h.tbl.NumDigitalPins(); p++ {
		info, err := h.Info(variants.Pin(p))
		if err != nil {
			continue
		}
		doc.Pins = append(doc.Pins, pinDoc(h.tbl, info))
	}
	return doc
}

func pinDoc(tbl variants.Table, info PinInfo) types.PinDoc {
	bit := bitIndex(info.Mask)
	regs, _ := tbl.PortRegisters(info.Port)
	d := types.PinDoc{
		Pin:          int(info.Pin),
		Name:         info.Name,
		Port:         info.Port.String(),
		Bit:          bit,
		Capabilities: []types.Kind{types.KindGPIO},
		PCInt: types.PCIntDoc{
			Mask: info.PCInt.Mask, Bit: info.PCInt.MaskBit,
			Ctrl: info.PCInt.Ctrl, CtrlBit: info.PCInt.CtrlBit,
		},
		Registers: types.PortRegDoc{DDR: regs.Mode, PORT: regs.Output, PIN: regs.Input},
	}
	if info.Timer != variants.NotOnTimer {
		d.Capabilities = append(d.Capabilities, types.KindPWM)
		d.Timer = info.Timer.String()
	}
	if info.Channel != variants.NotAnalog {
		ch := int(info.Channel)
		d.Capabilities = append(d.Capabilities, types.KindADC)
		d.Channel = &ch
	}
	if info.Interrupt != variants.NotAnInterrupt {
		n := info.Interrupt
		d.Capabilities = append(d.Capabilities, types.KindInterrupt)
		d.Interrupt = &n
	}
	if info.PCInt.Mask != 0 {
		d.Capabilities = append(d.Capabilities, types.KindPCInt)
	}
	return d
}

func bitIndex(mask uint8) int {
	for i := 0; i < 8; i++ {
		if mask == 1<<i {
			return i
		}
	}
	return -1
}
