package hal

import (
	"tinycore-go/errcode"
	"tinycore-go/variants"
)

// Non-inverting compare output mode (COMnx1:0 = 10).
const comClearOnMatch = 0b10

// AnalogWrite drives duty/255 on p. 0 and 255 fall back to a plain low or
// high so the output has no glitches at the ends.
func (h *HAL) AnalogWrite(p variants.Pin, duty uint8) error {
	if !h.valid(p) {
		return errcode.UnknownPin
	}
	out, ok := h.tbl.TimerOutput(h.tbl.TimerOf(p))
	if !ok {
		return &errcode.E{C: errcode.NoPWM, Op: "analog_write"}
	}
	h.mu.Lock()
	g, err := h.lookup(p)
	h.mu.Unlock()
	if err != nil {
		return err
	}
	h.setBits(g.regs.Mode, g.mask)
	if duty == 0 || duty == 0xFF {
		g.Set(duty == 0xFF)
		return nil
	}
	if out.Wide {
		// High byte first; it latches on the low-byte write.
		h.regs.Store(out.Compare+1, 0)
	}
	h.regs.Store(out.Compare, duty)
	h.update(out.Control, 0b11<<out.COMShift, comClearOnMatch<<out.COMShift)
	if out.Steer != 0 {
		h.setBits(out.Steer, 1<<out.SteerBit)
	}
	return nil
}

// stopPWM disconnects p from its compare output, if it has one.
func (h *HAL) stopPWM(p variants.Pin) {
	out, ok := h.tbl.TimerOutput(h.tbl.TimerOf(p))
	if !ok {
		return
	}
	if out.Steer != 0 {
		// Compare unit is shared across the steered pins; only unhook this one.
		h.clearBits(out.Steer, 1<<out.SteerBit)
		return
	}
	h.clearBits(out.Control, 0b11<<out.COMShift)
}

// PWMActive reports whether p currently outputs its compare match.
func (h *HAL) PWMActive(p variants.Pin) bool {
	out, ok := h.tbl.TimerOutput(h.tbl.TimerOf(p))
	if !ok {
		return false
	}
	if h.regs.Load(out.Control)&(0b11<<out.COMShift) == 0 {
		return false
	}
	return out.Steer == 0 || h.regs.Load(out.Steer)&(1<<out.SteerBit) != 0
}
