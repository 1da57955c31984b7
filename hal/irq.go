package hal

import (
	"tinycore-go/errcode"
	"tinycore-go/variants"
)

// EnablePinChange unmasks p and enables its pin-change group.
func (h *HAL) EnablePinChange(p variants.Pin) error {
	pc, ok := h.tbl.PCIntOf(p)
	if !ok || !h.valid(p) {
		return errcode.UnknownPin
	}
	h.setBits(pc.Mask, 1<<pc.MaskBit)
	h.setBits(pc.Ctrl, 1<<pc.CtrlBit)
	return nil
}

// DisablePinChange masks p and turns its group off once no pin in it is
// left unmasked.
func (h *HAL) DisablePinChange(p variants.Pin) error {
	pc, ok := h.tbl.PCIntOf(p)
	if !ok || !h.valid(p) {
		return errcode.UnknownPin
	}
	h.io.Lock()
	defer h.io.Unlock()
	m := h.regs.Load(pc.Mask) &^ (1 << pc.MaskBit)
	h.regs.Store(pc.Mask, m)
	if m == 0 {
		h.regs.Store(pc.Ctrl, h.regs.Load(pc.Ctrl)&^(1<<pc.CtrlBit))
	}
	return nil
}

// AttachInterrupt programs the sense control for the INTn on p and enables it.
func (h *HAL) AttachInterrupt(p variants.Pin, edge Edge) error {
	if edge == EdgeNone {
		return h.DetachInterrupt(p)
	}
	x, err := h.extInt(p)
	if err != nil {
		return err
	}
	isc, ok := SenseBits(edge)
	if !ok {
		return errcode.InvalidParams
	}
	h.update(x.Sense, 0b11<<x.SenseShift, isc<<x.SenseShift)
	h.setBits(x.Mask, 1<<x.MaskBit)
	return nil
}

func (h *HAL) DetachInterrupt(p variants.Pin) error {
	x, err := h.extInt(p)
	if err != nil {
		return err
	}
	h.clearBits(x.Mask, 1<<x.MaskBit)
	return nil
}

func (h *HAL) extInt(p variants.Pin) (variants.ExtInt, error) {
	if !h.valid(p) {
		return variants.ExtInt{}, errcode.UnknownPin
	}
	n := h.tbl.InterruptOf(p)
	if n == variants.NotAnInterrupt {
		return variants.ExtInt{}, errcode.NotAnInterrupt
	}
	x, ok := h.tbl.ExtIntOf(n)
	if !ok {
		return variants.ExtInt{}, errcode.NotAnInterrupt
	}
	return x, nil
}
