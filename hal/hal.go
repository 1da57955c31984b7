// Package hal is generic board support written against variants.Table:
// digital I/O, pin-change and external interrupt enables, and PWM output.
// It only touches registers; interrupt handlers and peripheral drivers live
// elsewhere.
package hal

import (
	"sync"

	"tinycore-go/errcode"
	"tinycore-go/variants"
	"tinycore-go/x/tablex"
)

type HAL struct {
	tbl  variants.Table
	regs RegisterFile

	mu    sync.Mutex
	used  map[variants.Pin]string // pin -> devID
	cache map[variants.Pin]*gpioPin

	io sync.Mutex // serialises read-modify-write on shared registers
}

func New(tbl variants.Table, regs RegisterFile) *HAL {
	return &HAL{
		tbl:   tbl,
		regs:  regs,
		used:  make(map[variants.Pin]string),
		cache: make(map[variants.Pin]*gpioPin),
	}
}

func (h *HAL) Table() variants.Table { return h.tbl }

func (h *HAL) valid(p variants.Pin) bool { return tablex.In(p, h.tbl.NumDigitalPins()) }

// Info collects the table entries for p.
func (h *HAL) Info(p variants.Pin) (PinInfo, error) {
	if !h.valid(p) {
		return PinInfo{}, errcode.UnknownPin
	}
	pc, _ := h.tbl.PCIntOf(p)
	port, mask := h.tbl.PortOf(p), h.tbl.BitMaskOf(p)
	return PinInfo{
		Pin:       p,
		Name:      port.String() + string(rune('0'+bitIndex(mask))),
		Port:      port,
		Mask:      mask,
		Timer:     h.tbl.TimerOf(p),
		Channel:   h.tbl.AnalogInputOf(p),
		Interrupt: h.tbl.InterruptOf(p),
		PCInt:     pc,
	}, nil
}

// ---- pin registry ----

func (h *HAL) lookup(p variants.Pin) (*gpioPin, error) {
	if !h.valid(p) {
		return nil, errcode.UnknownPin
	}
	if g, ok := h.cache[p]; ok {
		return g, nil
	}
	regs, ok := h.tbl.PortRegisters(h.tbl.PortOf(p))
	if !ok {
		return nil, errcode.UnknownPort
	}
	g := &gpioPin{h: h, n: p, regs: regs, mask: h.tbl.BitMaskOf(p)}
	h.cache[p] = g
	return g, nil
}

// ClaimGPIO hands pin p to devID. A pin has at most one owner.
func (h *HAL) ClaimGPIO(devID string, p variants.Pin) (GPIOHandle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	g, err := h.lookup(p)
	if err != nil {
		return nil, err
	}
	if owner, inUse := h.used[p]; inUse && owner != "" {
		return nil, &errcode.E{C: errcode.PinInUse, Op: "claim_gpio", Msg: "owned by " + owner}
	}
	h.used[p] = devID
	return g, nil
}

// ReleaseGPIO frees p if devID owns it.
func (h *HAL) ReleaseGPIO(devID string, p variants.Pin) {
	h.mu.Lock()
	if owner, ok := h.used[p]; ok && owner == devID {
		delete(h.used, p)
	}
	h.mu.Unlock()
}

// Owner returns the device holding p, if any.
func (h *HAL) Owner(p variants.Pin) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	owner, ok := h.used[p]
	return owner, ok
}

// ---- register helpers ----

func (h *HAL) update(addr uint16, clear, set uint8) {
	h.io.Lock()
	h.regs.Store(addr, h.regs.Load(addr)&^clear|set)
	h.io.Unlock()
}

func (h *HAL) setBits(addr uint16, mask uint8)   { h.update(addr, 0, mask) }
func (h *HAL) clearBits(addr uint16, mask uint8) { h.update(addr, mask, 0) }
