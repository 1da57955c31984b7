// Package regsim is a host-side register file for the AVR I/O space.
//
// Port registers behave like the silicon: reading PINx returns the output
// latch for output bits and the external level for input bits (the PORTx
// bit acts as a pull-up when nothing drives the pin), and writing PINx
// toggles the matching PORTx bits.
package regsim

import (
	"sync"

	"tinycore-go/variants"
)

type port struct {
	regs   variants.PortRegs
	level  uint8 // externally driven level
	driven uint8 // bits with an external driver
}

// Memory implements hal.RegisterFile.
type Memory struct {
	mu    sync.Mutex
	mem   [0x100]uint8
	ports map[uint16]*port // keyed by PINx address
	tbl   variants.Table
}

// New builds an empty register file with the ports of tbl.
func New(tbl variants.Table) *Memory {
	m := &Memory{ports: make(map[uint16]*port), tbl: tbl}
	for p := 0; p < tbl.NumDigitalPins(); p++ {
		r, ok := tbl.PortRegisters(tbl.PortOf(variants.Pin(p)))
		if !ok {
			continue
		}
		if _, seen := m.ports[r.Input]; !seen {
			m.ports[r.Input] = &port{regs: r}
		}
	}
	return m
}

func (m *Memory) Load(addr uint16) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if int(addr) >= len(m.mem) {
		return 0
	}
	if p, ok := m.ports[addr]; ok {
		ddr := m.mem[p.regs.Mode]
		out := m.mem[p.regs.Output]
		in := (p.level & p.driven) | (out &^ p.driven)
		return (out & ddr) | (in &^ ddr)
	}
	return m.mem[addr]
}

func (m *Memory) Store(addr uint16, v uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if int(addr) >= len(m.mem) {
		return
	}
	if p, ok := m.ports[addr]; ok {
		m.mem[p.regs.Output] ^= v
		return
	}
	m.mem[addr] = v
}

// Drive applies an external level to pin p.
func (m *Memory) Drive(p variants.Pin, level bool) {
	m.set(p, func(pt *port, mask uint8) {
		pt.driven |= mask
		if level {
			pt.level |= mask
		} else {
			pt.level &^= mask
		}
	})
}

// Float removes any external driver from pin p.
func (m *Memory) Float(p variants.Pin) {
	m.set(p, func(pt *port, mask uint8) { pt.driven &^= mask })
}

func (m *Memory) set(p variants.Pin, fn func(*port, uint8)) {
	r, ok := m.tbl.PortRegisters(m.tbl.PortOf(p))
	if !ok {
		return
	}
	m.mu.Lock()
	fn(m.ports[r.Input], m.tbl.BitMaskOf(p))
	m.mu.Unlock()
}

// Raw returns the stored byte at addr without port semantics.
func (m *Memory) Raw(addr uint16) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if int(addr) >= len(m.mem) {
		return 0
	}
	return m.mem[addr]
}
