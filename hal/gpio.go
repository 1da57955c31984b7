package hal

import (
	"tinycore-go/errcode"
	"tinycore-go/variants"
)

// Concrete GPIO handle
type gpioPin struct {
	h    *HAL
	n    variants.Pin
	regs variants.PortRegs
	mask uint8
}

func (g *gpioPin) Number() int { return int(g.n) }

// ConfigureInput makes the pin an input. The PORTx bit doubles as the
// pull-up enable; there are no pull-downs.
func (g *gpioPin) ConfigureInput(pull Pull) error {
	if pull == PullDown {
		return &errcode.E{C: errcode.Unsupported, Op: "configure_input", Msg: "no pull-down"}
	}
	g.h.stopPWM(g.n)
	g.h.clearBits(g.regs.Mode, g.mask)
	if pull == PullUp {
		g.h.setBits(g.regs.Output, g.mask)
	} else {
		g.h.clearBits(g.regs.Output, g.mask)
	}
	return nil
}

func (g *gpioPin) ConfigureOutput(initial bool) error {
	g.Set(initial)
	g.h.setBits(g.regs.Mode, g.mask)
	return nil
}

func (g *gpioPin) Set(b bool) {
	g.h.stopPWM(g.n)
	if b {
		g.h.setBits(g.regs.Output, g.mask)
	} else {
		g.h.clearBits(g.regs.Output, g.mask)
	}
}

func (g *gpioPin) Get() bool { return g.h.regs.Load(g.regs.Input)&g.mask != 0 }

// Toggle writes the PINx bit, which flips PORTx in hardware.
func (g *gpioPin) Toggle() { g.h.regs.Store(g.regs.Input, g.mask) }
