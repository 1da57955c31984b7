package hal

import (
	"strings"

	"tinycore-go/variants"
)

// RegisterFile is the data-space the HAL drives. On hardware it is volatile
// memory access; on the host it is regsim.Memory.
type RegisterFile interface {
	Load(addr uint16) uint8
	Store(addr uint16, v uint8)
}

// ---- GPIO handles ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOHandle interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(bool)
	Get() bool
	Toggle()
}

// Edge selection for INTn.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
	EdgeLow
)

// ISCn1:0 encodings.
var edgeSense = [...]uint8{
	EdgeLow:     0b00,
	EdgeBoth:    0b01,
	EdgeFalling: 0b10,
	EdgeRising:  0b11,
}

// SenseBits returns the ISCn1:0 value selecting edge.
func SenseBits(e Edge) (uint8, bool) {
	if e == EdgeNone || int(e) >= len(edgeSense) {
		return 0, false
	}
	return edgeSense[e], true
}

func EdgeToString(e Edge) string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	case EdgeLow:
		return "low"
	default:
		return "none"
	}
}

// ParseEdge converts a string to an Edge enum.
// Accepts: "rising", "falling", "both"/"change", "low", "none" (case-insensitive).
func ParseEdge(s string) Edge {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rising":
		return EdgeRising
	case "falling":
		return EdgeFalling
	case "both", "change":
		return EdgeBoth
	case "low":
		return EdgeLow
	default:
		return EdgeNone
	}
}

// PinInfo is everything the table says about one pin.
type PinInfo struct {
	Pin       variants.Pin
	Name      string // "PB6"
	Port      variants.Port
	Mask      uint8
	Timer     variants.Timer
	Channel   variants.ADCChannel
	Interrupt int
	PCInt     variants.PCInt
}
