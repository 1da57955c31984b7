package types

// ------------------------
// Pin capability kinds
// ------------------------

type Kind string

const (
	KindGPIO      Kind = "gpio"
	KindPWM       Kind = "pwm"
	KindADC       Kind = "adc"
	KindInterrupt Kind = "interrupt"
	KindPCInt     Kind = "pcint"
)
