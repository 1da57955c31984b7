package tinyx7

// Hardware SPI.
const (
	MISO = PA2
	MOSI = PA4
	SCK  = PA5
	SS   = PA6
)

// USI, used for TWI since the part has no TWI module.
const (
	PinUSIDI  = PB0
	PinUSIDO  = PB1
	PinUSISCK = PB2

	USIDataDDR  = DDRB
	USIDataPort = PORTB
	USIDataPin  = PINB

	USIClockBit = PINB2
	USIDOBit    = PINB1
	USIDIBit    = PINB0

	USIStartCondInt = USISIF
)

// I2C pins follow the USI.
const (
	SDA = PinUSIDI
	SCL = PinUSISCK
)

// The single hardware serial port is the LIN/UART.
const (
	PinHWSerial0TX = PA1
	PinHWSerial0RX = PA0

	HWSerial0IsLIN = true
)

// Analog comparator.
const (
	AnalogCompDDR  = DDRA
	AnalogCompPort = PORTA
	AnalogCompPin  = PINA

	AnalogCompAIN0Bit = 6
	AnalogCompAIN1Bit = 7
)
