package tinyx7

// Data-space addresses (I/O address + 0x20 for the low I/O registers).
const (
	PINA  uint16 = 0x20
	DDRA  uint16 = 0x21
	PORTA uint16 = 0x22
	PINB  uint16 = 0x23
	DDRB  uint16 = 0x24
	PORTB uint16 = 0x25

	EIFR  uint16 = 0x3C
	EIMSK uint16 = 0x3D

	TCCR0A uint16 = 0x44
	TCCR0B uint16 = 0x45
	TCNT0  uint16 = 0x46
	OCR0A  uint16 = 0x47

	PCICR  uint16 = 0x68
	EICRA  uint16 = 0x69
	PCMSK0 uint16 = 0x6B
	PCMSK1 uint16 = 0x6C

	AMISCR uint16 = 0x77
	ADCSRA uint16 = 0x7A
	ADCSRB uint16 = 0x7B
	ADMUX  uint16 = 0x7C
	DIDR0  uint16 = 0x7E
	DIDR1  uint16 = 0x7F

	TCCR1A uint16 = 0x80
	TCCR1B uint16 = 0x81
	TCCR1C uint16 = 0x82
	TCCR1D uint16 = 0x83
	OCR1AL uint16 = 0x88
	OCR1BL uint16 = 0x8A

	USICR uint16 = 0xB8
	USISR uint16 = 0xB9
	USIDR uint16 = 0xBA
	USIBR uint16 = 0xBB
)

// Bit positions.
const (
	PCIE0 = 0
	PCIE1 = 1

	INT0 = 0
	INT1 = 1

	// TCCR1D output steering
	OC1AU = 0
	OC1AV = 1
	OC1AW = 2
	OC1AX = 3
	OC1BU = 4
	OC1BV = 5
	OC1BW = 6
	OC1BX = 7

	// AMISCR
	ISRCEN = 0
	XREFEN = 1
	AREFEN = 2

	// ADMUX
	REFS0 = 6
	REFS1 = 7

	// USISR
	USISIF = 7

	PINB0 = 0
	PINB1 = 1
	PINB2 = 2
)

// Interrupt vector numbers (vector 0 is RESET).
const (
	INT0VectNum        = 1
	INT1VectNum        = 2
	PCINT0VectNum      = 3
	PCINT1VectNum      = 4
	USIStartVectNum    = 18
	USIOverflowVectNum = 19
)
