// Package tinyx7 is the pin mapping for the Microchip ATtiny87 and ATtiny167
// using the straight-through numbering: PA0..PA7 are pins 0..7 and PB0..PB7
// are pins 8..15. The crystal sits on PB4/PB5 and PB7 is RESET.
//
//	                +-\/-+
//	RX   ( 0) PA0  1|a   |20  PB0 ( 8)
//	TX   ( 1) PA1  2|a   |19  PB1 ( 9)
//	    *( 2) PA2  3|a   |18  PB2 (10)
//	INT1 ( 3) PA3  4|a   |17  PB3 (11)*
//	         AVCC  5|    |16  GND
//	         AGND  6|    |15  VCC
//	     ( 4) PA4  7|a   |14  PB4 (12)  XTAL1
//	     ( 5) PA5  8|a  a|13  PB5 (13)  XTAL2
//	     ( 6) PA6  9|a  a|12  PB6 (14)* INT0
//	     ( 7) PA7 10|a  a|11  PB7 (15)  RESET
//	                +----+
//
// * marks a PWM pin, a an analog input. All PB pins reach Timer1 through
// output steering; the diagram marks the ones on distinct compare units.
//
// Everything here is constant. The tables are unexported and only read.
package tinyx7
