package conv

const hexd = "0123456789ABCDEF"

// Hex writes n as digits uppercase hex digits without 0x, zero-padded,
// into the tail of buf and returns the used slice.
func Hex(buf []byte, n uint32, digits int) []byte {
	if digits <= 0 || len(buf) < digits {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < digits; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// U8Hex formats a register value as "0xNN".
func U8Hex(n uint8) string {
	var b [4]byte
	b[0], b[1] = '0', 'x'
	Hex(b[2:], uint32(n), 2)
	return string(b[:])
}

// U16Hex formats a data-space address as "0xNNNN".
func U16Hex(n uint16) string {
	var b [6]byte
	b[0], b[1] = '0', 'x'
	Hex(b[2:], uint32(n), 4)
	return string(b[:])
}
