package sx1262

// Marshaling of ints in big-endian order.

func marshalUint16(n uint16) []byte {
	return []byte{byte(n >> 8), byte(n & 0xFF)}
}

func marshalUint32(n uint32) []byte {
	return append(marshalUint16(uint16(n>>16)), marshalUint16(uint16(n&0xFFFF))...)
}

func marshalUint24(n uint32) []byte {
	return []byte{byte(n >> 16), byte(n >> 8), byte(n)}
}

func unmarshalUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
