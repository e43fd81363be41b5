package seckey

// padWithZeros pads b with leading zeros until it is size bytes long.
// If b is already size bytes or longer, it is returned unchanged.
func padWithZeros(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	padded := make([]byte, size)
	copy(padded[size-len(b):], b)
	return padded
}
