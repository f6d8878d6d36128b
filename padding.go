package simdatoi

// AppendPadding appends RegisterWidth zero bytes to b, so that ParseVariable
// can be called at any offset of the unpadded data. Zero bytes are not
// digits, so a run never extends into the padding. Callers slicing the
// result keep using len(b) as the end of the real data.
func AppendPadding(b []byte) []byte {
	var pad register
	return append(b, pad[:]...)
}

// PaddedLength returns the buffer length AppendPadding produces for n bytes
// of data.
func PaddedLength(n int) int {
	return n + RegisterWidth
}
