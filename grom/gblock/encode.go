package gblock

// Encode interleaves one flat BIN block src into the SMD block dst. It
// is the exact inverse of Decode, under the same buffer contract.
func Encode(dst, src []byte) {
	_ = dst[Size-1]
	_ = src[Size-1]
	for i := 0; i < HalfSize; i++ {
		dst[i] = src[i*2+1]
		dst[HalfSize+i] = src[i*2]
	}
}
