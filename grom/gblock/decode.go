package gblock

// Decode de-interleaves one SMD block src into the flat BIN block dst.
// Both slices must be Size bytes long and must not alias; the transform
// is total on such buffers and cannot fail.
func Decode(dst, src []byte) {
	_ = dst[Size-1]
	_ = src[Size-1]
	for i := 0; i < HalfSize; i++ {
		dst[i*2+1] = src[i]
		dst[i*2] = src[HalfSize+i]
	}
}
