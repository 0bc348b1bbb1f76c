package gblock

const (
	// Size is the length of one SMD data block and of its decoded BIN
	// equivalent. An SMD file is a 512-byte container header followed by
	// a whole number of these blocks.
	Size = 16384
	// HalfSize is the length of one byte plane inside an SMD block.
	//
	//   SMD block                       BIN block
	//   [ odd plane  | even plane ]     [ e0 o0 e1 o1 e2 o2 ... ]
	//     o0 o1 ...    e0 e1 ...
	//
	// The first half holds every odd-positioned output byte in order,
	// the second half every even-positioned one.
	HalfSize = Size / 2
)
