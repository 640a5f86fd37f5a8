package smix

// A block can be held in two equivalent SIMD-register shapes: four 128-bit
// registers (one per diagonal row) or two 256-bit registers (one per pair
// of rows). Hardware vector units process whichever shape the selected ISA
// variant prefers; both shapes reinterpret the same sixteen uint32 words,
// so converting between them never moves data.
//
// viewWidth identifies which register shape an ISA variant models.
type viewWidth int

const (
	// width4 models four 128-bit registers (SSE2, SSE4.1, AVX, NEON).
	width4 viewWidth = 4
	// width8 models two 256-bit registers (AVX2).
	width8 viewWidth = 8
)
