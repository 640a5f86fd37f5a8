package smix

// mixMode controls how BlockMix interacts with a second, same-sized buffer
// while it mixes. It mirrors the three-way MixBlocksMode used by SMix's
// fill and mix phases.
type mixMode int

const (
	// mixNone performs a plain BlockMix with no interaction with a second
	// buffer.
	mixNone mixMode = iota
	// mixCopy additionally copies every pre-mix block into other. SMix's
	// fill phase uses this to snapshot each element into the big table
	// before advancing it.
	mixCopy
	// mixXor additionally xors every block of other into the
	// corresponding working block before it takes part in the mix. SMix's
	// mix phase uses this to fold a table-selected element into the
	// working state.
	mixXor
)

// mixBlocks is scrypt's BlockMix, generalized with mode exactly as
// mixCopy/mixXor require. working must already be in the rotate-last-
// to-front, diagonalized layout prepare produces; other (when mode is not
// mixNone) and shuffle must be the same length as working. The result is
// written into shuffle in the same rotate-front layout, ready to become
// the next working buffer.
//
// Blocks are produced in the classic evens-then-odds order used to make
// BlockMix's diffusion resistant to cheap precomputation, except that the
// final (nominally last) block is kept at index 0 rather than at the end,
// preserving the rotate-front invariant across repeated calls.
func mixBlocks(working, other, shuffle []block, mode mixMode) {
	m := len(working)
	half := m / 2

	var last block
	loadAligned(&last, &working[0])

	switch mode {
	case mixCopy:
		streamAligned(&other[0], &last)
	case mixXor:
		prefetchNonTemporal(&other[0])
		xorBlock(&last, &other[0])
		flush(&other[0])
	}
	previous := last

	for i := 0; i < m-1; i++ {
		var current block
		loadAligned(&current, &working[i+1])

		switch mode {
		case mixCopy:
			streamAligned(&other[i+1], &current)
		case mixXor:
			prefetchNonTemporal(&other[i+1])
			xorBlock(&current, &other[i+1])
			flush(&other[i+1])
		}

		xorBlock(&current, &previous)
		salsaCore(&current)

		idx := 1 + i/2
		if i%2 == 1 {
			idx += half
		}
		storeAligned(&shuffle[idx], &current)

		previous = current
	}

	xorBlock(&last, &previous)
	salsaCore(&last)
	storeAligned(&shuffle[0], &last)
}

// copyAndMixBlocks runs mixBlocks in mixCopy mode: it fills one row of the
// big table with working's pre-mix state while mixing working into
// shuffle.
func copyAndMixBlocks(working, tableElement, shuffle []block) {
	mixBlocks(working, tableElement, shuffle, mixCopy)
}

// xorAndMixBlocks runs mixBlocks in mixXor mode: it folds tableElement into
// working before mixing the result into shuffle.
func xorAndMixBlocks(working, tableElement, shuffle []block) {
	mixBlocks(working, tableElement, shuffle, mixXor)
}
