package smix

// diagonalize rearranges src's sixteen words so that what were diagonals
// become rows, storing the result in dst. Row r, lane l of the result takes
// its value from row (r+l-1 mod 4), lane l of src:
//
//	 0  1  2  3           12   1   6  11
//	 4  5  6  7   ----->    0   5  10  15
//	 8  9 10 11   ----->    4   9  14   3
//	12 13 14 15             8  13   2   7
//
// This is the layout Salsa20's quarter-round structure wants: each of the
// four rows it operates on is already a set of mutually independent lanes.
func diagonalize(dst, src *block) {
	var tmp block
	for r := 0; r < 4; r++ {
		dstRow := tmp.row(r)
		for lane := 0; lane < 4; lane++ {
			srcRow := (r + lane + 3) % 4
			dstRow[lane] = src.row(srcRow)[lane]
		}
	}
	*dst = tmp
}

// undiagonalize is diagonalize's exact inverse: row k, lane l of the result
// takes its value from row (k-l+1 mod 4), lane l of src.
func undiagonalize(dst, src *block) {
	var tmp block
	for k := 0; k < 4; k++ {
		dstRow := tmp.row(k)
		for lane := 0; lane < 4; lane++ {
			srcRow := (k - lane + 1 + 4) % 4
			dstRow[lane] = src.row(srcRow)[lane]
		}
	}
	*dst = tmp
}

// prepare loads blockCount 64-byte blocks from src (in natural wire order)
// into dst (blockCount blocks), diagonalizing each one and rotating the
// nominally last block to the front. Every SMix operation after this point
// relies on dst[0] holding the diagonalized form of the last natural block.
// Reads from src are unaligned (the caller-supplied buffer makes no
// alignment guarantee); writes into dst are aligned, since dst is always
// backed by allocateBlocks.
func prepare(dst []block, src []byte, blockCount int) {
	var tmp, diag block
	for i := 0; i < blockCount-1; i++ {
		loadUnaligned(&tmp, src[i*blockSize:])
		diagonalize(&diag, &tmp)
		storeAligned(&dst[i+1], &diag)
	}
	loadUnaligned(&tmp, src[(blockCount-1)*blockSize:])
	diagonalize(&diag, &tmp)
	storeAligned(&dst[0], &diag)
}

// restore is prepare's exact inverse: it undiagonalizes every block of src
// and rotates the front block back to its natural last position, writing
// the result to dst in natural wire order. Reads from src are aligned;
// writes into dst are unaligned, for the same reasons as prepare.
func restore(dst []byte, src []block, blockCount int) {
	var tmp, nat block
	for i := 0; i < blockCount-1; i++ {
		loadAligned(&tmp, &src[i+1])
		undiagonalize(&nat, &tmp)
		storeUnaligned(dst[i*blockSize:], &nat)
	}
	loadAligned(&tmp, &src[0])
	undiagonalize(&nat, &tmp)
	storeUnaligned(dst[(blockCount-1)*blockSize:], &nat)
}
