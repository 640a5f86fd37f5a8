package smix

import "math/bits"

// salsaRounds is the number of Salsa20 rounds scrypt's BlockMix requires
// (four column rounds alternating with four row rounds); scrypt always
// uses Salsa20/8.
const salsaRounds = 8

type quarterOp struct {
	target, a, b int
	shift        int
}

// ops describes one Salsa20 round entirely in terms of the four diagonal
// rows: each op XORs a rotated sum of two rows into a third. The rotate
// amounts {7,9,13,18} and the target sequence {2,3,0,1} are exactly as
// specified for the diagonal-layout formulation.
var ops = [4]quarterOp{
	{target: 2, a: 0, b: 1, shift: 7},
	{target: 3, a: 1, b: 2, shift: 9},
	{target: 0, a: 2, b: 3, shift: 13},
	{target: 1, a: 3, b: 0, shift: 18},
}

// rotateLanesLeft cyclically shifts the four lanes of row left by n
// positions.
func rotateLanesLeft(row *[4]uint32, n int) {
	var tmp [4]uint32
	for i := range tmp {
		tmp[i] = row[(i+n)%4]
	}
	*row = tmp
}

// salsaCore runs Salsa20/8 on b, which must already be in diagonal layout.
// The block is held across the four rows for the entire computation and
// the original input is added back in at the end, per the standard
// Salsa20 construction.
func salsaCore(b *block) {
	var orig block
	orig = *b

	var rows [4]*[4]uint32
	for i := range rows {
		rows[i] = b.row(i)
	}

	for round := 0; round < salsaRounds; round++ {
		for _, op := range ops {
			for lane := 0; lane < 4; lane++ {
				s := rows[op.a][lane] + rows[op.b][lane]
				rows[op.target][lane] ^= bits.RotateLeft32(s, op.shift)
			}
		}

		// Transpose: row1 is left untouched; row0 and row2 swap places
		// (each rotated as it moves), and row3 rotates in place. This
		// is what turns a column-round into a row-round and back again
		// every other round.
		toRow2 := *rows[0]
		rotateLanesLeft(&toRow2, 1)
		*rows[0] = *rows[2]
		rotateLanesLeft(rows[0], 3)
		*rows[2] = toRow2
		rotateLanesLeft(rows[3], 2)
	}

	b.add(&orig)
}

// salsaCoreLanes4 runs Salsa20/8 on a block held across four 128-bit
// registers, one per diagonal row. It models the SSE2, SSE4.1, AVX and
// NEON register shape; no dispatch path calls it, since every dispatch
// variant runs mixBlocks, which calls salsaCore directly.
func salsaCoreLanes4(b *block) {
	salsaCore(b)
}

// salsaCoreLanes8 runs Salsa20/8 on a block held across two 256-bit
// registers, each packing a pair of diagonal rows. It models the AVX2
// register shape; like salsaCoreLanes4, no dispatch path calls it. Since
// register width only
// changes how the underlying lanes are grouped for real vector hardware
// and not the values produced, it shares salsaCore's row-wise
// implementation exactly; see DESIGN.md.
func salsaCoreLanes8(b *block) {
	salsaCore(b)
}
