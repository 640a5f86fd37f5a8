// Package smix implements the memory-hard core of scrypt: the SMix
// transformation over a single independent element, including its
// SIMD-oriented Salsa20/8 inner hash, BlockMix, and the ISA dispatch that
// selects between equivalent vectorized implementations at runtime.
//
// Everything outside this one element (PBKDF2 pre/post expansion, the
// p-way parallelism across elements, argument marshalling from a host
// runtime) is deliberately left to callers; see package kdf for one such
// caller.
package smix

import "encoding/binary"

// blockSize is the size in bytes of a single Salsa20 block: sixteen
// little-endian uint32 words arranged as a 4x4 matrix.
const blockSize = 64

// blockWords is blockSize expressed in 32-bit words.
const blockWords = blockSize / 4

// block is one 64-byte Salsa20 block held as host-native uint32 words.
// Everywhere inside this package a block is kept in "diagonal" layout
// (see diagonalize); only at the public []byte boundary, inside Prepare
// and Restore, is a block ever in natural (little-endian wire) layout.
type block [blockWords]uint32

// natural row i occupies block[4*i : 4*i+4].
func (b *block) row(i int) *[4]uint32 {
	return (*[4]uint32)(b[4*i : 4*i+4])
}

func blockFromBytes(dst *block, src []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
}

func blockToBytes(dst []byte, src *block) {
	for i, w := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], w)
	}
}

func (b *block) add(other *block) {
	for i := range b {
		b[i] += other[i]
	}
}

func (b *block) xor(other *block) {
	for i := range b {
		b[i] ^= other[i]
	}
}
