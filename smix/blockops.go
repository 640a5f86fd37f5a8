package smix

// This file provides the primitive block operations BlockMix and the
// layout transform are built from: aligned and unaligned loads/stores
// between memory and a register-held block, a non-temporal streaming
// store, prefetch/flush cache hints, and block XOR. The reference
// implementation's per-ISA source files issue distinct 128-bit and
// 256-bit vector instructions at each of these points; every instruction
// set this package dispatches to shares one Go implementation (see
// isa.go), so all of them collapse to the same block copy or no-op. What
// stays constant across tiers is where each call happens in BlockMix and
// Prepare/Restore, not which instruction it lowers to.

// loadUnaligned reads a 64-byte block out of an arbitrary byte offset,
// standing in for a vector load with no alignment requirement on its
// source address. Prepare uses this to read the caller-supplied
// wire-format buffer, whose block boundaries are not guaranteed to be
// cache-line aligned.
func loadUnaligned(dst *block, src []byte) {
	blockFromBytes(dst, src)
}

// storeUnaligned is loadUnaligned's counterpart for writes: it writes
// src's block-sized byte region into dst with no alignment requirement.
// Restore uses this to write back into the caller-supplied buffer.
func storeUnaligned(dst []byte, src *block) {
	blockToBytes(dst, src)
}

// loadAligned copies src into dst, standing in for a vector load whose
// source address is required to be a multiple of blockAlignment. Every
// block allocateBlocks returns satisfies that requirement by construction
// (see DESIGN.md); assertAligned checks it in debug builds.
func loadAligned(dst, src *block) {
	assertAligned(src)
	*dst = *src
}

// storeAligned is loadAligned's counterpart for writes: it requires dst,
// not src, to be aligned.
func storeAligned(dst, src *block) {
	assertAligned(dst)
	*dst = *src
}

// streamAligned stores src into dst the same way storeAligned does. On
// real hardware this would use a non-temporal streaming store to push a
// freshly-filled table row straight to memory without evicting the
// working set from cache; portable Go has no equivalent instruction, so
// this keeps the functional contract and drops the cache-pollution
// side effect.
func streamAligned(dst, src *block) {
	assertAligned(dst)
	*dst = *src
}

// xorBlock xors other into dst in place.
func xorBlock(dst, other *block) {
	dst.xor(other)
}

// prefetchNonTemporal is a documented no-op standing in for the reference
// implementation's non-temporal prefetch hint, issued just before a table
// row is about to be read. ARM builds of the reference implementation are
// also a no-op here, since ARM provides no guaranteed-effect prefetch
// intrinsic either.
func prefetchNonTemporal(_ *block) {}

// flush is a documented no-op standing in for the reference
// implementation's cache-line flush, issued after a table row has been
// consumed to reduce the cache-timing attack surface. ARM's reference
// implementation is a no-op for the same reason: no portable cache-control
// intrinsic exists. Dropping this narrows the side-channel posture but
// never changes SMix's output.
func flush(_ *block) {}
