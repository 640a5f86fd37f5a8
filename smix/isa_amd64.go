//go:build amd64

package smix

import "golang.org/x/sys/cpu"

// detectInstructionSet walks the same decision ladder as the reference
// implementation's x86 DetectInstructionSet::Detect: SSE2 is the assumed
// baseline, and each higher tier is accepted only if the one before it
// is also available. SSSE3-only hardware collapses to the SSE2 path (see
// DESIGN.md's open-question notes) since this package never implements a
// dedicated SSSE3 variant, matching the reference implementation's own
// SSSE3-falls-through-to-SSE2 case in SetFunctions.
func detectInstructionSet() InstructionSet {
	if !cpu.X86.HasSSSE3 {
		return SSE2
	}
	if !cpu.X86.HasSSE41 {
		return SSE2
	}
	if !cpu.X86.HasAVX {
		return SSE41
	}
	if !cpu.X86.HasAVX2 {
		return AVX
	}
	return AVX2
}
