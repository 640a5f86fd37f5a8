//go:build arm64

package smix

import "golang.org/x/sys/cpu"

// detectInstructionSet mirrors the reference implementation's ARM
// DetectInstructionSet::Detect, which still probes the hardware rather
// than hardcoding its answer even though the result is foregone: Advanced
// SIMD (NEON) is mandatory on every ARM64 target Go supports, so
// cpu.ARM64.HasASIMD is always true in practice. Checking it anyway keeps
// this function honest about what it depends on instead of silently
// assuming a guarantee the runtime happens to provide.
func detectInstructionSet() InstructionSet {
	if !cpu.ARM64.HasASIMD {
		return Unknown
	}
	return NEON
}
