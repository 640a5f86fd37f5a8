//go:build !amd64 && !arm64

package smix

// detectInstructionSet has nothing hardware-specific to select on
// unsupported architectures; the portable dispatch table is correct
// everywhere, so this just picks a nominal baseline for reporting
// purposes.
func detectInstructionSet() InstructionSet {
	return SSE2
}
