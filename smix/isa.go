package smix

import "sync"

// InstructionSet identifies one of the equivalent vectorized
// implementations SMix can dispatch to. All of them compute bit-identical
// results; they differ only in which SIMD register width and shuffle
// instructions the reference implementation uses to get there (see
// DESIGN.md and testable property 11).
type InstructionSet int

const (
	Unknown InstructionSet = iota
	SSE2
	SSE41
	AVX
	AVX2
	NEON
)

func (s InstructionSet) String() string {
	switch s {
	case SSE2:
		return "SSE2"
	case SSE41:
		return "SSE4.1"
	case AVX:
		return "AVX"
	case AVX2:
		return "AVX2"
	case NEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// dispatchTable is the set of view-width-specific entry points SMix runs
// against. Passing this explicitly into smix's internals, rather than
// reaching for package-level function variables at call time, keeps the
// only process-wide mutable state confined to the cached ISA selection
// itself.
type dispatchTable struct {
	isa        InstructionSet
	prepare    func(dst []block, src []byte, blockCount int)
	restore    func(dst []byte, src []block, blockCount int)
	copyAndMix func(working, tableElement, shuffle []block)
	xorAndMix  func(working, tableElement, shuffle []block)
}

// portableDispatch is the dispatch table every instruction set resolves
// to. Real vector hardware reaches the same sixteen-word result through
// different register widths and shuffle sequences; since this package has
// no architecture-specific assembly to target (see DESIGN.md), every ISA
// entry below shares this one implementation, matching spec property 11.
func portableDispatch(isa InstructionSet) dispatchTable {
	return dispatchTable{
		isa:        isa,
		prepare:    prepare,
		restore:    restore,
		copyAndMix: copyAndMixBlocks,
		xorAndMix:  xorAndMixBlocks,
	}
}

var detectedISA = sync.OnceValue(detectInstructionSet)

var overrideISA InstructionSet = Unknown

// selectISA returns the instruction set SMix should target: the manually
// forced value set by SetInstructionSetOverride, if any, otherwise the
// lazily-detected hardware maximum.
func selectISA() InstructionSet {
	if overrideISA != Unknown {
		return overrideISA
	}
	return detectedISA()
}

// SetInstructionSetOverride forces SMix to target a specific instruction
// set regardless of what the current hardware supports, or clears any
// override when given Unknown. It exists so tests can exercise every
// dispatch path (including ones the test machine's CPU does not actually
// implement) and assert they agree bit-for-bit; see testable property 11.
// It is not safe to call concurrently with SMix.
func SetInstructionSetOverride(isa InstructionSet) {
	overrideISA = isa
}

// SelectedInstructionSet reports which instruction set SMix will target on
// its next call: the override set by SetInstructionSetOverride, if any,
// otherwise the hardware maximum detected once and cached for the life of
// the process.
func SelectedInstructionSet() InstructionSet {
	return selectISA()
}

func dispatchFor(isa InstructionSet) (dispatchTable, error) {
	switch isa {
	case SSE2, SSE41, AVX, AVX2, NEON:
		return portableDispatch(isa), nil
	default:
		return dispatchTable{}, ErrUnsupportedISA
	}
}
