package smix

import "testing"

func TestInstructionSetString(t *testing.T) {
	tests := []struct {
		isa  InstructionSet
		want string
	}{
		{Unknown, "Unknown"},
		{SSE2, "SSE2"},
		{SSE41, "SSE4.1"},
		{AVX, "AVX"},
		{AVX2, "AVX2"},
		{NEON, "NEON"},
		{InstructionSet(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.isa.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.isa, got, tt.want)
		}
	}
}

func TestSetInstructionSetOverride(t *testing.T) {
	defer SetInstructionSetOverride(Unknown)

	SetInstructionSetOverride(AVX2)
	if got := SelectedInstructionSet(); got != AVX2 {
		t.Errorf("SelectedInstructionSet() = %v, want %v", got, AVX2)
	}

	SetInstructionSetOverride(NEON)
	if got := SelectedInstructionSet(); got != NEON {
		t.Errorf("SelectedInstructionSet() = %v, want %v", got, NEON)
	}

	SetInstructionSetOverride(Unknown)
	if got := SelectedInstructionSet(); got == Unknown {
		t.Errorf("SelectedInstructionSet() = %v, want the detected hardware maximum, not Unknown", got)
	}
}

func TestDispatchForRejectsUnknown(t *testing.T) {
	if _, err := dispatchFor(Unknown); err != ErrUnsupportedISA {
		t.Errorf("dispatchFor(Unknown) error = %v, want %v", err, ErrUnsupportedISA)
	}
}

func TestDispatchForKnownISAsSharePortableImplementation(t *testing.T) {
	for _, isa := range []InstructionSet{SSE2, SSE41, AVX, AVX2, NEON} {
		table, err := dispatchFor(isa)
		if err != nil {
			t.Fatalf("dispatchFor(%v): %v", isa, err)
		}
		if table.isa != isa {
			t.Errorf("dispatchFor(%v).isa = %v", isa, table.isa)
		}
		if table.prepare == nil || table.restore == nil || table.copyAndMix == nil || table.xorAndMix == nil {
			t.Errorf("dispatchFor(%v) has a nil entry point", isa)
		}
	}
}
