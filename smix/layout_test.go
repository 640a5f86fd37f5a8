package smix

import (
	"bytes"
	"testing"
)

func fillPattern(buf []byte) {
	for i := range buf {
		buf[i] = byte(i*37 + 11)
	}
}

func TestDiagonalizeUndiagonalizeRoundTrip(t *testing.T) {
	var raw, diag, back block
	for i := range raw {
		raw[i] = uint32(i*0x10101 + 3)
	}

	diagonalize(&diag, &raw)
	undiagonalize(&back, &diag)

	if raw != back {
		t.Fatalf("round trip mismatch: got %v, want %v", back, raw)
	}
}

func TestDiagonalizeMatchesNaturalWordMapping(t *testing.T) {
	var raw, diag block
	for i := range raw {
		raw[i] = uint32(i)
	}

	diagonalize(&diag, &raw)

	// Natural word indices that should land at each diagonal position,
	// row by row:
	//   12  1  6 11
	//    0  5 10 15
	//    4  9 14  3
	//    8 13  2  7
	want := block{
		12, 1, 6, 11,
		0, 5, 10, 15,
		4, 9, 14, 3,
		8, 13, 2, 7,
	}

	if diag != want {
		t.Errorf("diagonalize = %v, want %v", diag, want)
	}
}

func TestPrepareRestoreRoundTrip(t *testing.T) {
	const blockCount = 8
	original := make([]byte, blockCount*blockSize)
	fillPattern(original)

	prepared := make([]block, blockCount)
	prepare(prepared, original, blockCount)

	restored := make([]byte, blockCount*blockSize)
	restore(restored, prepared, blockCount)

	if !bytes.Equal(original, restored) {
		t.Fatalf("prepare/restore round trip did not reproduce the original bytes")
	}
}

func TestPrepareRotatesLastBlockToFront(t *testing.T) {
	const blockCount = 4
	original := make([]byte, blockCount*blockSize)
	fillPattern(original)

	prepared := make([]block, blockCount)
	prepare(prepared, original, blockCount)

	var want, got block
	blockFromBytes(&want, original[(blockCount-1)*blockSize:])
	diagonalize(&want, &want)
	got = prepared[0]

	if got != want {
		t.Errorf("prepared[0] = %v, want the diagonalized last natural block %v", got, want)
	}
}
