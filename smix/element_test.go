package smix

import "testing"

func TestAllocateBlocksRejectsBadSizes(t *testing.T) {
	if _, err := allocateBlocks(0); err != ErrAllocation {
		t.Errorf("allocateBlocks(0) error = %v, want %v", err, ErrAllocation)
	}
	if _, err := allocateBlocks(-1); err != ErrAllocation {
		t.Errorf("allocateBlocks(-1) error = %v, want %v", err, ErrAllocation)
	}
	if _, err := allocateBlocks(maxAllocBlocks + 1); err != ErrAllocation {
		t.Errorf("allocateBlocks(maxAllocBlocks+1) error = %v, want %v", err, ErrAllocation)
	}
}

func TestReleaseBlocksZeroes(t *testing.T) {
	buf, err := allocateBlocks(4)
	if err != nil {
		t.Fatalf("allocateBlocks: %v", err)
	}
	for i := range buf {
		for j := range buf[i] {
			buf[i][j] = 0xdeadbeef
		}
	}

	releaseBlocks(buf)

	var zero block
	for i := range buf {
		if buf[i] != zero {
			t.Fatalf("block %d not zeroed after release", i)
		}
	}
}

func TestScryptTableElementIndexing(t *testing.T) {
	const elementCount = 4
	const blockCountPerElement = 3

	table, err := newScryptTable(elementCount, blockCountPerElement)
	if err != nil {
		t.Fatalf("newScryptTable: %v", err)
	}
	defer table.release()

	for i := 0; i < elementCount; i++ {
		el := table.element(i)
		if len(el) != blockCountPerElement {
			t.Fatalf("element(%d) has %d blocks, want %d", i, len(el), blockCountPerElement)
		}
		el[0][0] = uint32(i) + 1
	}

	for i := 0; i < elementCount; i++ {
		if got := table.element(i)[0][0]; got != uint32(i)+1 {
			t.Errorf("element(%d)[0][0] = %d, want %d", i, got, uint32(i)+1)
		}
	}
}

func TestIntegerifyReadsWordFourOfFrontBlock(t *testing.T) {
	buf := make([]block, 2)
	buf[0][4] = 137

	if got, want := integerify(buf, 10), uint32(137%10); got != want {
		t.Errorf("integerify = %d, want %d", got, want)
	}
}
