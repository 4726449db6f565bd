//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gmw

import (
	"bytes"
	"testing"
)

func testPRG(t *testing.T) *PRG {
	prg, err := NewPRG([]byte("gmw test seed"))
	if err != nil {
		t.Fatalf("NewPRG: %v", err)
	}
	return prg
}

func TestShareReconstruct(t *testing.T) {
	prg := testPRG(t)

	for n := 2; n <= 5; n++ {
		for _, value := range []bool{false, true} {
			for trial := 0; trial < 1000; trial++ {
				shares, err := Share(prg, value, n)
				if err != nil {
					t.Fatalf("Share: %v", err)
				}
				if len(shares) != n {
					t.Fatalf("Share returned %d shares, expected %d",
						len(shares), n)
				}
				if Reconstruct(shares) != value {
					t.Fatalf("n=%d: Reconstruct(Share(%v)) != %v",
						n, value, value)
				}
			}
		}
	}
}

func TestShareInvalidCount(t *testing.T) {
	prg := testPRG(t)

	_, err := Share(prg, true, 0)
	if err == nil {
		t.Error("Share accepted share count 0")
	}
	shares, err := Share(prg, true, 1)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	if !Reconstruct(shares) {
		t.Error("1-share reconstruction lost the value")
	}
}

// TestShareHiding checks that strict subsets of the shares look
// uniformly random regardless of the shared value.
func TestShareHiding(t *testing.T) {
	const trials = 2000
	const n = 3

	prg := testPRG(t)

	// XOR over the subset bits, counted per subset and shared value.
	subsets := [][]int{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}}

	for _, value := range []bool{false, true} {
		counts := make([]int, len(subsets))

		for trial := 0; trial < trials; trial++ {
			shares, err := Share(prg, value, n)
			if err != nil {
				t.Fatalf("Share: %v", err)
			}
			for idx, subset := range subsets {
				var bit bool
				for _, i := range subset {
					bit = bit != shares[i]
				}
				if bit {
					counts[idx]++
				}
			}
		}
		for idx, count := range counts {
			if count < trials/2-150 || count > trials/2+150 {
				t.Errorf("value=%v subset %v: %d/%d ones, expected ~%d",
					value, subsets[idx], count, trials, trials/2)
			}
		}
	}
}

func TestPRGDeterministic(t *testing.T) {
	a, err := NewPRG([]byte("seed"))
	if err != nil {
		t.Fatalf("NewPRG: %v", err)
	}
	b, err := NewPRG([]byte("seed"))
	if err != nil {
		t.Fatalf("NewPRG: %v", err)
	}
	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	if _, err := a.Read(bufA); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if _, err := b.Read(bufB); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(bufA, bufB) {
		t.Error("same seed produced different streams")
	}

	c, err := NewPRG([]byte("other seed"))
	if err != nil {
		t.Fatalf("NewPRG: %v", err)
	}
	bufC := make([]byte, 64)
	if _, err := c.Read(bufC); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if bytes.Equal(bufA, bufC) {
		t.Error("different seeds produced the same stream")
	}
}
