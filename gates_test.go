//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gmw

import (
	"testing"

	"github.com/markkurossi/gmw/circuit"
)

const testKeyBits = 1024

var bits = []bool{false, true}

// testProtocol creates a protocol instance with materialized parties
// and a seeded randomness source.
func testProtocol(t *testing.T, n int) *Protocol {
	p, err := New(halfAdder(t), n, testPRG(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.KeyBits = testKeyBits
	if err := p.materialize(); err != nil {
		t.Fatalf("materialize: %v", err)
	}
	return p
}

func halfAdder(t *testing.T) *circuit.Circuit {
	circ := &circuit.Circuit{
		Name: "half_adder",
		Gates: []circuit.Gate{
			{ID: 2, Op: circuit.XOR, In: []circuit.Wire{0, 1}},
			{ID: 3, Op: circuit.AND, In: []circuit.Wire{0, 1}},
		},
		Inputs:  circuit.IO{{Name: "a", Wire: 0}, {Name: "b", Wire: 1}},
		Outputs: circuit.IO{{Name: "sum", Wire: 2}, {Name: "carry", Wire: 3}},
	}
	if err := circ.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	return circ
}

func TestXORGate(t *testing.T) {
	prg := testPRG(t)

	for n := 2; n <= 5; n++ {
		for _, x := range bits {
			for _, y := range bits {
				xs, err := Share(prg, x, n)
				if err != nil {
					t.Fatalf("Share: %v", err)
				}
				ys, err := Share(prg, y, n)
				if err != nil {
					t.Fatalf("Share: %v", err)
				}
				if got := Reconstruct(xorGate(xs, ys)); got != (x != y) {
					t.Errorf("n=%d: XOR(%v,%v)=%v, expected %v",
						n, x, y, got, x != y)
				}
			}
		}
	}
}

func TestNOTGate(t *testing.T) {
	prg := testPRG(t)

	for n := 2; n <= 5; n++ {
		for _, x := range bits {
			xs, err := Share(prg, x, n)
			if err != nil {
				t.Fatalf("Share: %v", err)
			}
			if got := Reconstruct(notGate(xs)); got != !x {
				t.Errorf("n=%d: NOT(%v)=%v, expected %v", n, x, got, !x)
			}
		}
	}
}

func TestANDGate2(t *testing.T) {
	p := testProtocol(t, 2)

	for _, x := range bits {
		for _, y := range bits {
			xs, err := Share(p.rand, x, 2)
			if err != nil {
				t.Fatalf("Share: %v", err)
			}
			ys, err := Share(p.rand, y, 2)
			if err != nil {
				t.Fatalf("Share: %v", err)
			}
			out, err := p.andGate2(xs, ys)
			if err != nil {
				t.Fatalf("andGate2: %v", err)
			}
			if got := Reconstruct(out); got != (x && y) {
				t.Errorf("AND(%v,%v)=%v, expected %v", x, y, got, x && y)
			}
		}
	}
}

func TestANDGateN(t *testing.T) {
	for n := 2; n <= 5; n++ {
		p := testProtocol(t, n)

		for _, x := range bits {
			for _, y := range bits {
				xs, err := Share(p.rand, x, n)
				if err != nil {
					t.Fatalf("Share: %v", err)
				}
				ys, err := Share(p.rand, y, n)
				if err != nil {
					t.Fatalf("Share: %v", err)
				}
				out, err := p.andGateN(xs, ys)
				if err != nil {
					t.Fatalf("andGateN: %v", err)
				}
				if len(out) != n {
					t.Fatalf("andGateN returned %d shares, expected %d",
						len(out), n)
				}
				if got := Reconstruct(out); got != (x && y) {
					t.Errorf("n=%d: AND(%v,%v)=%v, expected %v",
						n, x, y, got, x && y)
				}
			}
		}
	}
}

func TestORGate(t *testing.T) {
	for n := 2; n <= 5; n++ {
		p := testProtocol(t, n)

		for _, x := range bits {
			for _, y := range bits {
				xs, err := Share(p.rand, x, n)
				if err != nil {
					t.Fatalf("Share: %v", err)
				}
				ys, err := Share(p.rand, y, n)
				if err != nil {
					t.Fatalf("Share: %v", err)
				}
				out, err := p.orGate(xs, ys)
				if err != nil {
					t.Fatalf("orGate: %v", err)
				}
				if got := Reconstruct(out); got != (x || y) {
					t.Errorf("n=%d: OR(%v,%v)=%v, expected %v",
						n, x, y, got, x || y)
				}
			}
		}
	}
}

// TestDeMorgan checks OR(x,y) == NOT(AND(NOT(x), NOT(y))) both in
// plaintext and through the secure protocol.
func TestDeMorgan(t *testing.T) {
	p := testProtocol(t, 3)

	for _, x := range bits {
		for _, y := range bits {
			if (x || y) != !(!x && !y) {
				t.Fatalf("plaintext De Morgan failed for %v,%v", x, y)
			}
			xs, err := Share(p.rand, x, 3)
			if err != nil {
				t.Fatalf("Share: %v", err)
			}
			ys, err := Share(p.rand, y, 3)
			if err != nil {
				t.Fatalf("Share: %v", err)
			}
			or, err := p.orGate(xs, ys)
			if err != nil {
				t.Fatalf("orGate: %v", err)
			}
			and, err := p.andGate(notGate(xs), notGate(ys))
			if err != nil {
				t.Fatalf("andGate: %v", err)
			}
			if Reconstruct(or) != Reconstruct(notGate(and)) {
				t.Errorf("secure De Morgan failed for %v,%v", x, y)
			}
		}
	}
}

// TestCrossTerm checks that the pairwise AND cross-term shares XOR to
// xi&yj ^ xj&yi for all share combinations.
func TestCrossTerm(t *testing.T) {
	p := testProtocol(t, 2)

	for _, xi := range bits {
		for _, yi := range bits {
			for _, xj := range bits {
				for _, yj := range bits {
					ri, rj, err := p.crossTerm(0, 1, xi, yi, xj, yj)
					if err != nil {
						t.Fatalf("crossTerm: %v", err)
					}
					expected := (xi && yj) != (xj && yi)
					if (ri != rj) != expected {
						t.Errorf("cross term (%v,%v),(%v,%v): %v, expected %v",
							xi, yi, xj, yj, ri != rj, expected)
					}
				}
			}
		}
	}
}
