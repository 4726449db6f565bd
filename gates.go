//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gmw

import (
	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gmw/ot"
)

// xorGate computes the parties' output shares of x XOR y. XOR is
// linear in GF(2) so each party XORs its shares locally, without
// communication.
func xorGate(x, y []bool) []bool {
	out := make([]bool, len(x))
	for i := range out {
		out[i] = x[i] != y[i]
	}
	return out
}

// notGate computes the parties' output shares of NOT x. Party 0 flips
// its share and all other parties pass their shares through, so the
// XOR reconstruction flips by exactly one inversion.
func notGate(x []bool) []bool {
	out := make([]bool, len(x))
	copy(out, x)
	out[0] = !out[0]
	return out
}

// andGate computes the parties' output shares of x AND y. The 2-party
// case uses the canonical masked construction; more parties use the
// pairwise cross-term generalization.
func (p *Protocol) andGate(x, y []bool) ([]bool, error) {
	if len(x) == 2 {
		return p.andGate2(x, y)
	}
	return p.andGateN(x, y)
}

// andGate2 computes the 2-party AND. Party 0 draws a fresh random bit
// r as its own output share and masks the four possible values of
// x AND y into a message table indexed by party 1's shares:
//
//	(x1,y1) = (0,0): x0&y0 ^ r
//	(x1,y1) = (0,1): x0&y0 ^ x0 ^ r
//	(x1,y1) = (1,0): x0&y0 ^ y0 ^ r
//	(x1,y1) = (1,1): x0&y0 ^ x0 ^ y0 ^ 1 ^ r
//
// Party 1 retrieves its output share with the 1-of-4 transfer, keyed
// on its own shares. The messages never contain x0 or y0 in the raw,
// only masked with r, so party 1 learns nothing but its share.
func (p *Protocol) andGate2(x, y []bool) ([]bool, error) {
	x0, y0 := x[0], y[0]
	x1, y1 := x[1], y[1]

	r, err := randBit(p.rand)
	if err != nil {
		return nil, err
	}
	local := x0 && y0

	msgs := [4]bool{
		local != r,
		(local != x0) != r,
		(local != y0) != r,
		!((local != x0) != y0) != r,
	}
	out1, err := ot.TransferBit4(p.parties[0].otSender, msgs, x1, y1)
	if err != nil {
		return nil, errors.Mark(err, ErrOTFailure)
	}

	return []bool{r, out1}, nil
}

// andGateN computes the n-party AND. The product (x_0^...^x_{n-1}) AND
// (y_0^...^y_{n-1}) expands into the local terms x_i&y_i and the
// pairwise cross terms x_i&y_j ^ x_j&y_i; every unordered party pair
// computes its cross term with one oblivious-transfer sub-protocol and
// each party XORs its local term with all of its cross-term shares.
func (p *Protocol) andGateN(x, y []bool) ([]bool, error) {
	n := len(x)
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = x[i] && y[i]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ri, rj, err := p.crossTerm(i, j, x[i], y[i], x[j], y[j])
			if err != nil {
				return nil, err
			}
			out[i] = out[i] != ri
			out[j] = out[j] != rj
		}
	}

	return out, nil
}

// crossTerm computes shares of the cross term x_i&y_j ^ x_j&y_i
// between parties i and j. Party i draws a random bit r_i as its
// share and builds the message table
//
//	(xj,yj) = (0,0): r_i
//	(xj,yj) = (0,1): x_i ^ r_i
//	(xj,yj) = (1,0): y_i ^ r_i
//	(xj,yj) = (1,1): x_i ^ y_i ^ r_i
//
// from which party j retrieves its share r_j with the 1-of-4 transfer
// keyed on its own shares, so that r_i ^ r_j = x_i&y_j ^ x_j&y_i.
func (p *Protocol) crossTerm(i, j int, xi, yi, xj, yj bool) (
	ri, rj bool, err error) {

	ri, err = randBit(p.rand)
	if err != nil {
		return
	}
	msgs := [4]bool{
		ri,
		xi != ri,
		yi != ri,
		(xi != yi) != ri,
	}
	p.parties[i].Debugf("AND cross term with %s\n", p.parties[j])

	rj, err = ot.TransferBit4(p.parties[i].otSender, msgs, xj, yj)
	if err != nil {
		err = errors.Mark(err, ErrOTFailure)
		return
	}
	return
}

// orGate computes the parties' output shares of x OR y by De Morgan's
// law: x|y = ~(~x & ~y). No primitive beyond the AND protocol is
// needed.
func (p *Protocol) orGate(x, y []bool) ([]bool, error) {
	and, err := p.andGate(notGate(x), notGate(y))
	if err != nil {
		return nil, err
	}
	return notGate(and), nil
}
