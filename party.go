//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gmw

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gmw/circuit"
	"github.com/markkurossi/gmw/ot"
	"github.com/markkurossi/text/superscript"
)

// Party holds one party's view of the computation: its share of every
// wire it has seen and its own oblivious-transfer sender key. The wire
// map grows monotonically while the circuit is evaluated and is never
// read or written by another party's code path; the only values that
// cross party boundaries are the OT phase messages.
type Party struct {
	Verbose  bool
	id       int
	shares   map[circuit.Wire]bool
	otSender *ot.Sender
}

// NewParty creates a new party with the ID and a fresh OT sender key
// of keyBits bits.
func NewParty(id, keyBits int) (*Party, error) {
	sender, err := ot.NewSender(keyBits)
	if err != nil {
		return nil, err
	}
	return &Party{
		id:       id,
		shares:   make(map[circuit.Wire]bool),
		otSender: sender,
	}, nil
}

// ID returns the party ID.
func (p *Party) ID() int {
	return p.id
}

func (p *Party) String() string {
	return "P" + superscript.Itoa(p.id)
}

// share returns the party's share of the wire w.
func (p *Party) share(w circuit.Wire) (bool, error) {
	bit, ok := p.shares[w]
	if !ok {
		return false, errors.Wrapf(ErrMissingWire, "party %d: wire %v",
			p.id, w)
	}
	return bit, nil
}

// setShare sets the party's share of the wire w.
func (p *Party) setShare(w circuit.Wire, bit bool) {
	p.shares[w] = bit
}

// NumShares returns the number of wires the party holds a share of.
func (p *Party) NumShares() int {
	return len(p.shares)
}

// Debugf prints a debugging message prefixed with the party ID if
// Verbose debugging is enabled for this Party.
func (p *Party) Debugf(format string, a ...interface{}) {
	if !p.Verbose {
		return
	}
	fmt.Printf("%s: %s", p, fmt.Sprintf(format, a...))
}
