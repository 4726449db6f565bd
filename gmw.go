//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gmw implements the GMW multi-party protocol for secure
// evaluation of Boolean circuits. Every circuit wire value is split
// into additive XOR shares, one per party; XOR and NOT gates are
// evaluated locally on the shares and AND gates run one oblivious
// transfer per party pair, so no party learns another party's inputs
// or intermediate values. The protocol is secure against semi-honest
// parties. This package simulates all parties in one process; each
// party's state is exclusively owned and the only values crossing
// party boundaries are the oblivious-transfer phase messages.
package gmw

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gmw/circuit"
)

// DefaultKeyBits is the default RSA key size of the parties'
// oblivious-transfer keys.
const DefaultKeyBits = 2048

// Protocol errors.
var (
	ErrPartyCountMismatch = errors.New("party count mismatch")
	ErrMissingWire        = errors.New("missing wire")
	ErrOTFailure          = errors.New("oblivious transfer failed")
)

// State specifies the protocol run state.
type State byte

// Protocol run states. A run starts Initialized, moves to Evaluating
// when the first gate is processed, and ends Completed or Failed.
const (
	StateInitialized State = iota
	StateEvaluating
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "Initialized"
	case StateEvaluating:
		return "Evaluating"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("{State %d}", s)
	}
}

// Protocol implements one GMW protocol run over a validated circuit.
type Protocol struct {
	Verbose    bool
	KeyBits    int
	circ       *circuit.Circuit
	numParties int
	rand       io.Reader
	parties    []*Party
	state      State
}

// Result contains one named circuit output value.
type Result struct {
	Name  string
	Value bool
}

func (r Result) String() string {
	return fmt.Sprintf("%s=%v", r.Name, r.Value)
}

// New creates a new protocol instance evaluating the circuit with
// numParties parties. The circuit must be verified. The rnd argument
// is the randomness source for secret shares and AND-gate masks; nil
// selects crypto/rand.
func New(circ *circuit.Circuit, numParties int, rnd io.Reader) (
	*Protocol, error) {

	if circ == nil {
		return nil, errors.New("no circuit")
	}
	if numParties < 2 {
		return nil, errors.Wrapf(ErrPartyCountMismatch,
			"%d parties, need at least 2", numParties)
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	return &Protocol{
		KeyBits:    DefaultKeyBits,
		circ:       circ,
		numParties: numParties,
		rand:       rnd,
		state:      StateInitialized,
	}, nil
}

// State returns the protocol run state.
func (p *Protocol) State() State {
	return p.state
}

// NumParties returns the number of parties in the run.
func (p *Protocol) NumParties() int {
	return p.numParties
}

// Debugf prints a debugging message if Verbose debugging is enabled
// for this Protocol.
func (p *Protocol) Debugf(format string, a ...interface{}) {
	if !p.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// SetInputShares materializes the party share sets and seeds them with
// the input wire shares. The shares argument maps an input wire to its
// share vector whose length must equal the party count.
func (p *Protocol) SetInputShares(shares map[circuit.Wire][]bool) error {
	if p.state != StateInitialized {
		return errors.Newf("protocol in state %s", p.state)
	}
	if err := p.materialize(); err != nil {
		p.state = StateFailed
		return err
	}
	for w, vec := range shares {
		if len(vec) != p.numParties {
			p.state = StateFailed
			return errors.Wrapf(ErrPartyCountMismatch,
				"wire %v: %d shares for %d parties",
				w, len(vec), p.numParties)
		}
		for i, party := range p.parties {
			party.setShare(w, vec[i])
		}
	}
	return nil
}

// materialize creates the parties and their OT keys.
func (p *Protocol) materialize() error {
	if p.parties != nil {
		return nil
	}
	parties := make([]*Party, p.numParties)
	for id := 0; id < p.numParties; id++ {
		party, err := NewParty(id, p.KeyBits)
		if err != nil {
			return err
		}
		party.Verbose = p.Verbose
		parties[id] = party
	}
	p.parties = parties
	return nil
}

// Evaluate processes the circuit gates strictly in their stored order,
// which the circuit verification guarantees to be a valid topological
// order. Each gate collects the input wire shares from every party,
// runs the gate protocol, and writes the output shares back keyed by
// the gate ID. Any protocol error moves the run to the Failed state
// and no partial results are surfaced.
func (p *Protocol) Evaluate() error {
	if p.state != StateInitialized || p.parties == nil {
		return errors.Newf("protocol in state %s not seeded with input shares",
			p.state)
	}
	p.state = StateEvaluating
	p.Debugf("GMW: %d parties, %s\n", p.numParties, p.circ)

	for idx := range p.circ.Gates {
		gate := &p.circ.Gates[idx]
		p.Debugf("gate %04d: %s\n", idx, gate)

		out, err := p.evalGate(gate)
		if err != nil {
			p.state = StateFailed
			return errors.Wrapf(err, "gate %v (#%d)", gate.ID, idx)
		}
		for i, party := range p.parties {
			party.setShare(gate.ID, out[i])
		}
	}
	p.state = StateCompleted

	return nil
}

func (p *Protocol) evalGate(gate *circuit.Gate) ([]bool, error) {
	x, err := p.gatherShares(gate.In[0])
	if err != nil {
		return nil, err
	}
	if gate.Op == circuit.NOT {
		return notGate(x), nil
	}
	y, err := p.gatherShares(gate.In[1])
	if err != nil {
		return nil, err
	}

	switch gate.Op {
	case circuit.XOR:
		return xorGate(x, y), nil

	case circuit.AND:
		return p.andGate(x, y)

	case circuit.OR:
		return p.orGate(x, y)

	default:
		return nil, errors.Newf("invalid operation %s", gate.Op)
	}
}

// gatherShares collects the share of the wire w from every party.
func (p *Protocol) gatherShares(w circuit.Wire) ([]bool, error) {
	shares := make([]bool, len(p.parties))
	for i, party := range p.parties {
		share, err := party.share(w)
		if err != nil {
			return nil, err
		}
		shares[i] = share
	}
	return shares, nil
}

// OutputShares returns the share vector of the output wire w, one
// share per party, after the run has completed. The caller
// reconstructs the plaintext value with Reconstruct.
func (p *Protocol) OutputShares(w circuit.Wire) ([]bool, error) {
	if p.state != StateCompleted {
		return nil, errors.Newf("protocol in state %s has no outputs", p.state)
	}
	return p.gatherShares(w)
}

// Run shares the plaintext input bits among the parties, evaluates the
// circuit, and reconstructs the declared outputs. The inputs are bound
// to the circuit input wires in order.
func (p *Protocol) Run(inputs []bool) ([]Result, error) {
	if len(inputs) != len(p.circ.Inputs) {
		return nil, errors.Newf("invalid amount of inputs: got %d, expected %d",
			len(inputs), len(p.circ.Inputs))
	}
	shares := make(map[circuit.Wire][]bool)
	for idx, input := range p.circ.Inputs {
		vec, err := Share(p.rand, inputs[idx], p.numParties)
		if err != nil {
			return nil, err
		}
		shares[input.Wire] = vec
	}
	if err := p.SetInputShares(shares); err != nil {
		return nil, err
	}
	if err := p.Evaluate(); err != nil {
		return nil, err
	}

	var results []Result
	for _, output := range p.circ.Outputs {
		vec, err := p.OutputShares(output.Wire)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{
			Name:  output.Name,
			Value: Reconstruct(vec),
		})
	}
	return results, nil
}
