//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements Boolean circuits for secure multi-party
// computation. A circuit is an ordered list of gates over uniquely
// numbered wires, plus named input and output wire metadata. Circuits
// are validated when loaded and are read-only afterwards.
package circuit

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Circuit errors.
var (
	ErrMalformedCircuit = errors.New("malformed circuit")
	ErrWireNotFound     = errors.New("wire not found")
)

// Operation specifies gate function.
type Operation byte

// Gate functions.
const (
	XOR Operation = iota
	AND
	OR
	NOT
)

// Stats holds statistics about circuit operations.
type Stats [NOT + 1]int

func (op Operation) String() string {
	switch op {
	case XOR:
		return "XOR"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	default:
		return fmt.Sprintf("{Operation %d}", op)
	}
}

// Arity returns the number of input wires the operation takes.
func (op Operation) Arity() int {
	if op == NOT {
		return 1
	}
	return 2
}

// Wire specifies a wire ID.
type Wire uint32

// ID returns the wire ID as integer.
func (w Wire) ID() int {
	return int(w)
}

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}

// Gate specifies a boolean gate. The gate ID identifies the gate's
// output wire.
type Gate struct {
	ID Wire
	Op Operation
	In []Wire
}

func (g Gate) String() string {
	return fmt.Sprintf("%v %v %v", g.In, g.Op, g.ID)
}

// IOArg describes a named circuit input or output wire.
type IOArg struct {
	Name string
	Wire Wire
}

func (io IOArg) String() string {
	return fmt.Sprintf("%s:%v", io.Name, io.Wire)
}

// IO specifies circuit input and output arguments.
type IO []IOArg

func (io IO) String() string {
	var str string
	for i, a := range io {
		if i > 0 {
			str += ", "
		}
		str += a.String()
	}
	return str
}

// Circuit specifies a boolean circuit.
type Circuit struct {
	Name        string
	Description string
	Gates       []Gate
	Inputs      IO
	Outputs     IO
	Stats       Stats
}

func (c *Circuit) String() string {
	var stats string

	for k := XOR; k <= NOT; k++ {
		v := c.Stats[k]
		if len(stats) > 0 {
			stats += " "
		}
		stats += fmt.Sprintf("%s=%d", k, v)
	}
	return fmt.Sprintf("#gates=%d (%s) #in=%d #out=%d",
		len(c.Gates), stats, len(c.Inputs), len(c.Outputs))
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump() {
	fmt.Printf("circuit %s: %s\n", c.Name, c)
	for idx, gate := range c.Gates {
		fmt.Printf("%04d\t%s\n", idx, gate)
	}
}

// Verify checks the circuit invariants: wire IDs are unique across
// inputs and gates, gates have the correct number of input wires, every
// gate input references a declared circuit input or an earlier gate
// (the gate list is in topological order with no forward references),
// and every declared output wire is produced. Violations are reported
// as ErrMalformedCircuit naming the offending gate or wire. Verify must
// pass before the circuit is evaluated.
func (c *Circuit) Verify() error {
	defined := make(map[Wire]bool)

	for _, input := range c.Inputs {
		if defined[input.Wire] {
			return errors.Wrapf(ErrMalformedCircuit,
				"duplicate input wire %v", input.Wire)
		}
		defined[input.Wire] = true
	}

	var stats Stats

	for idx, gate := range c.Gates {
		if len(gate.In) != gate.Op.Arity() {
			return errors.Wrapf(ErrMalformedCircuit,
				"gate %v: %s takes %d inputs, got %d",
				gate.ID, gate.Op, gate.Op.Arity(), len(gate.In))
		}
		for _, in := range gate.In {
			if !defined[in] {
				return errors.Wrapf(ErrMalformedCircuit,
					"gate %v (#%d): input wire %v not defined",
					gate.ID, idx, in)
			}
		}
		if defined[gate.ID] {
			return errors.Wrapf(ErrMalformedCircuit,
				"duplicate gate ID %v", gate.ID)
		}
		defined[gate.ID] = true
		stats[gate.Op]++
	}

	for _, output := range c.Outputs {
		if !defined[output.Wire] {
			return errors.Wrapf(ErrMalformedCircuit,
				"output wire %v not produced", output.Wire)
		}
	}
	c.Stats = stats

	return nil
}
