//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"github.com/cockroachdb/errors"
)

// Eval evaluates the circuit in plaintext with the input bits and
// returns the values of all wires. The inputs are bound to the declared
// input wires in order. Eval is a verification oracle; it takes no part
// in the secure protocol.
func (c *Circuit) Eval(inputs []bool) (map[Wire]bool, error) {
	if len(inputs) != len(c.Inputs) {
		return nil, errors.Newf("invalid amount of inputs: got %d, expected %d",
			len(inputs), len(c.Inputs))
	}
	wires := make(map[Wire]bool)
	for idx, input := range c.Inputs {
		wires[input.Wire] = inputs[idx]
	}

	for _, gate := range c.Gates {
		a, ok := wires[gate.In[0]]
		if !ok {
			return nil, errors.Wrapf(ErrWireNotFound, "gate %v: input %v",
				gate.ID, gate.In[0])
		}
		var result bool

		switch gate.Op {
		case XOR:
			b, ok := wires[gate.In[1]]
			if !ok {
				return nil, errors.Wrapf(ErrWireNotFound, "gate %v: input %v",
					gate.ID, gate.In[1])
			}
			result = a != b

		case AND:
			b, ok := wires[gate.In[1]]
			if !ok {
				return nil, errors.Wrapf(ErrWireNotFound, "gate %v: input %v",
					gate.ID, gate.In[1])
			}
			result = a && b

		case OR:
			b, ok := wires[gate.In[1]]
			if !ok {
				return nil, errors.Wrapf(ErrWireNotFound, "gate %v: input %v",
					gate.ID, gate.In[1])
			}
			result = a || b

		case NOT:
			result = !a

		default:
			return nil, errors.Newf("gate %v: invalid operation %s",
				gate.ID, gate.Op)
		}
		wires[gate.ID] = result
	}

	return wires, nil
}

// EvalWire evaluates the circuit in plaintext and returns the value of
// the wire w. It fails with ErrWireNotFound if the circuit never
// produces the wire.
func (c *Circuit) EvalWire(inputs []bool, w Wire) (bool, error) {
	wires, err := c.Eval(inputs)
	if err != nil {
		return false, err
	}
	value, ok := wires[w]
	if !ok {
		return false, errors.Wrapf(ErrWireNotFound, "%v", w)
	}
	return value, nil
}
