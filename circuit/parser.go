//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// The JSON circuit file format:
//
//	{
//	  "name": "half_adder",
//	  "description": "1-bit half adder",
//	  "gates": [
//	    {"id": 2, "type": "XOR", "in": [0, 1]},
//	    {"id": 3, "type": "AND", "in": [0, 1]}
//	  ],
//	  "metadata": {
//	    "inputs":  [{"name": "a", "id": 0}, {"name": "b", "id": 1}],
//	    "outputs": [{"name": "sum", "id": 2}, {"name": "carry", "id": 3}]
//	  }
//	}

type jsonCircuit struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Gates       []jsonGate   `json:"gates"`
	Metadata    jsonMetadata `json:"metadata"`
}

type jsonGate struct {
	ID   uint32   `json:"id"`
	Type string   `json:"type"`
	In   []uint32 `json:"in"`
}

type jsonMetadata struct {
	Inputs  []jsonIOArg `json:"inputs"`
	Outputs []jsonIOArg `json:"outputs"`
}

type jsonIOArg struct {
	Name string `json:"name"`
	ID   uint32 `json:"id"`
}

// ParseFile parses the JSON circuit file.
func ParseFile(name string) (*Circuit, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses a JSON circuit from the input. The result circuit is
// verified; malformed wiring is rejected here, not at evaluation time.
func Parse(in io.Reader) (*Circuit, error) {
	var jc jsonCircuit

	dec := json.NewDecoder(in)
	if err := dec.Decode(&jc); err != nil {
		return nil, errors.Wrap(ErrMalformedCircuit, err.Error())
	}

	circ := &Circuit{
		Name:        jc.Name,
		Description: jc.Description,
	}
	for _, g := range jc.Gates {
		op, err := parseOperation(g.Type)
		if err != nil {
			return nil, err
		}
		var in []Wire
		for _, id := range g.In {
			in = append(in, Wire(id))
		}
		circ.Gates = append(circ.Gates, Gate{
			ID: Wire(g.ID),
			Op: op,
			In: in,
		})
	}
	for _, arg := range jc.Metadata.Inputs {
		circ.Inputs = append(circ.Inputs, IOArg{
			Name: arg.Name,
			Wire: Wire(arg.ID),
		})
	}
	for _, arg := range jc.Metadata.Outputs {
		circ.Outputs = append(circ.Outputs, IOArg{
			Name: arg.Name,
			Wire: Wire(arg.ID),
		})
	}

	if err := circ.Verify(); err != nil {
		return nil, err
	}
	return circ, nil
}

func parseOperation(name string) (Operation, error) {
	switch name {
	case "XOR":
		return XOR, nil
	case "AND":
		return AND, nil
	case "OR":
		return OR, nil
	case "NOT":
		return NOT, nil
	default:
		return 0, errors.Wrapf(ErrMalformedCircuit,
			"unknown gate type %q", name)
	}
}
