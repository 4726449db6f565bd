//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"

	"github.com/markkurossi/gmw"
	"github.com/markkurossi/gmw/circuit"
)

func main() {
	parties := flag.Int("parties", 2, "Number of computing parties")
	keyBits := flag.Int("key-bits", gmw.DefaultKeyBits,
		"Oblivious transfer RSA key size")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if len(flag.Args()) < 1 {
		fmt.Printf("Usage: gmw [OPTIONS] CIRCUIT.json BIT...\n")
		os.Exit(1)
	}

	file := flag.Args()[0]
	circ, err := circuit.ParseFile(file)
	if err != nil {
		fmt.Printf("failed to parse circuit '%s': %s\n", file, err)
		os.Exit(1)
	}
	if *verbose {
		fmt.Printf("circuit: %v\n", circ)
	}

	inputs, err := parseInputs(flag.Args()[1:], circ)
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(1)
	}

	timing := circuit.NewTiming()

	p, err := gmw.New(circ, *parties, rand.Reader)
	if err != nil {
		fmt.Printf("failed to init protocol: %s\n", err)
		os.Exit(1)
	}
	p.Verbose = *verbose
	p.KeyBits = *keyBits
	timing.Sample("Init", []string{fmt.Sprintf("%d parties", *parties)})

	shares := make(map[circuit.Wire][]bool)
	for idx, input := range circ.Inputs {
		shares[input.Wire], err = gmw.Share(rand.Reader, inputs[idx],
			*parties)
		if err != nil {
			fmt.Printf("failed to share input %s: %s\n", input.Name, err)
			os.Exit(1)
		}
	}
	if err := p.SetInputShares(shares); err != nil {
		fmt.Printf("failed to set input shares: %s\n", err)
		os.Exit(1)
	}
	timing.Sample("Share", []string{fmt.Sprintf("%d inputs",
		len(circ.Inputs))})

	if err := p.Evaluate(); err != nil {
		fmt.Printf("evaluation failed: %s\n", err)
		os.Exit(1)
	}
	timing.Sample("Eval", []string{fmt.Sprintf("%d gates",
		len(circ.Gates))})

	for _, output := range circ.Outputs {
		outShares, err := p.OutputShares(output.Wire)
		if err != nil {
			fmt.Printf("failed to get output %s: %s\n", output.Name, err)
			os.Exit(1)
		}
		fmt.Printf("%s=%v\n", output.Name, gmw.Reconstruct(outShares))
	}
	timing.Sample("Result", nil)

	if *verbose {
		timing.Print()
	}
}

func parseInputs(args []string, circ *circuit.Circuit) ([]bool, error) {
	if len(args) != len(circ.Inputs) {
		return nil, fmt.Errorf("circuit takes %d inputs (%s), got %d",
			len(circ.Inputs), circ.Inputs, len(args))
	}
	var inputs []bool
	for idx, arg := range args {
		switch arg {
		case "0", "false":
			inputs = append(inputs, false)
		case "1", "true":
			inputs = append(inputs, true)
		default:
			return nil, fmt.Errorf("invalid input '%s' for %s",
				arg, circ.Inputs[idx].Name)
		}
	}
	return inputs, nil
}
