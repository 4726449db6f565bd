//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ot implements the 1-out-of-2 oblivious transfer primitive
// used by the GMW protocol, and the composition of two 1-out-of-2
// transfers into a 1-out-of-4 transfer. The transfer runs in four
// phases: the sender generates its key material and random messages,
// the receiver encrypts its choice, the sender masks the messages, and
// the receiver extracts the message its choice selects. The receiver
// learns nothing about the other message and the sender learns nothing
// about the choice.
package ot

// Transfer runs the four phases of a 1-out-of-2 transfer between the
// sender and a receiver choosing with bit. It returns the message the
// choice selects.
func Transfer(s *Sender, m0, m1 []byte, bit int) ([]byte, error) {
	sx, err := s.NewTransfer(m0, m1)
	if err != nil {
		return nil, err
	}
	rx, err := NewReceiver(s.PublicKey()).NewTransfer(bit)
	if err != nil {
		return nil, err
	}
	err = rx.ReceiveRandomMessages(sx.RandomMessages())
	if err != nil {
		return nil, err
	}
	sx.ReceiveV(rx.V())

	m0p, m1p, err := sx.Messages()
	if err != nil {
		return nil, err
	}
	err = rx.ReceiveMessages(m0p, m1p)
	if err != nil {
		return nil, err
	}
	m, _ := rx.Message()

	return m, nil
}

// TransferBit runs a 1-out-of-2 transfer of the single-bit messages m0
// and m1, selected by choice.
func TransferBit(s *Sender, m0, m1, choice bool) (bool, error) {
	m, err := Transfer(s, bitMessage(m0), bitMessage(m1), bitValue(choice))
	if err != nil {
		return false, err
	}
	return messageBit(m), nil
}

// TransferBit4 runs a 1-out-of-4 transfer of the single-bit messages
// m, indexed by the 2-bit choice (c0, c1): the receiver obtains
// m[c0*2+c1]. The transfer is composed from two 1-out-of-2 transfers:
// the first selects with c0 one of the packed message pairs
// {(m0,m1), (m2,m3)}, the second selects with c1 one bit of the
// selected pair. Each stage reveals no more than the 1-out-of-2
// transfer it is built from.
func TransferBit4(s *Sender, m [4]bool, c0, c1 bool) (bool, error) {
	pair, err := Transfer(s,
		[]byte{packPair(m[0], m[1])},
		[]byte{packPair(m[2], m[3])},
		bitValue(c0))
	if err != nil {
		return false, err
	}
	lo, hi := unpackPair(pair[len(pair)-1])

	return TransferBit(s, lo, hi, c1)
}

func bitValue(b bool) int {
	if b {
		return 1
	}
	return 0
}

func bitMessage(b bool) []byte {
	return []byte{byte(bitValue(b))}
}

func messageBit(m []byte) bool {
	return len(m) > 0 && m[len(m)-1] != 0
}

func packPair(lo, hi bool) byte {
	return byte(bitValue(lo) | bitValue(hi)<<1)
}

func unpackPair(b byte) (lo, hi bool) {
	return b&1 != 0, b&2 != 0
}
