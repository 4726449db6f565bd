//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gmw

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Share splits the value into n additive XOR shares: the first n-1
// shares are independent uniformly random bits and the last share is
// chosen so that the XOR of all shares equals the value. Any strict
// subset of the shares is uniformly distributed independently of the
// value, so fewer than n colluding parties learn nothing.
func Share(rand io.Reader, value bool, n int) ([]bool, error) {
	if n < 1 {
		return nil, errors.Newf("invalid share count %d", n)
	}
	shares := make([]bool, n)
	acc := value

	for i := 0; i < n-1; i++ {
		bit, err := randBit(rand)
		if err != nil {
			return nil, err
		}
		shares[i] = bit
		acc = acc != bit
	}
	shares[n-1] = acc

	return shares, nil
}

// Reconstruct XOR-folds the shares back into the shared value.
func Reconstruct(shares []bool) bool {
	var value bool
	for _, share := range shares {
		value = value != share
	}
	return value
}

// randBit reads one uniformly random bit from the randomness source.
func randBit(rand io.Reader) (bool, error) {
	var buf [1]byte

	_, err := io.ReadFull(rand, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&1 != 0, nil
}
