//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gmw

import (
	"golang.org/x/crypto/chacha20"
)

// PRG is a deterministic pseudorandom generator producing a chacha20
// keystream. It implements io.Reader so it can be injected as the
// protocol randomness source for seeded, reproducible runs and tests.
type PRG struct {
	cipher *chacha20.Cipher
}

// NewPRG creates a new pseudorandom generator from the seed. Seeds
// longer than the chacha20 key size are truncated, shorter seeds are
// zero-padded.
func NewPRG(seed []byte) (*PRG, error) {
	key := make([]byte, chacha20.KeySize)
	copy(key, seed)
	nonce := make([]byte, chacha20.NonceSize)

	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}
	return &PRG{
		cipher: cipher,
	}, nil
}

// Read fills buf with keystream bytes. It never fails.
func (prg *PRG) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = 0
	}
	prg.cipher.XORKeyStream(buf, buf)
	return len(buf), nil
}
