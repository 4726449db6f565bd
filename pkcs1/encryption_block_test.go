//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package pkcs1

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestEncryptionBlock(t *testing.T) {
	data := []byte{'h', 'e', 'l', 'l', 'o'}

	_, err := NewEncryptionBlock(BT0, 2048/8, data)
	if err == nil {
		t.Fatal("BT0 succeeded")
	}

	for _, bt := range []EncryptionBlockType{BT1, BT2} {
		block, err := NewEncryptionBlock(bt, 2048/8, data)
		if err != nil {
			t.Fatalf("Failed to create BT%d: %s", bt, err)
		}
		parsed, err := ParseEncryptionBlock(block)
		if err != nil {
			t.Fatalf("Failed to parse BT%d block: %s", bt, err)
		}
		if !bytes.Equal(data, parsed) {
			t.Fatalf("Parsed invalid BT%d data", bt)
		}
	}

	_, err = NewEncryptionBlock(BT2, len(data)+MinPadLen+3-1, data)
	if err == nil {
		t.Fatal("Too long data encoded")
	}
}

func TestParseEncryptionBlockErrors(t *testing.T) {
	_, err := ParseEncryptionBlock([]byte{0, 1})
	if !errors.Is(err, ErrInvalidEncryptionBlock) {
		t.Errorf("truncated block: unexpected error: %v", err)
	}
	_, err = ParseEncryptionBlock([]byte{1, 1, 0xff, 0, 'x'})
	if !errors.Is(err, ErrInvalidEncryptionBlock) {
		t.Errorf("bad leading byte: unexpected error: %v", err)
	}
	_, err = ParseEncryptionBlock([]byte{0, 9, 0xff, 0, 'x'})
	if !errors.Is(err, ErrInvalidEncryptionBlock) {
		t.Errorf("bad block type: unexpected error: %v", err)
	}
	_, err = ParseEncryptionBlock([]byte{0, 1, 0xff, 0xff, 0xff})
	if !errors.Is(err, ErrInvalidEncryptionBlock) {
		t.Errorf("missing delimiter: unexpected error: %v", err)
	}
}
