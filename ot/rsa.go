//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/rand"
	"crypto/rsa"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gmw/ot/mpint"
	"github.com/markkurossi/gmw/pkcs1"
)

// RandomData creates size bytes of random data.
func RandomData(size int) ([]byte, error) {
	m := make([]byte, size)
	_, err := rand.Read(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Sender implements the sender of the 1-out-of-2 oblivious transfer.
// The sender's RSA key is generated once and reused for all transfers
// the sender initiates.
type Sender struct {
	key *rsa.PrivateKey
}

// NewSender creates a new OT sender with a fresh RSA key of keyBits
// bits.
func NewSender(keyBits int) (*Sender, error) {
	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, err
	}
	return &Sender{
		key: key,
	}, nil
}

// MessageSize returns the transfer message size in bytes.
func (s *Sender) MessageSize() int {
	return s.key.PublicKey.Size()
}

// PublicKey returns the sender's public key. The receiver uses the
// public key to encrypt its choice.
func (s *Sender) PublicKey() *rsa.PublicKey {
	return &s.key.PublicKey
}

// NewTransfer creates a new transfer of the messages m0 and m1. The
// receiver will learn exactly one of them, selected by its choice bit,
// and the sender will not learn the choice.
func (s *Sender) NewTransfer(m0, m1 []byte) (*SenderXfer, error) {
	x0, err := RandomData(s.MessageSize())
	if err != nil {
		return nil, err
	}
	x1, err := RandomData(s.MessageSize())
	if err != nil {
		return nil, err
	}

	return &SenderXfer{
		sender: s,
		m0:     m0,
		m1:     m1,
		x0:     x0,
		x1:     x1,
	}, nil
}

// SenderXfer implements the sender side of one transfer.
type SenderXfer struct {
	sender *Sender
	m0     []byte
	m1     []byte
	x0     []byte
	x1     []byte
	k0     *big.Int
	k1     *big.Int
}

// MessageSize returns the transfer message size in bytes.
func (s *SenderXfer) MessageSize() int {
	return s.sender.MessageSize()
}

// RandomMessages returns the sender's random messages x0 and x1.
func (s *SenderXfer) RandomMessages() ([]byte, []byte) {
	return s.x0, s.x1
}

// ReceiveV receives the receiver's encrypted choice value. The value
// hides the choice bit blinded with the receiver's random key, so the
// sender can derive both masking keys without learning which one the
// receiver can unblind.
func (s *SenderXfer) ReceiveV(data []byte) {
	v := mpint.FromBytes(data)
	x0 := mpint.FromBytes(s.x0)
	x1 := mpint.FromBytes(s.x1)

	s.k0 = mpint.Exp(mpint.Sub(v, x0), s.sender.key.D, s.sender.key.PublicKey.N)
	s.k1 = mpint.Exp(mpint.Sub(v, x1), s.sender.key.D, s.sender.key.PublicKey.N)
}

// Messages returns the masked messages. Only the message matching the
// receiver's choice can be unmasked by the receiver.
func (s *SenderXfer) Messages() ([]byte, []byte, error) {
	if s.k0 == nil || s.k1 == nil {
		return nil, nil, errors.New("masking keys not derived")
	}
	m0, err := pkcs1.NewEncryptionBlock(pkcs1.BT1, s.MessageSize(), s.m0)
	if err != nil {
		return nil, nil, err
	}
	m0p := mpint.Add(mpint.FromBytes(m0), s.k0)

	m1, err := pkcs1.NewEncryptionBlock(pkcs1.BT1, s.MessageSize(), s.m1)
	if err != nil {
		return nil, nil, err
	}
	m1p := mpint.Add(mpint.FromBytes(m1), s.k1)

	return m0p.Bytes(), m1p.Bytes(), nil
}

// Receiver implements the receiver of the 1-out-of-2 oblivious
// transfer. The receiver sees only the sender's public key and the
// masked messages.
type Receiver struct {
	pub *rsa.PublicKey
}

// NewReceiver creates a new OT receiver for the sender's public key.
func NewReceiver(pub *rsa.PublicKey) *Receiver {
	return &Receiver{
		pub: pub,
	}
}

// MessageSize returns the transfer message size in bytes.
func (r *Receiver) MessageSize() int {
	return r.pub.Size()
}

// NewTransfer creates a new transfer with the choice bit.
func (r *Receiver) NewTransfer(bit int) (*ReceiverXfer, error) {
	if bit != 0 && bit != 1 {
		return nil, errors.Newf("invalid choice bit %d", bit)
	}
	return &ReceiverXfer{
		receiver: r,
		bit:      bit,
	}, nil
}

// ReceiverXfer implements the receiver side of one transfer.
type ReceiverXfer struct {
	receiver *Receiver
	bit      int
	k        *big.Int
	v        *big.Int
	mb       []byte
}

// ReceiveRandomMessages receives the sender's random messages and
// encrypts the choice: v = x_b + k^e mod N for a random k.
func (r *ReceiverXfer) ReceiveRandomMessages(x0, x1 []byte) error {
	k, err := rand.Int(rand.Reader, r.receiver.pub.N)
	if err != nil {
		return err
	}
	r.k = k

	var xb *big.Int
	if r.bit == 0 {
		xb = mpint.FromBytes(x0)
	} else {
		xb = mpint.FromBytes(x1)
	}

	e := big.NewInt(int64(r.receiver.pub.E))
	r.v = mpint.Mod(
		mpint.Add(xb, mpint.Exp(r.k, e, r.receiver.pub.N)), r.receiver.pub.N)

	return nil
}

// V returns the receiver's encrypted choice value.
func (r *ReceiverXfer) V() []byte {
	return r.v.Bytes()
}

// ReceiveMessages receives the masked messages and extracts the
// message selected by the choice bit. The other message stays hidden
// behind a key the receiver cannot compute.
func (r *ReceiverXfer) ReceiveMessages(m0p, m1p []byte) error {
	var mbp *big.Int
	if r.bit == 0 {
		mbp = mpint.FromBytes(m0p)
	} else {
		mbp = mpint.FromBytes(m1p)
	}
	mbBytes := make([]byte, r.receiver.MessageSize())
	mbIntBytes := mpint.Sub(mbp, r.k).Bytes()
	ofs := len(mbBytes) - len(mbIntBytes)
	if ofs < 0 {
		return errors.New("masked message too long")
	}
	copy(mbBytes[ofs:], mbIntBytes)

	mb, err := pkcs1.ParseEncryptionBlock(mbBytes)
	if err != nil {
		return err
	}
	r.mb = mb

	return nil
}

// Message returns the extracted message and the choice bit.
func (r *ReceiverXfer) Message() (m []byte, bit int) {
	return r.mb, r.bit
}
