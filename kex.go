// kex.go - Kyber key exchange.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"errors"
	"io"
)

var (
	// ErrInvalidMessageSize is returned when a initiator or responder
	// message is an invalid size.
	ErrInvalidMessageSize = errors.New("kyber: invalid message size")

	// ErrParameterSetMismatch is returned when there is a mismatch between
	// parameter sets.
	ErrParameterSetMismatch = errors.New("kyber: parameter set mismatch")
)

// UAKEInitiatorMessageSize returns the size of the initiator UAKE message
// in bytes.
func (p *ParameterSet) UAKEInitiatorMessageSize() int {
	return p.PublicKeySize() + p.CipherTextSize()
}

// UAKEResponderMessageSize returns the size of the responder UAKE message
// in bytes.
func (p *ParameterSet) UAKEResponderMessageSize() int {
	return p.CipherTextSize()
}

// UAKEInitiatorState is a initiator UAKE instance. Each instance MUST only
// be used for one key exchange and never reused.
type UAKEInitiatorState struct {
	// Message is the UAKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// Shared generates a shared secret for the given UAKE instance and responder
// message.
//
// On a malformed ciphertext, sharedSecret is a pseudorandom value owing to
// implicit rejection, not an error. recv of the wrong length returns
// ErrInvalidMessageSize.
func (s *UAKEInitiatorState) Shared(recv []byte) (sharedSecret []byte, err error) {
	p := s.eSk.PublicKey.p
	if len(recv) != p.CipherTextSize() {
		return nil, ErrInvalidMessageSize
	}

	tk, err := s.eSk.Decapsulate(recv)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 2*SymSize)
	buf = append(buf, tk...)
	buf = append(buf, s.tk...)

	sharedSecret = make([]byte, SymSize)
	p.kdf(sharedSecret, buf)

	return sharedSecret, nil
}

// NewUAKEInitiatorState creates a new initiator UAKE instance.
func (pk *PublicKey) NewUAKEInitiatorState(rng io.Reader) (*UAKEInitiatorState, error) {
	s := new(UAKEInitiatorState)
	s.Message = make([]byte, 0, pk.p.UAKEInitiatorMessageSize())

	var err error
	_, s.eSk, err = pk.p.GenerateKeyPair(rng)
	if err != nil {
		return nil, err
	}
	s.Message = append(s.Message, s.eSk.PublicKey.Bytes()...)

	var ct []byte
	ct, s.tk, err = pk.Encapsulate(rng)
	if err != nil {
		return nil, err
	}

	s.Message = append(s.Message, ct...)

	return s, nil
}

// UAKEResponderShared generates a responder message and shared secret given
// a initiator UAKE message.
//
// On a malformed ciphertext embedded in recv, sharedSecret is a
// pseudorandom value owing to implicit rejection, not an error. recv of the
// wrong length, or an invalid embedded public key, returns an error.
func (sk *PrivateKey) UAKEResponderShared(rng io.Reader, recv []byte) (message, sharedSecret []byte, err error) {
	p := sk.PublicKey.p
	pkLen := p.PublicKeySize()

	if len(recv) != p.UAKEInitiatorMessageSize() {
		return nil, nil, ErrInvalidMessageSize
	}
	rawPk, ct := recv[:pkLen], recv[pkLen:]
	peerPk, err := p.PublicKeyFromBytes(rawPk)
	if err != nil {
		return nil, nil, err
	}

	message, tk2, err := peerPk.Encapsulate(rng)
	if err != nil {
		return nil, nil, err
	}

	tk1, err := sk.Decapsulate(ct)
	if err != nil {
		return nil, nil, err
	}

	buf := make([]byte, 0, 2*SymSize)
	buf = append(buf, tk2...)
	buf = append(buf, tk1...)

	sharedSecret = make([]byte, SymSize)
	p.kdf(sharedSecret, buf)

	return message, sharedSecret, nil
}

// AKEInitiatorMessageSize returns the size of the initiator AKE message
// in bytes.
func (p *ParameterSet) AKEInitiatorMessageSize() int {
	return p.PublicKeySize() + p.CipherTextSize()
}

// AKEResponderMessageSize returns the size of the responder AKE message
// in bytes.
func (p *ParameterSet) AKEResponderMessageSize() int {
	return 2 * p.CipherTextSize()
}

// AKEInitiatorState is a initiator AKE instance. Each instance MUST only be
// used for one key exchange and never reused.
type AKEInitiatorState struct {
	// Message is the AKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// Shared generates a shared secret for the given AKE instance, responder
// message, and long term initiator private key.
//
// On a malformed ciphertext embedded in recv, sharedSecret is a
// pseudorandom value owing to implicit rejection, not an error. recv of the
// wrong length, or a private key using a different ParameterSet than the
// AKEInitiatorState, returns an error.
func (s *AKEInitiatorState) Shared(recv []byte, initiatorPrivateKey *PrivateKey) (sharedSecret []byte, err error) {
	p := s.eSk.PublicKey.p

	if initiatorPrivateKey.PublicKey.p != p {
		return nil, ErrParameterSetMismatch
	}
	if len(recv) != p.AKEResponderMessageSize() {
		return nil, ErrInvalidMessageSize
	}
	ctLen := p.CipherTextSize()

	tk2, err := s.eSk.Decapsulate(recv[:ctLen])
	if err != nil {
		return nil, err
	}

	tk3, err := initiatorPrivateKey.Decapsulate(recv[ctLen:])
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 3*SymSize)
	buf = append(buf, tk2...)
	buf = append(buf, tk3...)
	buf = append(buf, s.tk...)

	sharedSecret = make([]byte, SymSize)
	p.kdf(sharedSecret, buf)

	return sharedSecret, nil
}

// NewAKEInitiatorState creates a new initiator AKE instance.
func (pk *PublicKey) NewAKEInitiatorState(rng io.Reader) (*AKEInitiatorState, error) {
	s := new(AKEInitiatorState)

	// This is identical to the UAKE case, so just reuse the code.
	us, err := pk.NewUAKEInitiatorState(rng)
	if err != nil {
		return nil, err
	}

	s.Message = us.Message
	s.eSk = us.eSk
	s.tk = us.tk

	return s, nil
}

// AKEResponderShared generates a responder message and shared secret given
// a initiator AKE message and long term initiator public key.
//
// On a malformed ciphertext embedded in recv, sharedSecret is a
// pseudorandom value owing to implicit rejection, not an error. recv of the
// wrong length, a mismatched ParameterSet, or an invalid embedded public
// key, returns an error.
func (sk *PrivateKey) AKEResponderShared(rng io.Reader, recv []byte, peerPublicKey *PublicKey) (message, sharedSecret []byte, err error) {
	p := sk.PublicKey.p
	pkLen := p.PublicKeySize()

	if peerPublicKey.p != p {
		return nil, nil, ErrParameterSetMismatch
	}

	if len(recv) != p.AKEInitiatorMessageSize() {
		return nil, nil, ErrInvalidMessageSize
	}
	rawPk, ct := recv[:pkLen], recv[pkLen:]
	ephPk, err := p.PublicKeyFromBytes(rawPk)
	if err != nil {
		return nil, nil, err
	}

	message = make([]byte, 0, p.AKEResponderMessageSize())

	tmp, tk2, err := ephPk.Encapsulate(rng)
	if err != nil {
		return nil, nil, err
	}
	message = append(message, tmp...)

	tmp, tk3, err := peerPublicKey.Encapsulate(rng)
	if err != nil {
		return nil, nil, err
	}
	message = append(message, tmp...)

	tk1, err := sk.Decapsulate(ct)
	if err != nil {
		return nil, nil, err
	}

	buf := make([]byte, 0, 3*SymSize)
	buf = append(buf, tk2...)
	buf = append(buf, tk3...)
	buf = append(buf, tk1...)

	sharedSecret = make([]byte, SymSize)
	p.kdf(sharedSecret, buf)

	return message, sharedSecret, nil
}
