// kem.go - Kyber key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"
)

var (
	// ErrInvalidInput is returned when a byte serialized key, ciphertext, or
	// seed is the wrong length, or otherwise fails a pre-cryptographic
	// validity check.
	ErrInvalidInput = errors.New("kyber: invalid input")

	// ErrRngFailure is returned when the caller-supplied io.Reader fails to
	// fill the randomness required by an operation.
	ErrRngFailure = errors.New("kyber: rng failure")
)

// PrivateKey is a Kyber private key.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PublicFromSecret extracts the byte serialization of the public key
// embedded in a PrivateKey, without needing the corresponding PublicKey
// value to be kept around separately.
func (sk *PrivateKey) PublicFromSecret() []byte {
	return sk.PublicKey.Bytes()
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidInput
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymSize)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p

	// De-serialize the public key first.
	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.publicKeySize]); err != nil {
		return nil, err
	}
	off += p.publicKeySize
	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidInput
	}
	off += SymSize
	copy(sk.z, b[off:])

	// Then go back to de-serialize the private key.
	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// PublicKey is a Kyber public key.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.publicKeySize {
		return nil, ErrInvalidInput
	}

	pk := &PublicKey{
		pk: new(indcpaPublicKey),
		p:  p,
	}

	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}

	return pk, nil
}

// GenerateKeyPair generates a private and public key parameterized with the
// given ParameterSet.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng, nil); err != nil {
		return nil, nil, ErrRngFailure
	}

	kp.PublicKey.p = p
	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, ErrRngFailure
	}

	return &kp.PublicKey, kp, nil
}

// Derive deterministically generates a private and public key pair from a
// 64-byte seed (32 bytes of indcpa keygen coins, followed by 32 bytes used
// as the implicit-rejection secret z). The same seed always yields the same
// key pair.
func (p *ParameterSet) Derive(seed []byte) (*PublicKey, *PrivateKey, error) {
	if len(seed) != 2*SymSize {
		return nil, nil, ErrInvalidInput
	}

	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(nil, seed[:SymSize]); err != nil {
		return nil, nil, err
	}

	kp.PublicKey.p = p
	kp.z = make([]byte, SymSize)
	copy(kp.z, seed[SymSize:])

	return &kp.PublicKey, kp, nil
}

// Encapsulate generates a ciphertext and shared secret via the CCA-secure
// Kyber key encapsulation mechanism.
func (pk *PublicKey) Encapsulate(rng io.Reader) (ciphertext []byte, sharedSecret []byte, err error) {
	p := pk.p

	var buf [SymSize]byte
	if _, err = io.ReadFull(rng, buf[:]); err != nil {
		return nil, nil, ErrRngFailure
	}
	p.hashH(buf[:], buf[:]) // Don't release system RNG output

	var mHpk [2 * SymSize]byte
	copy(mHpk[:SymSize], buf[:])
	copy(mHpk[SymSize:], pk.pk.h[:]) // Multitarget countermeasure for coins + contributory KEM

	var kr [2 * SymSize]byte
	p.hashG(kr[:], mHpk[:])

	ciphertext = make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(ciphertext, buf[:], pk.pk, kr[SymSize:]) // coins are in kr[SymSize:]

	var hc [SymSize]byte
	p.hashH(hc[:], ciphertext)
	copy(kr[SymSize:], hc[:]) // overwrite coins in kr with H(c)

	sharedSecret = make([]byte, SymSize)
	p.kdf(sharedSecret, kr[:]) // hash concatenation of pre-k and H(c) to k

	return ciphertext, sharedSecret, nil
}

// Decapsulate recovers the shared secret for a given ciphertext via the
// CCA-secure Kyber key encapsulation mechanism.
//
// Decapsulate never returns an error on ciphertext content: on a malformed
// or tampered ciphertext, sharedSecret is a pseudorandom value derived from
// the private key's implicit-rejection secret, per the FO transform. Only a
// wrong-length ciphertext is reported as ErrInvalidInput.
func (sk *PrivateKey) Decapsulate(ciphertext []byte) (sharedSecret []byte, err error) {
	p := sk.PublicKey.p
	if len(ciphertext) != p.cipherTextSize {
		return nil, ErrInvalidInput
	}

	var buf [2 * SymSize]byte
	p.indcpaDecrypt(buf[:SymSize], ciphertext, sk.sk)

	copy(buf[SymSize:], sk.PublicKey.pk.h[:]) // Multitarget countermeasure for coins + contributory KEM

	var kr [2 * SymSize]byte
	p.hashG(kr[:], buf[:])

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, buf[:SymSize], sk.PublicKey.pk, kr[SymSize:]) // coins are in kr[SymSize:]

	var hc [SymSize]byte
	p.hashH(hc[:], ciphertext)
	copy(kr[SymSize:], hc[:]) // overwrite coins in kr with H(c)

	fail := subtle.ConstantTimeSelect(subtle.ConstantTimeCompare(ciphertext, cmp), 0, 1)
	subtle.ConstantTimeCopy(fail, kr[:SymSize], sk.z) // Overwrite pre-k with z on re-encryption failure

	sharedSecret = make([]byte, SymSize)
	p.kdf(sharedSecret, kr[:])

	return sharedSecret, nil
}
