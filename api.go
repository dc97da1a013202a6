// api.go - Package-level convenience API over the default parameter set.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "io"

// Keypair generates a private and public key pair using Kyber768, the
// recommended default parameter set.
func Keypair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	return Kyber768.GenerateKeyPair(rng)
}

// Derive deterministically generates a private and public key pair using
// Kyber768 from a 64-byte seed. See ParameterSet.Derive.
func Derive(seed []byte) (*PublicKey, *PrivateKey, error) {
	return Kyber768.Derive(seed)
}

// Encapsulate generates a ciphertext and shared secret for pk via the
// CCA-secure Kyber key encapsulation mechanism.
func Encapsulate(pk *PublicKey, rng io.Reader) (ciphertext, sharedSecret []byte, err error) {
	return pk.Encapsulate(rng)
}

// Decapsulate recovers the shared secret for ciphertext using sk.
func Decapsulate(ciphertext []byte, sk *PrivateKey) (sharedSecret []byte, err error) {
	return sk.Decapsulate(ciphertext)
}

// PublicFromSecret extracts the byte serialization of the public key
// embedded in sk.
func PublicFromSecret(sk *PrivateKey) []byte {
	return sk.PublicFromSecret()
}
