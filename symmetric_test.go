// symmetric_test.go - Symmetric primitives and zeroization tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymmetric90s(t *testing.T) {
	require := require.New(t)

	var seed, key [SymSize]byte
	_, err := rand.Read(seed[:])
	require.NoError(err, "rand.Read(seed)")
	_, err = rand.Read(key[:])
	require.NoError(err, "rand.Read(key)")

	for _, p := range []*ParameterSet{Kyber768, Kyber768_90s} {
		out1 := make([]byte, SymSize)
		out2 := make([]byte, SymSize)

		p.hashH(out1, seed[:])
		p.hashH(out2, seed[:])
		require.Equal(out1, out2, "%s: hashH() determinism", p.Name())

		var g1, g2 [2 * SymSize]byte
		p.hashG(g1[:], seed[:])
		p.hashG(g2[:], seed[:])
		require.Equal(g1, g2, "%s: hashG() determinism", p.Name())
		require.NotEqual(make([]byte, 2*SymSize), g1[:], "%s: hashG() non-zero", p.Name())

		k1 := make([]byte, SymSize)
		k2 := make([]byte, SymSize)
		p.kdf(k1, g1[:])
		p.kdf(k2, g1[:])
		require.Equal(k1, k2, "%s: kdf() determinism", p.Name())

		buf1 := make([]byte, 64)
		buf2 := make([]byte, 64)
		p.prf(buf1, key[:], 0)
		p.prf(buf2, key[:], 0)
		require.Equal(buf1, buf2, "%s: prf() determinism", p.Name())

		bufOtherNonce := make([]byte, 64)
		p.prf(bufOtherNonce, key[:], 1)
		require.NotEqual(buf1, bufOtherNonce, "%s: prf() nonce separation", p.Name())
	}

	// The 90s profile and the default profile must not agree with each
	// other, since they use entirely different primitives.
	out90s := make([]byte, SymSize)
	outDefault := make([]byte, SymSize)
	Kyber768_90s.hashH(out90s, seed[:])
	Kyber768.hashH(outDefault, seed[:])
	require.NotEqual(out90s, outDefault, "90s and default H() must differ")
}

func TestPrivateKeyZeroize(t *testing.T) {
	require := require.New(t)

	_, sk, err := Kyber768.GenerateKeyPair(rand.Reader)
	require.NoError(err, "GenerateKeyPair()")

	zeroSk := make([]byte, len(sk.sk.packed))
	zeroZ := make([]byte, len(sk.z))
	require.False(bytes.Equal(sk.sk.packed, zeroSk), "sk.sk.packed should start non-zero")
	require.False(bytes.Equal(sk.z, zeroZ), "sk.z should start non-zero")

	sk.Zeroize()

	require.Equal(zeroSk, sk.sk.packed, "sk.sk.packed should be cleared")
	require.Equal(zeroZ, sk.z, "sk.z should be cleared")
}
