// symmetric.go - Symmetric primitives abstraction layer.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

const (
	shake128Rate = 168 // SHAKE-128 rate in bytes.
	aes90sRate   = 64  // 90s-mode XOF squeeze block size.
)

// hashH is the H() function: SHA3-256 by default, SHA-256 in 90s mode.
func (p *ParameterSet) hashH(out, in []byte) {
	if p.is90s {
		h := sha256.Sum256(in)
		copy(out, h[:])
		return
	}
	h := sha3.Sum256(in)
	copy(out, h[:])
}

// hashG is the G() function: SHA3-512 by default, SHA-512 in 90s mode.
func (p *ParameterSet) hashG(out, in []byte) {
	if p.is90s {
		h := sha512.Sum512(in)
		copy(out, h[:])
		return
	}
	h := sha3.Sum512(in)
	copy(out, h[:])
}

// kdf squeezes SymSize bytes of shared-secret material: SHAKE-256 by
// default, SHA-256 in 90s mode.
func (p *ParameterSet) kdf(out, in []byte) {
	if p.is90s {
		h := sha256.Sum256(in)
		copy(out, h[:])
		return
	}
	sha3.ShakeSum256(out, in)
}

// prf expands key||nonce into len(out) bytes of pseudorandom output:
// SHAKE-256 by default, AES-256-CTR(key, nonce||0...) in 90s mode.
func (p *ParameterSet) prf(out []byte, key []byte, nonce byte) {
	if p.is90s {
		var iv [aes.BlockSize]byte
		iv[0] = nonce
		block, err := aes.NewCipher(key[:32])
		if err != nil {
			panic(err) // key is always exactly 32 bytes; cannot fail.
		}
		stream := cipher.NewCTR(block, iv[:])
		for i := range out {
			out[i] = 0
		}
		stream.XORKeyStream(out, out)
		return
	}

	extKey := make([]byte, 0, SymSize+1)
	extKey = append(extKey, key...)
	extKey = append(extKey, nonce)
	sha3.ShakeSum256(out, extKey)
}

// xofState is a resumable extendable-output function: it absorbs a seed
// once and can be squeezed incrementally in blocks, because rejection
// sampling may need more output than a single block provides.
type xofState struct {
	is90s  bool
	shake  sha3.ShakeHash
	stream cipher.Stream
}

// blockBytes returns the natural squeeze granularity of the XOF.
func (x *xofState) blockBytes() int {
	if x.is90s {
		return aes90sRate
	}
	return shake128Rate
}

// newXOF absorbs seed||x||y and returns a resumable XOF state.
func (p *ParameterSet) newXOF(seed []byte, x, y byte) *xofState {
	if p.is90s {
		var iv [aes.BlockSize]byte
		iv[0] = x
		iv[1] = y
		block, err := aes.NewCipher(seed[:32])
		if err != nil {
			panic(err) // seed is always exactly 32 bytes; cannot fail.
		}
		return &xofState{is90s: true, stream: cipher.NewCTR(block, iv[:])}
	}

	h := sha3.NewShake128()
	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], seed)
	extSeed[SymSize] = x
	extSeed[SymSize+1] = y
	h.Write(extSeed[:])
	return &xofState{shake: h}
}

// squeeze fills out with the next len(out) bytes of XOF output.
func (x *xofState) squeeze(out []byte) {
	if x.is90s {
		for i := range out {
			out[i] = 0
		}
		x.stream.XORKeyStream(out, out)
		return
	}
	x.shake.Read(out)
}
