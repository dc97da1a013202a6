// indcpa.go - Kyber IND-CPA encryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "io"

// packPublicKey serializes the public key as the concatenation of the
// serialized vector of polynomials pk and the public seed used to generate
// the matrix A.
func (p *ParameterSet) packPublicKey(r []byte, pk *polyVec, seed []byte) {
	pk.toBytes(r)
	copy(r[p.polyVecSize:], seed[:SymSize])
}

// unpackPublicKey de-serializes a public key; approximate inverse of
// packPublicKey.
func (p *ParameterSet) unpackPublicKey(pk *polyVec, seed, packedPk []byte) {
	pk.fromBytes(packedPk)
	copy(seed, packedPk[p.polyVecSize:p.polyVecSize+SymSize])
}

// packCiphertext serializes a ciphertext as the concatenation of the
// compressed vector of polynomials b and the compressed polynomial v.
func (p *ParameterSet) packCiphertext(r []byte, b *polyVec, v *poly) {
	b.compress(r, p.du)
	v.compress(r[p.polyVecCompressedSize:], p.dv)
}

// unpackCiphertext de-serializes a ciphertext; approximate inverse of
// packCiphertext.
func (p *ParameterSet) unpackCiphertext(b *polyVec, v *poly, c []byte) {
	b.decompress(c, p.du)
	v.decompress(c[p.polyVecCompressedSize:], p.dv)
}

// genMatrix deterministically generates matrix A (or its transpose) from a
// seed. Entries are polynomials that look uniformly random, produced by
// rejection sampling on XOF output: each candidate is a 12-bit little-endian
// value drawn from two bytes, accepted iff it is smaller than q.
func (p *ParameterSet) genMatrix(a []polyVec, seed []byte, transposed bool) {
	const maxBlocks = 4

	buf := make([]byte, maxBlocks*shake128Rate)

	for i, v := range a {
		for j, pv := range v.vec {
			var xof *xofState
			if transposed {
				xof = p.newXOF(seed, byte(i), byte(j))
			} else {
				xof = p.newXOF(seed, byte(j), byte(i))
			}

			block := xof.blockBytes()
			maxPos := maxBlocks * block
			xof.squeeze(buf[:maxPos])

			for ctr, pos := 0, 0; ctr < kyberN; {
				val := int16(buf[pos]) | int16(buf[pos+1]&0x0f)<<8
				if val < kyberQ {
					pv.coeffs[ctr] = val
					ctr++
				}

				if pos += 2; pos == maxPos {
					xof.squeeze(buf[:block])
					pos, maxPos = 0, block
				}
			}
		}
	}
}

type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) toBytes() []byte {
	return pk.packed
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidInput
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	p.hashH(pk.h[:], b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidInput
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// indcpaKeyPair generates a public/private key pair for the CPA-secure
// public-key encryption scheme underlying Kyber. If coins is non-nil it is
// used as the 32-byte keygen seed d in place of output drawn from rng,
// making key generation deterministic (see Derive).
func (p *ParameterSet) indcpaKeyPair(rng io.Reader, coins []byte) (*indcpaPublicKey, *indcpaSecretKey, error) {
	var d [SymSize]byte
	if coins != nil {
		copy(d[:], coins)
	} else if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}

	sk := &indcpaSecretKey{packed: make([]byte, p.indcpaSecretKeySize)}
	pk := &indcpaPublicKey{packed: make([]byte, p.indcpaPublicKeySize)}

	var buf [2 * SymSize]byte
	p.hashG(buf[:], d[:])
	publicSeed, noiseSeed := buf[:SymSize], buf[SymSize:]

	a := p.allocMatrix()
	p.genMatrix(a, publicSeed, false)

	var nonce byte
	skpv := p.allocPolyVec()
	for _, pv := range skpv.vec {
		pv.getNoiseEta1(p, noiseSeed, nonce)
		nonce++
	}

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoiseEta1(p, noiseSeed, nonce)
		nonce++
	}

	skpv.ntt()
	e.ntt()

	// matrix-vector multiplication, staying in the NTT domain
	pkpv := p.allocPolyVec()
	for i, pv := range pkpv.vec {
		pv.pointwiseAcc(&a[i], &skpv)
		pv.toMont()
	}

	pkpv.add(&pkpv, &e)
	pkpv.reduce()
	skpv.reduce()

	p.packSecretKey(sk.packed, &skpv)
	p.packPublicKey(pk.packed, &pkpv, publicSeed)
	p.hashH(pk.h[:], pk.packed)

	return pk, sk, nil
}

// packSecretKey serializes the secret key.
func (p *ParameterSet) packSecretKey(r []byte, sk *polyVec) {
	sk.toBytes(r)
}

// unpackSecretKey de-serializes the secret key; inverse of packSecretKey.
func (p *ParameterSet) unpackSecretKey(sk *polyVec, packedSk []byte) {
	sk.fromBytes(packedSk)
}

// indcpaEncrypt is the encryption function of the CPA-secure public-key
// encryption scheme underlying Kyber.
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var k, v, epp poly
	var seed [SymSize]byte

	pkpv := p.allocPolyVec()
	p.unpackPublicKey(&pkpv, seed[:], pk.packed)

	k.fromMsg(m)

	at := p.allocMatrix()
	p.genMatrix(at, seed[:], true)

	var nonce byte
	sp := p.allocPolyVec()
	for _, pv := range sp.vec {
		pv.getNoiseEta1(p, coins, nonce)
		nonce++
	}

	ep := p.allocPolyVec()
	for _, pv := range ep.vec {
		pv.getNoiseEta2(p, coins, nonce)
		nonce++
	}

	epp.getNoiseEta2(p, coins, nonce)

	sp.ntt()

	// matrix-vector multiplication
	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.pointwiseAcc(&at[i], &sp)
	}

	v.pointwiseAcc(&pkpv, &sp)

	bp.invntt()
	v.invntt()

	bp.add(&bp, &ep)
	v.add(&v, &epp)
	v.add(&v, &k)

	bp.reduce()
	v.reduce()

	p.packCiphertext(c, &bp, &v)
}

// indcpaDecrypt is the decryption function of the CPA-secure public-key
// encryption scheme underlying Kyber.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	var v, mp poly

	skpv, bp := p.allocPolyVec(), p.allocPolyVec()
	p.unpackCiphertext(&bp, &v, c)
	p.unpackSecretKey(&skpv, sk.packed)

	bp.ntt()

	mp.pointwiseAcc(&skpv, &bp)
	mp.invntt()

	mp.sub(&v, &mp)
	mp.reduce()

	mp.toMsg(m)
}
