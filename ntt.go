// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zetas lists precomputed powers of the primitive 256th root of unity
// zeta=17 in Montgomery representation, in bit-reversed order:
//
//	zetas[i] = zeta^brv(i) * R mod q
//
// where brv(i) is the 7-bit bitreversal of i and R = 2^16 mod q.
var zetas = [128]int16{
	2285, 2571, 2970, 1812, 1493, 1422, 287, 202, 3158, 622, 1577, 182,
	962, 2127, 1855, 1468, 573, 2004, 264, 383, 2500, 1458, 1727, 3199,
	2648, 1017, 732, 608, 1787, 411, 3124, 1758, 1223, 652, 2777, 1015,
	2036, 1491, 3047, 1785, 516, 3321, 3009, 2663, 1711, 2167, 126,
	1469, 2476, 3239, 3058, 830, 107, 1908, 3082, 2378, 2931, 961, 1821,
	2604, 448, 2264, 677, 2054, 2226, 430, 555, 843, 2078, 871, 1550,
	105, 422, 587, 177, 3094, 3038, 2869, 1574, 1653, 3083, 778, 1159,
	3182, 2552, 1483, 2727, 1119, 1739, 644, 2457, 349, 418, 329, 3173,
	3254, 817, 1097, 603, 610, 1322, 2044, 1864, 384, 2114, 3193, 1218,
	1994, 2455, 220, 2142, 1670, 2144, 1799, 2051, 794, 1819, 2475,
	2459, 478, 3221, 3021, 996, 991, 958, 1869, 1522, 1628,
}

// Computes the negacyclic number-theoretic transform (NTT) of a polynomial
// in place; input assumed to be in normal order, output in bitreversed
// order. Input coefficients are assumed to be bounded by q in absolute
// value; output coefficients are bounded by 7q.
func nttRef(p *[kyberN]int16) {
	k := 1
	for length := kyberN / 2; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := int32(zetas[k])
			k++

			for j := start; j < start+length; j++ {
				t := montgomeryReduce(zeta * int32(p[j+length]))
				p[j+length] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// Computes the inverse of the negacyclic NTT of a polynomial in place, and
// multiplies by the Montgomery factor R; input assumed to be in bitreversed
// order, output in normal order.
func invnttRef(p *[kyberN]int16) {
	k := 127
	for length := 2; length <= kyberN/2; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := int32(zetas[k])
			k--

			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = barrettReduce(t + p[j+length])
				p[j+length] = p[j+length] - t
				p[j+length] = montgomeryReduce(zeta * int32(p[j+length]))
			}
		}
	}

	const f = 1441 // mont^2/128 mod q
	for j := 0; j < kyberN; j++ {
		p[j] = montgomeryReduce(f * int32(p[j]))
	}
}

// basemul computes the product of two degree-one polynomials a, b in
// Z_q[X]/(X^2-zeta) and stores it in r. This is the building block used by
// poly.baseMulMontgomery to multiply NTT-domain polynomials, since
// X^256+1 splits into 128 such quadratic factors.
func basemul(r, a, b []int16, zeta int16) {
	r[0] = montgomeryReduce(int32(a[1]) * int32(b[1]))
	r[0] = montgomeryReduce(int32(r[0]) * int32(zeta))
	r[0] += montgomeryReduce(int32(a[0]) * int32(b[0]))

	r[1] = montgomeryReduce(int32(a[0]) * int32(b[1]))
	r[1] += montgomeryReduce(int32(a[1]) * int32(b[0]))
}
