// reduce.go - Montgomery and Barrett reduction.
//
// There is no separate conditional-subtract-q function; the map of a
// reduced coefficient into [0, q) before packing is toUnsigned in poly.go.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	qinv = 62209 // q^-1 mod 2^16
	rlog = 16
)

// montgomeryReduce computes a 16-bit integer congruent to a * R^-1 mod q,
// where R = 2^16, given a with |a| <= q*2^15. Result is in (-q, q).
func montgomeryReduce(a int32) int16 {
	u := int16(a * qinv)
	t := int32(u) * kyberQ
	t = a - t
	t >>= rlog
	return int16(t)
}

// barrettReduce computes a 16-bit integer congruent to a mod q in
// [0, q].
func barrettReduce(a int16) int16 {
	const v = int32(1<<26)/kyberQ + 1
	t := (v * int32(a)) >> 26
	t *= kyberQ
	return a - int16(t)
}
