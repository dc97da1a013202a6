// zeroize.go - Best-effort clearing of secret-bearing buffers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "runtime"

// zeroizeBytes overwrites buf with zeros and uses runtime.KeepAlive to deter
// the compiler from eliding the stores as dead, since nothing reads buf
// again before it becomes unreachable.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// Zeroize overwrites the private key's secret material (the IND-CPA secret
// key and the implicit-rejection value z) with zeros. The embedded public
// key, which is not sensitive, is left intact. Callers that no longer need
// a PrivateKey should call Zeroize as soon as they are done with it; it is
// unsafe to use the PrivateKey for any further operation afterwards.
func (sk *PrivateKey) Zeroize() {
	zeroizeBytes(sk.sk.packed)
	zeroizeBytes(sk.z)
}
