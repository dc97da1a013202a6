// hwaccel.go - Hardware acceleration hooks.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// hwaccelImpl bundles the set of primitives that a platform-specific build
// may override with an accelerated implementation (eg: AVX2). All fields
// must share signatures with their reference counterparts.
type hwaccelImpl struct {
	name string

	nttFn    func(*[kyberN]int16)
	invnttFn func(*[kyberN]int16)

	cbdFn func(*poly, []byte, int)

	pointwiseAccFn func(*poly, *polyVec, *polyVec)
}

var referenceImpl = hwaccelImpl{
	name:           "Reference",
	nttFn:          nttRef,
	invnttFn:       invnttRef,
	cbdFn:          cbdRef,
	pointwiseAccFn: pointwiseAccRef,
}

var (
	isHardwareAccelerated = false
	hardwareAccelImpl     = referenceImpl
)

func forceDisableHardwareAcceleration() {
	// This is for the benefit of testing, so that it's possible to test
	// all versions that are supported by the host.
	isHardwareAccelerated = false
	hardwareAccelImpl = referenceImpl
}

// IsHardwareAccelerated returns true iff the Kyber implementation will use
// hardware acceleration (eg: AVX2).
func IsHardwareAccelerated() bool {
	return isHardwareAccelerated
}

func init() {
	initHardwareAcceleration()
}
