// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// loadLittleEndian loads up to 8 bytes into a 64-bit integer, little-endian.
func loadLittleEndian(x []byte, bytes int) uint64 {
	var r uint64
	for i, v := range x[:bytes] {
		r |= uint64(v) << (8 * uint(i))
	}
	return r
}

// cbd computes a polynomial with coefficients distributed according to a
// centered binomial distribution with parameter eta (2 or 3), given
// eta*kyberN/4 bytes of uniformly random input.
func (p *poly) cbd(buf []byte, eta int) {
	hardwareAccelImpl.cbdFn(p, buf, eta)
}

func cbdRef(p *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		var a, b [8]int16
		for i := 0; i < kyberN/8; i++ {
			t := uint32(loadLittleEndian(buf[4*i:], 4))
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555

			for j := 0; j < 8; j++ {
				a[j] = int16((d >> uint(4*j)) & 0x3)
				b[j] = int16((d >> uint(4*j+2)) & 0x3)
				p.coeffs[8*i+j] = a[j] - b[j]
			}
		}
	case 3:
		var a, b [4]int16
		for i := 0; i < kyberN/4; i++ {
			t := uint32(loadLittleEndian(buf[3*i:], 3))
			var d uint32
			for j := 0; j < 3; j++ {
				d += (t >> uint(j)) & 0x249249
			}

			a[0] = int16(d & 0x7)
			b[0] = int16((d >> 3) & 0x7)
			a[1] = int16((d >> 6) & 0x7)
			b[1] = int16((d >> 9) & 0x7)
			a[2] = int16((d >> 12) & 0x7)
			b[2] = int16((d >> 15) & 0x7)
			a[3] = int16((d >> 18) & 0x7)
			b[3] = int16(d >> 21)

			p.coeffs[4*i+0] = a[0] - b[0]
			p.coeffs[4*i+1] = a[1] - b[1]
			p.coeffs[4*i+2] = a[2] - b[2]
			p.coeffs[4*i+3] = a[3] - b[3]
		}
	default:
		panic("kyber: eta must be 2 or 3")
	}
}
