// params.go - Kyber parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	polySize = 384
)

var (
	// Kyber512 is the Kyber-512 parameter set, which aims to provide security
	// equivalent to AES-128.
	Kyber512 = newParameterSet("Kyber-512", 2, 3, 2, 10, 4, false)

	// Kyber768 is the Kyber-768 parameter set, which aims to provide security
	// equivalent to AES-192. This is the recommended default.
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 2, 10, 4, false)

	// Kyber1024 is the Kyber-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	Kyber1024 = newParameterSet("Kyber-1024", 4, 2, 2, 11, 5, false)

	// Kyber512_90s is Kyber512 with the 90s symmetric profile (SHA-2 and
	// AES-256-CTR in place of SHA-3 and SHAKE).
	Kyber512_90s = newParameterSet("Kyber-512-90s", 2, 3, 2, 10, 4, true)

	// Kyber768_90s is Kyber768 with the 90s symmetric profile.
	Kyber768_90s = newParameterSet("Kyber-768-90s", 3, 2, 2, 10, 4, true)

	// Kyber1024_90s is Kyber1024 with the 90s symmetric profile.
	Kyber1024_90s = newParameterSet("Kyber-1024-90s", 4, 2, 2, 11, 5, true)
)

// ParameterSet is a Kyber parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int // polyvec compression bits
	dv   int // poly compression bits

	is90s bool

	polyVecSize           int
	polyCompressedSize    int
	polyVecCompressedSize int

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// Is90s returns true iff the parameter set uses the 90s symmetric profile
// (SHA-2/AES-256-CTR instead of SHA-3/SHAKE).
func (p *ParameterSet) Is90s() bool {
	return p.is90s
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int, is90s bool) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv
	p.is90s = is90s

	p.polyVecSize = k * polySize
	p.polyCompressedSize = kyberN * dv / 8
	p.polyVecCompressedSize = k * kyberN * du / 8

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.polyVecCompressedSize + p.polyCompressedSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // H(pk) and z
	p.cipherTextSize = p.indcpaSize

	return &p
}

func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, 0, p.k)
	for i := 0; i < p.k; i++ {
		m = append(m, p.allocPolyVec())
	}
	return m
}

func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, 0, p.k)
	for i := 0; i < p.k; i++ {
		vec = append(vec, new(poly))
	}

	return polyVec{vec}
}
