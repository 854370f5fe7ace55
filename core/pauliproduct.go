package core

// PauliProduct is the canonical (z, x, sign) encoding of a tensor product of
// single-qubit Paulis: (-1)^sign * i^popcount(z&x) * product_k Z_k^{z_k} X_k^{x_k}.
// Z and X are interpreted up to the owning tableau's qubit count; bits beyond
// that are not meaningful.
type PauliProduct struct {
	Z    BitVector
	X    BitVector
	Sign bool
}

// NewPauliProduct builds the identity Pauli product (all-zero masks) over n
// qubits.
func NewPauliProduct(n int) PauliProduct {
	return PauliProduct{Z: NewBitVector(n), X: NewBitVector(n)}
}

// Mult updates p in place to p*other: masks XOR, sign gains the symplectic
// carry term derived from the product of the two Pauli strings.
func (p *PauliProduct) Mult(other *PauliProduct) {
	ac := p.Z.Clone()
	ac.AndWith(&other.X)
	t := p.X.Clone()
	t.AndWith(&other.Z)
	ac.XorWith(&t)

	zPrime := p.Z.Clone()
	zPrime.XorWith(&other.Z)
	xPrime := p.X.Clone()
	xPrime.XorWith(&other.X)

	x1z2 := zPrime.Clone()
	x1z2.XorWith(&xPrime)
	x1z2.XorWith(&other.Z)
	x1z2.AndWith(&ac)

	carry := (ac.Popcount()+2*x1z2.Popcount())%4 > 1

	p.Z = zPrime
	p.X = xPrime
	p.Sign = p.Sign != other.Sign != carry
}

// IsCommuting reports whether p and other commute: the symplectic inner
// product popcount((z_p&x_q) ^ (x_p&z_q)) is even.
func (p *PauliProduct) IsCommuting(other *PauliProduct) bool {
	a := p.Z.Clone()
	a.AndWith(&other.X)
	b := p.X.Clone()
	b.AndWith(&other.Z)
	a.XorWith(&b)
	return a.Popcount()%2 == 0
}
