package core

import "testing"

func TestPauliProductSelfMultiplyIsIdentityMasks(t *testing.T) {
	r, err := NewRand([]byte("pauli-self-mult"))
	if err != nil {
		t.Fatalf("NewRand: %v", err)
	}
	for trial := 0; trial < 20; trial++ {
		n := 6
		p := PauliProduct{Z: r.BitVector(n), X: r.BitVector(n), Sign: r.Bool()}
		q := p
		q.Z = p.Z.Clone()
		q.X = p.X.Clone()
		p.Mult(&q)
		if p.Z.Popcount() != 0 || p.X.Popcount() != 0 {
			t.Fatalf("p*p must have zero masks, got z=%s x=%s", p.Z.String(), p.X.String())
		}
	}
}

func TestPauliProductCommutationMatchesSymplecticParity(t *testing.T) {
	r, err := NewRand([]byte("pauli-commute"))
	if err != nil {
		t.Fatalf("NewRand: %v", err)
	}
	for trial := 0; trial < 30; trial++ {
		n := 5
		p := PauliProduct{Z: r.BitVector(n), X: r.BitVector(n)}
		q := PauliProduct{Z: r.BitVector(n), X: r.BitVector(n)}

		a := p.Z.Clone()
		a.AndWith(&q.X)
		b := p.X.Clone()
		b.AndWith(&q.Z)
		a.XorWith(&b)
		want := a.Popcount()%2 == 0

		if got := p.IsCommuting(&q); got != want {
			t.Fatalf("IsCommuting = %v, want %v", got, want)
		}
	}
}

func TestPauliProductSingleQubitXZAnticommute(t *testing.T) {
	x := PauliProduct{Z: NewBitVector(1), X: NewBitVector(1)}
	x.X.XorBit(0)
	z := PauliProduct{Z: NewBitVector(1), X: NewBitVector(1)}
	z.Z.XorBit(0)
	if x.IsCommuting(&z) {
		t.Fatalf("X and Z on the same qubit must anticommute")
	}
}
