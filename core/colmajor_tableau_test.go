package core

import "testing"

func TestColumnMajorTableauIdentityStabilizers(t *testing.T) {
	tab := NewColumnMajorTableau(3)
	for i := 0; i < 3; i++ {
		s := tab.Stabilizer(i)
		if s.Sign || s.X.Popcount() != 0 || !s.Z.Get(i) || s.Z.Popcount() != 1 {
			t.Fatalf("stabiliser %d should be Z_%d, got z=%s x=%s", i, i, s.Z.String(), s.X.String())
		}
	}
}

func TestColumnMajorTableauPrependHSwapsZAndX(t *testing.T) {
	tab := NewColumnMajorTableau(2)
	tab.PrependH(0)
	s0 := tab.Stabilizer(0)
	if s0.Z.Popcount() != 0 || !s0.X.Get(0) {
		t.Fatalf("PrependH(0) on Z_0 must yield X_0, got z=%s x=%s", s0.Z.String(), s0.X.String())
	}
	s1 := tab.Stabilizer(1)
	if !s1.Z.Get(1) || s1.X.Popcount() != 0 {
		t.Fatalf("stabiliser 1 must be untouched by PrependH(0), got z=%s x=%s", s1.Z.String(), s1.X.String())
	}
}

func TestColumnMajorTableauPrependSLeavesZInvariant(t *testing.T) {
	tab := NewColumnMajorTableau(1)
	tab.PrependS(0)
	s := tab.Stabilizer(0)
	if s.Sign || !s.Z.Get(0) || s.X.Popcount() != 0 {
		t.Fatalf("PrependS on Z_0 must leave it invariant, got z=%s x=%s sign=%v", s.Z.String(), s.X.String(), s.Sign)
	}
}

func TestColumnMajorTableauPrependCXPropagatesTargetToControl(t *testing.T) {
	tab := NewColumnMajorTableau(2)
	tab.PrependCX(0, 1)
	s0 := tab.Stabilizer(0)
	if !s0.Z.Get(0) || s0.Z.Popcount() != 1 {
		t.Fatalf("stabiliser 0 (Z_0) must be untouched by CNOT(0,1), got z=%s", s0.Z.String())
	}
	s1 := tab.Stabilizer(1)
	if !s1.Z.Get(0) || !s1.Z.Get(1) || s1.X.Popcount() != 0 {
		t.Fatalf("stabiliser 1 (Z_1) must become Z_0 Z_1 under CNOT(0,1), got z=%s", s1.Z.String())
	}
}

func TestColumnMajorTableauToRowMajorPreservesStabilizers(t *testing.T) {
	tab := NewColumnMajorTableau(2)
	tab.PrependH(0)
	tab.PrependCX(0, 1)
	row := tab.ToRowMajor()
	for i := 0; i < 2; i++ {
		colS := tab.Stabilizer(i)
		rowS := row.ExtractColumn(i)
		if colS.Z.String() != rowS.Z.String() || colS.X.String() != rowS.X.String() || colS.Sign != rowS.Sign {
			t.Fatalf("stabiliser %d mismatch after ToRowMajor", i)
		}
	}
}
