package core

import "testing"

func TestImplementPauliZRotationFromPauliProductSingleBit(t *testing.T) {
	p := PauliProduct{Z: rowFromBits(3, 1), X: NewBitVector(3)}
	circ := ImplementPauliZRotationFromPauliProduct(3, &p)
	if len(circ.Gates) != 1 || circ.Gates[0].Type() != GateT || circ.Gates[0].Target() != 1 {
		t.Fatalf("expected a lone T(1), got %v", circ.Gates)
	}
}

func TestImplementPauliZRotationFromPauliProductEmptyMaskIsNoOp(t *testing.T) {
	p := PauliProduct{Z: NewBitVector(3), X: NewBitVector(3)}
	circ := ImplementPauliZRotationFromPauliProduct(3, &p)
	if len(circ.Gates) != 0 {
		t.Fatalf("all-zero Z mask must synthesise to nothing, got %d gates", len(circ.Gates))
	}
}

func TestImplementPauliZRotationFromPauliProductSignAppendsSZCorrection(t *testing.T) {
	p := PauliProduct{Z: rowFromBits(2, 0), X: NewBitVector(2), Sign: true}
	circ := ImplementPauliZRotationFromPauliProduct(2, &p)
	if circ.NumT() != 1 {
		t.Fatalf("NumT() = %d, want 1", circ.NumT())
	}
	foundS, foundZ := false, false
	for _, g := range circ.Gates {
		if g.Type() == GateS {
			foundS = true
		}
		if g.Type() == GateZ {
			foundZ = true
		}
	}
	if !foundS || !foundZ {
		t.Fatalf("a negative sign must append an S;Z correction, got %v", circ.Gates)
	}
}

func TestImplementPauliRotationOnDestabiliserColumnInsertsBasisChange(t *testing.T) {
	tab := NewRowMajorTableau(2)
	circ := ImplementPauliRotation(tab, 2) // column n+0, the destabiliser for qubit 0
	if circ.NumT() != 1 {
		t.Fatalf("NumT() = %d, want 1", circ.NumT())
	}
	if circ.NumH() != 1 {
		t.Fatalf("NumH() = %d, want 1 (the basis change into the Z frame)", circ.NumH())
	}
}

func TestImplementPauliRotationOnStabiliserColumnIsPureZRotation(t *testing.T) {
	tab := NewRowMajorTableau(2)
	circ := ImplementPauliRotation(tab, 0)
	if circ.NumT() != 1 || circ.NumH() != 0 {
		t.Fatalf("stabiliser-column rotation should need no basis change, got T=%d H=%d", circ.NumT(), circ.NumH())
	}
}

func TestImplementTofYieldsSevenTGates(t *testing.T) {
	for _, hGate := range []bool{true, false} {
		tab := NewRowMajorTableau(3)
		circ := ImplementTof(tab, 0, 1, 2, hGate)
		if circ.NumT() != 7 {
			t.Fatalf("hGate=%v: NumT() = %d, want 7", hGate, circ.NumT())
		}
	}
}
