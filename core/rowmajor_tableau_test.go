package core

import "testing"

func TestRowMajorTableauIdentityRoundTripsToEmptyCircuit(t *testing.T) {
	tab := NewRowMajorTableau(3)
	circ := tab.ToCircuit(false)
	if len(circ.Gates) != 0 {
		t.Fatalf("identity tableau must synthesise an empty circuit, got %d gates", len(circ.Gates))
	}
}

func TestRowMajorTableauBellPreparation(t *testing.T) {
	qc := NewQuantumCircuit(2)
	qc.AddH(0)
	qc.AddCNOT(0, 1)
	tab, err := TableauFromCircuit(qc)
	if err != nil {
		t.Fatalf("TableauFromCircuit: %v", err)
	}

	stab0 := tab.ExtractColumn(0)
	if stab0.X.Popcount() != 2 || !stab0.X.Get(0) || !stab0.X.Get(1) || stab0.Z.Popcount() != 0 {
		t.Fatalf("stabiliser 0 should be X0 X1, got z=%s x=%s", stab0.Z.String(), stab0.X.String())
	}

	stab1 := tab.ExtractColumn(1)
	if stab1.Z.Popcount() != 2 || !stab1.Z.Get(0) || !stab1.Z.Get(1) || stab1.X.Popcount() != 0 {
		t.Fatalf("stabiliser 1 should be Z0 Z1, got z=%s x=%s", stab1.Z.String(), stab1.X.String())
	}
}

func TestRowMajorTableauFromCircuitRejectsNonClifford(t *testing.T) {
	qc := NewQuantumCircuit(1)
	qc.AddT(0)
	if _, err := TableauFromCircuit(qc); err == nil {
		t.Fatalf("expected a domain error for a T gate")
	}
}

func TestRowMajorTableauFromCircuitRejectsNegatedControl(t *testing.T) {
	qc := NewQuantumCircuit(2)
	qc.Gates = append(qc.Gates, packGate(GateCNOT, 0, true, 1, false, 0, false, 0))
	if _, err := TableauFromCircuit(qc); err == nil {
		t.Fatalf("expected a domain error for a negated control")
	}
}

func TestRowMajorTableauAppendPrependRoundTrip(t *testing.T) {
	r, err := NewRand([]byte("tableau-roundtrip"))
	if err != nil {
		t.Fatalf("NewRand: %v", err)
	}
	for trial := 0; trial < 10; trial++ {
		n := 4
		circ := r.RandomCliffordCircuit(n, 25)
		tab, err := TableauFromCircuit(circ)
		if err != nil {
			t.Fatalf("TableauFromCircuit: %v", err)
		}
		synth := tab.ToCircuit(false)
		resynth, err := TableauFromCircuit(synth)
		if err != nil {
			t.Fatalf("TableauFromCircuit(synth): %v", err)
		}
		if !tab.Equal(resynth) {
			t.Fatalf("trial %d: tableau did not round-trip through ToCircuit/FromCircuit", trial)
		}
	}
}

func TestRowMajorTableauExtractInsertColumnRoundTrip(t *testing.T) {
	tab := NewRowMajorTableau(3)
	tab.AppendH(0)
	tab.AppendCX(0, 1)
	p := tab.ExtractColumn(2)
	p.Sign = !p.Sign
	tab.InsertColumn(2, &p)
	got := tab.ExtractColumn(2)
	if got.Sign != p.Sign || got.Z.String() != p.Z.String() || got.X.String() != p.X.String() {
		t.Fatalf("InsertColumn/ExtractColumn did not round-trip")
	}
}
