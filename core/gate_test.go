package core

import "testing"

func TestGatePackUnpackRoundTrip(t *testing.T) {
	g := packGate(GateCNOT, 12345, true, 9876, false, 0, false, 7)
	if g.Type() != GateCNOT {
		t.Fatalf("Type() = %v, want GateCNOT", g.Type())
	}
	if g.Qubit1() != 12345 || !g.Neg1() {
		t.Fatalf("qubit1/neg1 mismatch: got q=%d neg=%v", g.Qubit1(), g.Neg1())
	}
	if g.Qubit2() != 9876 || g.Neg2() {
		t.Fatalf("qubit2/neg2 mismatch: got q=%d neg=%v", g.Qubit2(), g.Neg2())
	}
	if g.Flag() != 7 {
		t.Fatalf("Flag() = %d, want 7", g.Flag())
	}
}

func TestGateRawRoundTrip(t *testing.T) {
	g := packGate(GateToffoli, 1, false, 2, false, 3, false, 1)
	g2 := RawGate(g.Raw())
	if g2 != g {
		t.Fatalf("RawGate(g.Raw()) != g")
	}
}

func TestGateTargetControlAliases(t *testing.T) {
	g := packGate(GateCNOT, 3, false, 5, false, 0, false, 0)
	if g.Target() != 3 || g.Control() != 5 {
		t.Fatalf("Target/Control = %d/%d, want 3/5", g.Target(), g.Control())
	}
}

func TestGateIsTAndIsClifford(t *testing.T) {
	tGate := packGate(GateT, 0, false, 0, false, 0, false, 0)
	if !tGate.IsT() || tGate.IsClifford() {
		t.Fatalf("T gate must be IsT and not IsClifford")
	}
	h := packGate(GateH, 0, false, 0, false, 0, false, 0)
	if h.IsT() || !h.IsClifford() {
		t.Fatalf("H gate must be IsClifford and not IsT")
	}
}

func TestGateToffoliHGateFlagDistinguishesCCZ(t *testing.T) {
	tof := packGate(GateToffoli, 2, false, 0, false, 1, false, 1)
	ccz := packGate(GateToffoli, 2, false, 0, false, 1, false, 0)
	if !tof.IsHGate() {
		t.Fatalf("Toffoli must carry IsHGate=true")
	}
	if ccz.IsHGate() {
		t.Fatalf("CCZ must carry IsHGate=false")
	}
}

func TestMapQubitsRemaps(t *testing.T) {
	g := packGate(GateCNOT, 0, false, 1, false, 0, false, 0)
	mapped := mapQubits(g, []uint32{10, 11})
	if mapped.Qubit1() != 10 || mapped.Qubit2() != 11 {
		t.Fatalf("mapQubits did not remap: got q1=%d q2=%d", mapped.Qubit1(), mapped.Qubit2())
	}
}
