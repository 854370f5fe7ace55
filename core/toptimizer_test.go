package core

import "testing"

func TestOptimizePureCliffordCircuitPassesThroughUnchanged(t *testing.T) {
	qc := NewQuantumCircuit(2)
	qc.AddH(0)
	qc.AddCNOT(0, 1)
	qc.AddS(1)
	qc.AddX(0)

	out, err := Optimize(qc)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if len(out.Gates) != len(qc.Gates) {
		t.Fatalf("a Clifford-only circuit must pass through unchanged, got %d gates, want %d", len(out.Gates), len(qc.Gates))
	}
	for i, g := range qc.Gates {
		if out.Gates[i].Type() != g.Type() || out.Gates[i].Target() != g.Target() {
			t.Fatalf("gate %d changed: got %v, want %v", i, out.Gates[i], g)
		}
	}
}

func TestOptimizeRandomCircuitsDoNotError(t *testing.T) {
	r, err := NewRand([]byte("toptimizer-fuzz"))
	if err != nil {
		t.Fatalf("NewRand: %v", err)
	}
	for trial := 0; trial < 5; trial++ {
		n := 3
		circ := r.RandomCliffordTCircuit(n, 20)
		out, err := Optimize(circ)
		if err != nil {
			t.Fatalf("trial %d: Optimize: %v", trial, err)
		}
		if out.NQubits < circ.NQubits {
			t.Fatalf("trial %d: optimizer must never shrink the qubit count, got %d < %d", trial, out.NQubits, circ.NQubits)
		}
	}
}

func TestOptimizeExpandsToffoliIntoSevenTGates(t *testing.T) {
	qc := NewQuantumCircuit(3)
	qc.AddToffoli(2, 0, 1)
	out, err := Optimize(qc)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if out.NumT() != 7 {
		t.Fatalf("NumT() = %d, want 7 for a single Toffoli", out.NumT())
	}
}

func TestOptimizeRejectsUnrecognizedGateType(t *testing.T) {
	qc := NewQuantumCircuit(1)
	qc.Gates = append(qc.Gates, RawGate(0))
	if _, err := Optimize(qc); err == nil {
		t.Fatalf("expected a domain error for an unrecognized gate type")
	}
}
