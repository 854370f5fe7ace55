package core

// GadgetizeInternalHadamards rewrites every H gate strictly between the
// circuit's first and last T gate into an ancilla-based gadget, exposing a
// Hadamard-free diagonal {CX, T} sub-circuit to the phase-polynomial
// optimiser. H gates before the first T, or at/after the last T, pass
// through unchanged.
func GadgetizeInternalHadamards(circ *QuantumCircuit) *QuantumCircuit {
	firstT := circ.FirstT()
	lastT := circ.LastT()

	init := NewQuantumCircuit(circ.NQubits)
	body := NewQuantumCircuit(circ.NQubits)

	for i, g := range circ.Gates {
		if g.Type() == GateH && i > firstT && i < lastT {
			target := g.Target()
			anc := uint16(init.RequestQubit())
			if int(anc) >= int(body.NQubits) {
				body.RequestQubits(int(anc) - int(body.NQubits) + 1)
			}
			init.AddH(anc)
			body.AddS(anc)
			body.AddS(target)
			body.AddCNOT(target, anc)
			body.AddS(target)
			body.AddZ(target)
			body.AddCNOT(anc, target)
			body.AddCNOT(target, anc)
			continue
		}
		body.Gates = append(body.Gates, g)
	}

	out := init
	out.Append(body)
	return out
}
