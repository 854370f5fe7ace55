package core

// Optimize is the optimizer's sole external entry point: it first expands
// any three-qubit or CZ/SWAP gates the driver cannot ingest directly, then
// rewrites internal Hadamards into ancilla gadgets, then runs the
// T-optimiser driver (TOHPE-backed phase-polynomial reduction alternating
// with Clifford tableau re-synthesis).
func Optimize(circ *QuantumCircuit) (*QuantumCircuit, error) {
	normalized, err := normalizeForDriver(circ)
	if err != nil {
		return nil, err
	}
	gadgetized := GadgetizeInternalHadamards(normalized)
	return runTOptimizerDriver(gadgetized)
}

// normalizeForDriver expands Toffoli/CCZ (via the 7-T phase-polynomial
// gadget), SWAP (three CNOTs) and CZ (H;CNOT;H) into the elementary gate
// set {X, Z, H, S, Sdg, CNOT, T, Tdg} the driver's main loop accepts.
func normalizeForDriver(circ *QuantumCircuit) (*QuantumCircuit, error) {
	const op = "normalizeForDriver"
	out := NewQuantumCircuit(circ.NQubits)
	for _, g := range circ.Gates {
		switch g.Type() {
		case GateSwap:
			a, b := g.Target(), g.Control()
			out.AddCNOT(b, a)
			out.AddCNOT(a, b)
			out.AddCNOT(b, a)
		case GateCZ:
			a, b := g.Target(), g.Control()
			out.AddH(b)
			out.AddCNOT(a, b)
			out.AddH(b)
		case GateToffoli:
			tab := NewRowMajorTableau(int(circ.NQubits))
			sub := ImplementTof(tab, int(g.Ctrl1()), int(g.Ctrl2()), int(g.Target()), g.IsHGate())
			out.Append(sub)
			// sub opens with H on the target; the closing H is left in tab.
			if g.IsHGate() {
				out.AddH(g.Target())
			}
		case GateX, GateZ, GateH, GateCNOT, GateT, GateTdg, GateS, GateSdg:
			out.Gates = append(out.Gates, g)
		default:
			return nil, domainf(op, "gate %s cannot be normalized for the optimizer driver", g.Type())
		}
	}
	return out, nil
}

// runTOptimizerDriver implements spec.md §4.10: copy pre-first-T gates
// verbatim, then slice the remainder at H-boundaries into alternating
// (phase-polynomial, Clifford tableau) segments, feeding each
// phase-polynomial through Tohpe before re-synthesis.
func runTOptimizerDriver(circ *QuantumCircuit) (*QuantumCircuit, error) {
	const op = "Optimize"
	n := int(circ.NQubits)
	out := NewQuantumCircuit(circ.NQubits)

	tab := NewColumnMajorTableau(n)
	poly := NewPhasePolynomial(n)
	emitted := false

	flushPoly := func() error {
		if poly.Len() == 0 {
			return nil
		}
		ref := poly.Rows()
		rowsMut := poly.RowsMut()
		if err := Tohpe(ref, rowsMut, n); err != nil {
			return err
		}
		out.Append(poly.CliffordCorrection(ref, n).ToCircuit(false))
		out.Append(poly.ToCircuit())
		poly.Reset()
		emitted = true
		return nil
	}
	flushTableau := func() {
		out.Append(tab.ToRowMajor().ToCircuit(true))
		tab = NewColumnMajorTableau(n)
	}

	firstT := circ.FirstT()
	out.Gates = append(out.Gates, circ.Gates[:firstT]...)

	for i := firstT; i < len(circ.Gates); i++ {
		g := circ.Gates[i]
		q := int(g.Target())
		switch g.Type() {
		case GateH:
			if err := flushPoly(); err != nil {
				return nil, err
			}
			flushTableau()
			tab.PrependH(q)
		case GateX:
			tab.PrependX(q)
		case GateZ:
			tab.PrependZ(q)
		case GateCNOT:
			tab.PrependCX(int(g.Control()), q)
		case GateS:
			tab.PrependS(q)
			tab.PrependZ(q)
		case GateT, GateTdg:
			if poly.Len() == 0 && emitted {
				flushTableau()
			}
			stab := tab.Stabilizer(q)
			poly.AddRow(stab.Z)
			if stab.Sign {
				tab.PrependS(q)
				tab.PrependZ(q)
			}
		default:
			return nil, domainf(op, "gate %s cannot appear after the first T in driver input", g.Type())
		}
	}

	if err := flushPoly(); err != nil {
		return nil, err
	}
	flushTableau()
	return out, nil
}
