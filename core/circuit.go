package core

import "strings"

// QuantumCircuit is an ordered sequence of packed Gates over n logical
// qubits, plus a qubit mapping used to register circuits into a shared
// global index space when concatenated.
type QuantumCircuit struct {
	NQubits      uint32
	Gates        []Gate
	QubitMapping []uint32
}

// NewQuantumCircuit allocates an empty circuit over n qubits, with an
// identity qubit mapping.
func NewQuantumCircuit(n uint32) *QuantumCircuit {
	mapping := make([]uint32, n)
	for i := range mapping {
		mapping[i] = uint32(i)
	}
	return &QuantumCircuit{NQubits: n, QubitMapping: mapping}
}

// RequestQubit allocates one fresh logical qubit and returns its id.
func (qc *QuantumCircuit) RequestQubit() uint32 {
	id := qc.NQubits
	qc.NQubits++
	qc.QubitMapping = append(qc.QubitMapping, id)
	return id
}

// RequestQubits allocates count fresh logical qubits.
func (qc *QuantumCircuit) RequestQubits(count int) {
	for i := 0; i < count; i++ {
		qc.RequestQubit()
	}
}

func (qc *QuantumCircuit) AddX(q uint16)   { qc.Gates = append(qc.Gates, packGate(GateX, q, false, 0, false, 0, false, 0)) }
func (qc *QuantumCircuit) AddZ(q uint16)   { qc.Gates = append(qc.Gates, packGate(GateZ, q, false, 0, false, 0, false, 0)) }
func (qc *QuantumCircuit) AddH(q uint16)   { qc.Gates = append(qc.Gates, packGate(GateH, q, false, 0, false, 0, false, 0)) }
func (qc *QuantumCircuit) AddS(q uint16)   { qc.Gates = append(qc.Gates, packGate(GateS, q, false, 0, false, 0, false, 0)) }
func (qc *QuantumCircuit) AddSdg(q uint16) { qc.Gates = append(qc.Gates, packGate(GateSdg, q, false, 0, false, 0, false, 0)) }
func (qc *QuantumCircuit) AddT(q uint16)   { qc.Gates = append(qc.Gates, packGate(GateT, q, false, 0, false, 0, false, 0)) }
func (qc *QuantumCircuit) AddTdg(q uint16) { qc.Gates = append(qc.Gates, packGate(GateTdg, q, false, 0, false, 0, false, 0)) }

// AddCNOT appends a CNOT gate. Per the resolved convention (DESIGN.md), the
// packed Gate stores target in slot 1 and control in slot 2, while this
// builder's parameter order mirrors RowMajorTableau.AppendCX(control,
// target) so call sites read identically whichever form they use.
func (qc *QuantumCircuit) AddCNOT(control, target uint16) {
	qc.Gates = append(qc.Gates, packGate(GateCNOT, target, false, control, false, 0, false, 0))
}

func (qc *QuantumCircuit) AddCZ(a, b uint16) {
	qc.Gates = append(qc.Gates, packGate(GateCZ, a, false, b, false, 0, false, 0))
}

func (qc *QuantumCircuit) AddSwap(a, b uint16) {
	qc.Gates = append(qc.Gates, packGate(GateSwap, a, false, b, false, 0, false, 0))
}

// AddToffoli appends a genuine Toffoli (CCX): target in the X basis.
func (qc *QuantumCircuit) AddToffoli(target, ctrl1, ctrl2 uint16) {
	qc.Gates = append(qc.Gates, packGate(GateToffoli, target, false, ctrl1, false, ctrl2, false, 1))
}

// AddCCZ appends a CCZ: already diagonal, no H basis change at synthesis.
func (qc *QuantumCircuit) AddCCZ(a, b, c uint16) {
	qc.Gates = append(qc.Gates, packGate(GateToffoli, a, false, b, false, c, false, 0))
}

// Concat returns the union of qc and other's qubit spaces (registering
// shared global indices), with both operands' gates remapped into it.
func (qc *QuantumCircuit) Concat(other *QuantumCircuit) *QuantumCircuit {
	globalToCombined := map[uint32]uint32{}
	var combinedGlobal []uint32

	register := func(mapping []uint32) {
		for _, g := range mapping {
			if _, ok := globalToCombined[g]; !ok {
				globalToCombined[g] = uint32(len(combinedGlobal))
				combinedGlobal = append(combinedGlobal, g)
			}
		}
	}
	register(qc.QubitMapping)
	register(other.QubitMapping)

	combined := &QuantumCircuit{NQubits: uint32(len(combinedGlobal))}
	combined.QubitMapping = append([]uint32(nil), combinedGlobal...)

	remapAndAppend := func(c *QuantumCircuit) {
		localToCombined := make([]uint32, c.NQubits)
		for i := uint32(0); i < c.NQubits; i++ {
			localToCombined[i] = globalToCombined[c.QubitMapping[i]]
		}
		for _, g := range c.Gates {
			combined.Gates = append(combined.Gates, mapQubits(g, localToCombined))
		}
	}
	remapAndAppend(qc)
	remapAndAppend(other)
	return combined
}

// Append splices other's gates onto qc in place, growing qc's qubit space
// with an identity mapping for any qubits other needs beyond qc's current
// count.
func (qc *QuantumCircuit) Append(other *QuantumCircuit) {
	if other.NQubits > qc.NQubits {
		for q := qc.NQubits; q < other.NQubits; q++ {
			qc.QubitMapping = append(qc.QubitMapping, q)
		}
		qc.NQubits = other.NQubits
	}
	qc.Gates = append(qc.Gates, other.Gates...)
}

// NumT returns the number of T and T-dagger gates.
func (qc *QuantumCircuit) NumT() int {
	n := 0
	for _, g := range qc.Gates {
		if g.IsT() {
			n++
		}
	}
	return n
}

// NumH returns the number of H gates.
func (qc *QuantumCircuit) NumH() int {
	n := 0
	for _, g := range qc.Gates {
		if g.Type() == GateH {
			n++
		}
	}
	return n
}

// Num2Q returns the number of CNOT and CZ gates.
func (qc *QuantumCircuit) Num2Q() int {
	n := 0
	for _, g := range qc.Gates {
		if g.Type() == GateCNOT || g.Type() == GateCZ {
			n++
		}
	}
	return n
}

// FirstT returns the index of the first T/T-dagger gate, or len(Gates) if
// there is none.
func (qc *QuantumCircuit) FirstT() int {
	for i, g := range qc.Gates {
		if g.IsT() {
			return i
		}
	}
	return len(qc.Gates)
}

// LastT returns one past the index of the last T/T-dagger gate, or 0 if
// there is none.
func (qc *QuantumCircuit) LastT() int {
	if qc.NumT() == 0 {
		return 0
	}
	for i := len(qc.Gates); i > 0; i-- {
		if qc.Gates[i-1].IsT() {
			return i
		}
	}
	return 0
}

// NumInternalH counts H gates strictly between FirstT (inclusive) and
// LastT (exclusive).
func (qc *QuantumCircuit) NumInternalH() int {
	first, last := qc.FirstT(), qc.LastT()
	n := 0
	for i := first; i < last; i++ {
		if qc.Gates[i].Type() == GateH {
			n++
		}
	}
	return n
}

func (qc *QuantumCircuit) tDepthOf(qubit uint32) int {
	n := 0
	for _, g := range qc.Gates {
		if g.IsT() && uint32(g.Qubit1()) == qubit {
			n++
		}
	}
	return n
}

// TDepth returns the max, over qubits, of the number of T/T-dagger gates
// acting on that qubit.
func (qc *QuantumCircuit) TDepth() int {
	if qc.NumT() == 0 {
		return 0
	}
	max := 0
	for q := uint32(0); q < qc.NQubits; q++ {
		if d := qc.tDepthOf(q); d > max {
			max = d
		}
	}
	return max
}

// Inverse returns the circuit dagger: gates in reverse order, with T/T-dagger
// and S/S-dagger swapped; the rest of the gate set is self-inverse.
func (qc *QuantumCircuit) Inverse() *QuantumCircuit {
	out := NewQuantumCircuit(qc.NQubits)
	copy(out.QubitMapping, qc.QubitMapping)
	out.Gates = make([]Gate, 0, len(qc.Gates))
	for i := len(qc.Gates) - 1; i >= 0; i-- {
		g := qc.Gates[i]
		switch g.Type() {
		case GateT:
			out.Gates = append(out.Gates, packGate(GateTdg, g.Qubit1(), g.Neg1(), g.Qubit2(), g.Neg2(), g.Qubit3(), g.Neg3(), g.Flag()))
		case GateTdg:
			out.Gates = append(out.Gates, packGate(GateT, g.Qubit1(), g.Neg1(), g.Qubit2(), g.Neg2(), g.Qubit3(), g.Neg3(), g.Flag()))
		case GateS:
			out.Gates = append(out.Gates, packGate(GateSdg, g.Qubit1(), g.Neg1(), g.Qubit2(), g.Neg2(), g.Qubit3(), g.Neg3(), g.Flag()))
		case GateSdg:
			out.Gates = append(out.Gates, packGate(GateS, g.Qubit1(), g.Neg1(), g.Qubit2(), g.Neg2(), g.Qubit3(), g.Neg3(), g.Flag()))
		default:
			out.Gates = append(out.Gates, g)
		}
	}
	return out
}

// String renders one line per gate, for debugging/CLI dump use.
func (qc *QuantumCircuit) String() string {
	var b strings.Builder
	for i, g := range qc.Gates {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.String())
	}
	return b.String()
}
