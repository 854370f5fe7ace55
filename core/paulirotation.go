package core

// ImplementPauliZRotationFromPauliProduct synthesises a pi/4 Z-rotation
// directly from a given Pauli product: CNOT fan-in from every other set bit
// of p.z into the pivot, a T on the pivot, an S;Z correction if p.sign, then
// the reverse CNOT fan-in. Does not mutate any tableau.
func ImplementPauliZRotationFromPauliProduct(n int, p *PauliProduct) *QuantumCircuit {
	out := NewQuantumCircuit(uint32(n))
	if p.Z.Popcount() == 0 {
		return out
	}
	pivot := p.Z.GetFirstOne()
	var others []int
	for c := 0; c < n; c++ {
		if c != pivot && p.Z.Get(c) {
			others = append(others, c)
		}
	}
	for _, c := range others {
		out.AddCNOT(uint16(c), uint16(pivot))
	}
	out.AddT(uint16(pivot))
	if p.Sign {
		out.AddS(uint16(pivot))
		out.AddZ(uint16(pivot))
	}
	for i := len(others) - 1; i >= 0; i-- {
		out.AddCNOT(uint16(others[i]), uint16(pivot))
	}
	return out
}

// ImplementPauliZRotation is ImplementPauliZRotationFromPauliProduct but the
// Z-mask and sign are read live from the tableau's column col. Does not
// mutate tab.
func ImplementPauliZRotation(tab *RowMajorTableau, col int) *QuantumCircuit {
	n := tab.N()
	p := NewPauliProduct(n)
	for i := 0; i < n; i++ {
		if tab.zRows[i].Get(col) {
			p.Z.XorBit(i)
		}
	}
	p.Sign = tab.Signs.Get(col)
	return ImplementPauliZRotationFromPauliProduct(n, &p)
}

// ImplementPauliRotation synthesises a general (not necessarily Z-basis)
// pi/4 Pauli rotation at column col, mutating tab: finds the pivot row with
// an X at col, fans in the other X rows via CNOT, rotates the pivot into
// the Z basis with S;H if needed, then concatenates the resulting Z-rotation.
func ImplementPauliRotation(tab *RowMajorTableau, col int) *QuantumCircuit {
	n := tab.N()
	out := NewQuantumCircuit(uint32(n))

	pivot := -1
	for i := 0; i < n; i++ {
		if tab.xRows[i].Get(col) {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		out.Append(ImplementPauliZRotation(tab, col))
		return out
	}

	for j := 0; j < n; j++ {
		if j != pivot && tab.xRows[j].Get(col) {
			tab.AppendCX(pivot, j)
			out.AddCNOT(uint16(pivot), uint16(j))
		}
	}
	if tab.zRows[pivot].Get(col) {
		tab.AppendS(pivot)
		out.AddS(uint16(pivot))
	}
	tab.AppendH(pivot)
	out.AddH(uint16(pivot))

	out.Append(ImplementPauliZRotation(tab, col))
	return out
}

// ImplementTof synthesises a Toffoli/CCZ as a 7-T Clifford+T circuit, using
// tab as ambient synthesis state over columns c1, c2 and (t+n if hGate else
// t) (the extra +n routes through the destabiliser column, giving the X
// basis change a genuine Toffoli needs; CCZ, already diagonal, uses t
// directly). The returned circuit does not undo the basis changes it emits;
// they stay recorded in tab.
func ImplementTof(tab *RowMajorTableau, c1, c2, t int, hGate bool) *QuantumCircuit {
	n := tab.N()
	out := NewQuantumCircuit(uint32(n))

	thirdCol := t
	if hGate {
		thirdCol = t + n
	}
	cols := [3]int{c1, c2, thirdCol}

	for _, c := range cols {
		out.Append(ImplementPauliRotation(tab, c))
	}

	var ps [3]PauliProduct
	for i, c := range cols {
		ps[i] = tab.ExtractColumn(c)
	}

	pairs := [4][2]int{{0, 1}, {0, 2}, {0, 1}, {1, 2}}
	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		ps[a].Z.XorWith(&ps[b].Z)
		ps[a].Sign = !(ps[a].Sign != ps[b].Sign)
		out.Append(ImplementPauliZRotationFromPauliProduct(n, &ps[a]))
	}
	return out
}
