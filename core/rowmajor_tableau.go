package core

// RowMajorTableau is the Aaronson-Gottesman stabiliser tableau for a fixed
// n-qubit Clifford: n stabiliser rows plus n destabiliser rows, stored as
// length-2n z/x BitVector rows indexed row-then-column, plus a single
// length-2n sign vector. Column c holds the Pauli acting on generator c:
// c in [0,n) is a stabiliser, c in [n,2n) is a destabiliser.
type RowMajorTableau struct {
	n     int
	zRows []BitVector
	xRows []BitVector
	Signs BitVector
}

// NewRowMajorTableau builds the identity tableau over n qubits: row i's
// z-part has bit i set, row i's x-part has bit i+n set.
func NewRowMajorTableau(n int) *RowMajorTableau {
	t := &RowMajorTableau{
		n:     n,
		zRows: make([]BitVector, n),
		xRows: make([]BitVector, n),
		Signs: NewBitVector(2 * n),
	}
	for i := 0; i < n; i++ {
		t.zRows[i] = NewBitVector(2 * n)
		t.xRows[i] = NewBitVector(2 * n)
		t.zRows[i].XorBit(i)
		t.xRows[i].XorBit(i + n)
	}
	return t
}

// N returns the qubit count.
func (t *RowMajorTableau) N() int { return t.n }

// ZRow and XRow expose row i's z/x BitVector for marshalling.
func (t *RowMajorTableau) ZRow(i int) BitVector { return t.zRows[i] }
func (t *RowMajorTableau) XRow(i int) BitVector { return t.xRows[i] }

// RowMajorTableauFromRows builds a tableau directly from decoded z/x rows
// and a sign vector (used by core/wire to decode the wire format).
func RowMajorTableauFromRows(n int, zRows, xRows []BitVector, signs BitVector) (*RowMajorTableau, error) {
	const op = "RowMajorTableauFromRows"
	if len(zRows) != n || len(xRows) != n {
		return nil, structuralf(op, "expected %d z/x rows, got %d/%d", n, len(zRows), len(xRows))
	}
	if signs.Size() != 2*n {
		return nil, structuralf(op, "signs length %d does not match 2n=%d", signs.Size(), 2*n)
	}
	for i := range zRows {
		if zRows[i].Size() != 2*n || xRows[i].Size() != 2*n {
			return nil, structuralf(op, "row %d length mismatch with 2n=%d", i, 2*n)
		}
	}
	t := &RowMajorTableau{n: n, zRows: make([]BitVector, n), xRows: make([]BitVector, n), Signs: signs.Clone()}
	for i := range zRows {
		t.zRows[i] = zRows[i].Clone()
		t.xRows[i] = xRows[i].Clone()
	}
	return t, nil
}

func (t *RowMajorTableau) zRow(q int) *BitVector { return &t.zRows[q] }
func (t *RowMajorTableau) xRow(q int) *BitVector { return &t.xRows[q] }

// Clone returns an independent deep copy.
func (t *RowMajorTableau) Clone() *RowMajorTableau {
	out := &RowMajorTableau{n: t.n, Signs: t.Signs.Clone()}
	out.zRows = make([]BitVector, t.n)
	out.xRows = make([]BitVector, t.n)
	for i := 0; i < t.n; i++ {
		out.zRows[i] = t.zRows[i].Clone()
		out.xRows[i] = t.xRows[i].Clone()
	}
	return out
}

// --- Append: right-multiply by a Clifford generator, T -> T.U ---

func (t *RowMajorTableau) AppendX(q int) {
	t.Signs.XorWith(t.zRow(q))
}

func (t *RowMajorTableau) AppendZ(q int) {
	t.Signs.XorWith(t.xRow(q))
}

func (t *RowMajorTableau) AppendS(q int) {
	za := t.zRow(q).Clone()
	za.AndWith(t.xRow(q))
	t.Signs.XorWith(&za)
	t.zRows[q].XorWith(t.xRow(q))
}

func (t *RowMajorTableau) AppendH(q int) {
	za := t.zRow(q).Clone()
	za.AndWith(t.xRow(q))
	t.Signs.XorWith(&za)
	t.zRows[q], t.xRows[q] = t.xRows[q], t.zRows[q]
}

func (t *RowMajorTableau) AppendCX(c, target int) {
	notZc := t.zRow(c).Clone()
	notZc.Negate()
	term := notZc
	term.XorWith(t.xRow(target))
	term.AndWith(t.zRow(target))
	term.AndWith(t.xRow(c))
	t.Signs.XorWith(&term)

	t.zRows[c].XorWith(t.xRow(target))
	t.xRows[target].XorWith(t.xRow(c))
}

func (t *RowMajorTableau) AppendCZ(a, b int) {
	t.AppendS(a)
	t.AppendS(b)
	t.AppendCX(a, b)
	t.AppendS(b)
	t.AppendZ(b)
	t.AppendCX(a, b)
}

// AppendV realises the optional sqrt(X) building block: V = H.S.H.
func (t *RowMajorTableau) AppendV(q int) {
	t.AppendH(q)
	t.AppendS(q)
	t.AppendH(q)
}

// --- Pauli column extract/insert ---

// ExtractColumn reads column c as a PauliProduct.
func (t *RowMajorTableau) ExtractColumn(c int) PauliProduct {
	p := NewPauliProduct(t.n)
	for i := 0; i < t.n; i++ {
		if t.zRows[i].Get(c) {
			p.Z.XorBit(i)
		}
		if t.xRows[i].Get(c) {
			p.X.XorBit(i)
		}
	}
	p.Sign = t.Signs.Get(c)
	return p
}

// InsertColumn writes a PauliProduct back into column c, XOR-toggling any
// differing bit.
func (t *RowMajorTableau) InsertColumn(c int, p *PauliProduct) {
	for i := 0; i < t.n; i++ {
		if t.zRows[i].Get(c) != p.Z.Get(i) {
			t.zRows[i].XorBit(c)
		}
		if t.xRows[i].Get(c) != p.X.Get(i) {
			t.xRows[i].XorBit(c)
		}
	}
	if t.Signs.Get(c) != p.Sign {
		t.Signs.XorBit(c)
	}
}

// --- Prepend: left-multiply, T -> U.T, via Pauli extract/insert ---

func (t *RowMajorTableau) PrependX(q int) { t.Signs.XorBit(q) }
func (t *RowMajorTableau) PrependZ(q int) { t.Signs.XorBit(q + t.n) }

func (t *RowMajorTableau) PrependS(q int) {
	ps := t.ExtractColumn(q)
	pd := t.ExtractColumn(q + t.n)
	pd.Mult(&ps)
	t.InsertColumn(q+t.n, &pd)
}

func (t *RowMajorTableau) PrependH(q int) {
	for i := 0; i < t.n; i++ {
		zi, xi := t.zRows[i].Get(q), t.xRows[i].Get(q)
		zj, xj := t.zRows[i].Get(q+t.n), t.xRows[i].Get(q+t.n)
		if zi != zj {
			t.zRows[i].XorBit(q)
			t.zRows[i].XorBit(q + t.n)
		}
		if xi != xj {
			t.xRows[i].XorBit(q)
			t.xRows[i].XorBit(q + t.n)
		}
	}
	sq, sqn := t.Signs.Get(q), t.Signs.Get(q+t.n)
	if sq != sqn {
		t.Signs.XorBit(q)
		t.Signs.XorBit(q + t.n)
	}
}

func (t *RowMajorTableau) PrependCX(c, target int) {
	sc := t.ExtractColumn(c)
	st := t.ExtractColumn(target)
	dc := t.ExtractColumn(c + t.n)
	dt := t.ExtractColumn(target + t.n)

	st.Mult(&sc)
	dc.Mult(&dt)

	t.InsertColumn(target, &st)
	t.InsertColumn(c+t.n, &dc)
}

// --- from_circ / to_circ ---

// TableauFromCircuit folds an all-Clifford circuit into a tableau via
// Append. Rejects non-Clifford gates and negated controls with a domain
// error.
func TableauFromCircuit(circ *QuantumCircuit) (*RowMajorTableau, error) {
	const op = "RowMajorTableau.FromCircuit"
	t := NewRowMajorTableau(int(circ.NQubits))
	for _, g := range circ.Gates {
		if g.Neg1() || g.Neg2() || g.Neg3() {
			return nil, domainf(op, "negated control is not supported")
		}
		switch g.Type() {
		case GateX:
			t.AppendX(int(g.Target()))
		case GateZ:
			t.AppendZ(int(g.Target()))
		case GateH:
			t.AppendH(int(g.Target()))
		case GateS:
			t.AppendS(int(g.Target()))
		case GateSdg:
			t.AppendS(int(g.Target()))
			t.AppendS(int(g.Target()))
			t.AppendS(int(g.Target()))
		case GateCNOT:
			t.AppendCX(int(g.Control()), int(g.Target()))
		case GateCZ:
			t.AppendCZ(int(g.Target()), int(g.Control()))
		case GateSwap:
			a, b := int(g.Target()), int(g.Control())
			t.AppendCX(b, a)
			t.AppendCX(a, b)
			t.AppendCX(b, a)
		default:
			return nil, domainf(op, "gate %s is not Clifford", g.Type())
		}
	}
	return t, nil
}

// ToCircuit synthesises a Clifford circuit realising the tableau, following
// the Aaronson-Gottesman column-reduction procedure. Works on a scratch
// copy; the receiver is left untouched.
func (t *RowMajorTableau) ToCircuit(inverse bool) *QuantumCircuit {
	work := t.Clone()
	out := NewQuantumCircuit(uint32(t.n))

	type emitted struct {
		kind GateType
		q1   uint16
		q2   uint16
	}
	var seq []emitted
	emit := func(kind GateType, q1, q2 uint16) { seq = append(seq, emitted{kind, q1, q2}) }

	n := t.n
	for i := 0; i < n; i++ {
		p := -1
		for j := 0; j < n; j++ {
			if work.xRows[j].Get(i) {
				p = j
				break
			}
		}
		if p != -1 {
			for j := 0; j < n; j++ {
				if j > i && j != p && work.xRows[j].Get(i) {
					emit(GateCNOT, uint16(p), uint16(j))
					work.AppendCX(p, j)
				}
			}
			if work.zRows[p].Get(i) {
				emit(GateS, uint16(p), 0)
				work.AppendS(p)
			}
			emit(GateH, uint16(p), 0)
			work.AppendH(p)
		}

		if !work.zRows[i].Get(i) {
			for j := n; j > i; j-- {
				if work.zRows[j-1].Get(i) {
					emit(GateCNOT, uint16(i), uint16(j-1))
					work.AppendCX(i, j-1)
					break
				}
			}
		}

		for j := 0; j < n; j++ {
			if j != i && work.zRows[j].Get(i) {
				emit(GateCNOT, uint16(j), uint16(i))
				work.AppendCX(j, i)
			}
		}

		for j := 0; j < n; j++ {
			if j != i && work.xRows[j].Get(i+n) {
				emit(GateCNOT, uint16(i), uint16(j))
				work.AppendCX(i, j)
			}
		}

		for j := 0; j < n; j++ {
			if j != i && work.zRows[j].Get(i+n) {
				emit(GateCNOT, uint16(i), uint16(j))
				work.AppendCX(i, j)
				emit(GateS, uint16(j), 0)
				work.AppendS(j)
				emit(GateCNOT, uint16(i), uint16(j))
				work.AppendCX(i, j)
			}
		}

		if work.zRows[i].Get(i + n) {
			emit(GateS, uint16(i), 0)
			work.AppendS(i)
		}

		if work.Signs.Get(i) {
			emit(GateX, uint16(i), 0)
			work.AppendX(i)
		}
		if work.Signs.Get(i + n) {
			emit(GateZ, uint16(i), 0)
			work.AppendZ(i)
		}
	}

	appendGate := func(e emitted) {
		switch e.kind {
		case GateCNOT:
			out.AddCNOT(e.q1, e.q2)
		case GateS:
			out.AddS(e.q1)
		case GateH:
			out.AddH(e.q1)
		case GateX:
			out.AddX(e.q1)
		case GateZ:
			out.AddZ(e.q1)
		}
	}

	if !inverse {
		for i := len(seq) - 1; i >= 0; i-- {
			e := seq[i]
			appendGate(e)
			if e.kind == GateS {
				out.AddZ(e.q1)
			}
		}
	} else {
		for _, e := range seq {
			appendGate(e)
		}
	}
	return out
}

// Equal reports whether t and other encode the identical tableau (same n,
// same z/x rows, same signs).
func (t *RowMajorTableau) Equal(other *RowMajorTableau) bool {
	if t.n != other.n {
		return false
	}
	for i := 0; i < t.n; i++ {
		if t.zRows[i].String() != other.zRows[i].String() {
			return false
		}
		if t.xRows[i].String() != other.xRows[i].String() {
			return false
		}
	}
	return t.Signs.String() == other.Signs.String()
}
