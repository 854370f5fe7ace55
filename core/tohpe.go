package core

import "golang.org/x/crypto/sha3"

// scoringKey is the TOHPE candidate-scoring key of a table row (length n, not
// the extended matrix row): the row's ToInteger() when Size() <= 64, stored
// big-endian so byte order matches integer order, or a sha3-256 digest of its
// bit string otherwise.
type scoringKey [32]byte

func rowScoringKey(row *BitVector) scoringKey {
	if row.Size() <= 64 {
		var k scoringKey
		put64(&k, row.ToInteger())
		return k
	}
	return sha3.Sum256([]byte(row.String()))
}

func put64(k *scoringKey, v uint64) {
	for i := 0; i < 8; i++ {
		k[7-i] = byte(v >> (8 * uint(i)))
	}
}

// extendRow appends the n(n-1)/2 upper-triangular pairwise-AND bits z_q & z_r
// (q<r) to a copy of row, widening a length-n table row to the matrix's
// extended width.
func extendRow(row *BitVector, n int) BitVector {
	ext := row.Clone()
	pairs := make([]bool, 0, n*(n-1)/2)
	for q := 0; q < n; q++ {
		for r := q + 1; r < n; r++ {
			pairs = append(pairs, row.Get(q) && row.Get(r))
		}
	}
	ext.ExtendVec(pairs)
	return ext
}

// tohpeState holds the four parallel, always-aligned structures the TOHPE
// outer loop mutates: table (the phase polynomial being rewritten), matrix
// (table extended with pairwise-AND bits), augmented (tracks the XOR recipe
// producing each matrix row from the initial rows), and pivots (partial
// row->column map built during kernel search).
type tohpeState struct {
	n         int
	rowLen    int
	table     []BitVector
	matrix    []BitVector
	augmented []BitVector
	pivots    map[int]int
}

func newTohpeState(table []BitVector, n int) *tohpeState {
	st := &tohpeState{n: n, rowLen: n + n*(n-1)/2, pivots: map[int]int{}}
	st.table = make([]BitVector, len(table))
	st.matrix = make([]BitVector, len(table))
	st.augmented = make([]BitVector, len(table))
	for i, row := range table {
		st.table[i] = row.Clone()
		ext := extendRow(&row, n)
		st.matrix[i] = ext
		st.augmented[i] = NewBitVector(len(table))
		st.augmented[i].XorBit(i)
	}
	return st
}

func (st *tohpeState) count() int { return len(st.table) }

// kernel searches for a row without a pivot whose reduction against known
// pivots is zero, returning its augmented vector as a kernel witness. If
// every unpivoted row reduces to a nonzero row, it is assigned a fresh
// pivot instead, and the search continues to the next candidate.
func (st *tohpeState) kernel() (BitVector, bool) {
	for i := 0; i < st.count(); i++ {
		if _, has := st.pivots[i]; has {
			continue
		}
		for r, c := range st.pivots {
			if st.matrix[i].Get(c) {
				st.matrix[i].XorWith(&st.matrix[r])
				st.augmented[i].XorWith(&st.augmented[r])
			}
		}
		idx := st.matrix[i].GetFirstOne()
		if st.matrix[i].Get(idx) {
			for r, c := range st.pivots {
				if st.matrix[r].Get(idx) {
					st.matrix[r].XorWith(&st.matrix[i])
					st.augmented[r].XorWith(&st.augmented[i])
				}
			}
			st.pivots[i] = idx
			continue
		}
		return st.augmented[i].Clone(), true
	}
	return BitVector{}, false
}

// clearColumn removes row i's pivot entry (if any), ensures no other row
// still has augmented bit i set by folding i's own row into them, or by
// first swapping in a row that does carry bit i.
func (st *tohpeState) clearColumn(i int) {
	delete(st.pivots, i)
	if !st.augmented[i].Get(i) {
		for j := 0; j < st.count(); j++ {
			if j != i && st.augmented[j].Get(i) {
				st.matrix[i], st.matrix[j] = st.matrix[j], st.matrix[i]
				st.augmented[i], st.augmented[j] = st.augmented[j], st.augmented[i]
				if c, has := st.pivots[j]; has {
					delete(st.pivots, j)
					st.pivots[i] = c
				}
				break
			}
		}
	}
	for j := 0; j < st.count(); j++ {
		if j != i && st.augmented[j].Get(i) {
			st.matrix[j].XorWith(&st.matrix[i])
			st.augmented[j].XorWith(&st.augmented[i])
		}
	}
}

// score implements TOHPE's candidate-scoring step 3b: set-membership score
// for each row matching y's parity, plus weight-2 score for every XOR of a
// y-selected row against a non-selected row. Returns the winning row and
// its integer key, breaking ties by lowest key.
func (st *tohpeState) score(y *BitVector) (BitVector, scoringKey, bool) {
	parity := y.Popcount()%2 == 1
	scores := map[scoringKey]int{}
	rowOf := map[scoringKey]BitVector{}

	for i := 0; i < st.count(); i++ {
		if parity != y.Get(i) {
			k := rowScoringKey(&st.table[i])
			scores[k] = 1
			rowOf[k] = st.table[i]
		}
	}
	for i := 0; i < st.count(); i++ {
		if !y.Get(i) {
			continue
		}
		for j := 0; j < st.count(); j++ {
			if y.Get(j) {
				continue
			}
			xored := st.table[i].Clone()
			xored.XorWith(&st.table[j])
			k := rowScoringKey(&xored)
			scores[k] += 2
			rowOf[k] = xored
		}
	}

	best := 0
	var bestKey scoringKey
	found := false
	for k, s := range scores {
		if s <= 0 {
			continue
		}
		if !found || s > best || (s == best && lessKey(k, bestKey)) {
			best, bestKey, found = s, k, true
		}
	}
	if !found {
		return BitVector{}, scoringKey{}, false
	}
	return rowOf[bestKey], bestKey, true
}

func lessKey(a, b scoringKey) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Tohpe rewrites table in place to an equivalent but no-longer phase
// polynomial, via repeated kernel search, scoring, XOR application, and
// pruning. Returns a KindInvariant error if the outer loop fails to
// converge within the safety cap recommended by spec.md §5 (m*n^2+1 outer
// iterations, and never fewer than 64).
func Tohpe(original []BitVector, table *[]BitVector, n int) error {
	const op = "Tohpe"
	rows := make([]BitVector, len(original))
	for i, r := range original {
		rows[i] = r.Clone()
	}
	st := newTohpeState(rows, n)

	safetyCap := len(rows)*n*n + 1
	if safetyCap < 64 {
		safetyCap = 64
	}

	for iter := 0; ; iter++ {
		if iter >= safetyCap {
			return invariantf(op, "kernel search did not converge within %d outer iterations", safetyCap)
		}

		y, ok := st.kernel()
		if !ok {
			break
		}

		z, _, ok := st.score(&y)
		if !ok {
			break
		}

		toUpdate := map[int]bool{}
		if y.Popcount()%2 == 1 {
			st.table = append(st.table, NewBitVector(n))
			st.matrix = append(st.matrix, NewBitVector(st.rowLen))
			unit := NewBitVector(st.count())
			unit.XorBit(st.count() - 1)
			for i := range st.augmented {
				st.augmented[i].ExtendVec([]bool{false})
			}
			st.augmented = append(st.augmented, unit)
			y.ExtendVec([]bool{true})
			toUpdate[st.count()-1] = true
		}

		for k := 0; k < st.count(); k++ {
			if y.Get(k) {
				st.table[k].XorWith(&z)
			}
		}

		st.pruneAndResync(toUpdate)
	}
	*table = st.table
	return nil
}

// pruneAndResync implements steps 3e/3f: erase zero/duplicate rows via
// swap-remove (keeping matrix/augmented/pivots aligned throughout; in every
// augmented vector the last column is moved into the vacated column and the
// last bit is then erased), then re-synchronise any row still marked in
// toUpdate against the live table.
func (st *tohpeState) pruneAndResync(toUpdate map[int]bool) {
	seen := map[string]bool{}
	var eraseIdx []int
	for i, row := range st.table {
		s := row.String()
		if row.Popcount() == 0 || seen[s] {
			eraseIdx = append(eraseIdx, i)
			continue
		}
		seen[s] = true
	}

	remap := func(idx, removed, last int) int {
		switch {
		case idx == removed:
			return -1
		case idx == last:
			return removed
		default:
			return idx
		}
	}

	for k := len(eraseIdx) - 1; k >= 0; k-- {
		i := eraseIdx[k]
		st.clearColumn(i)
		delete(st.pivots, i)

		last := st.count() - 1
		movedFromLast := i != last
		if movedFromLast {
			st.table[i] = st.table[last]
			st.matrix[i] = st.matrix[last]
			st.augmented[i] = st.augmented[last]
		}
		st.table = st.table[:last]
		st.matrix = st.matrix[:last]
		st.augmented = st.augmented[:last]

		newLen := st.count()
		for r := 0; r < st.count(); r++ {
			if st.augmented[r].Get(i) != st.augmented[r].Get(newLen) {
				st.augmented[r].XorBit(i)
			}
			if st.augmented[r].Get(newLen) {
				st.augmented[r].XorBit(newLen)
			}
			st.augmented[r].EraseBit(newLen)
		}

		updated := map[int]bool{}
		for idx := range toUpdate {
			if nidx := remap(idx, i, last); nidx >= 0 {
				updated[nidx] = true
			} else if movedFromLast && idx == last {
				updated[i] = true
			}
		}
		toUpdate = updated

		np := map[int]int{}
		for r, c := range st.pivots {
			nr := remap(r, i, last)
			if nr < 0 {
				continue
			}
			np[nr] = c
		}
		st.pivots = np
	}

	for idx := range toUpdate {
		st.clearColumn(idx)
		st.matrix[idx] = extendRow(&st.table[idx], st.n)
	}
}
