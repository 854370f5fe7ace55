package core

import (
	"encoding/binary"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Rand is a deterministic, seed-keyed bit/gate sampler used by the core
// package's property-based tests. It is built on utils.NewKeyedPRNG for
// reproducible seed-derived sampling, so a fixed seed always reproduces the
// same circuits and bitvectors across test runs.
type Rand struct {
	prng utils.PRNG
}

// NewRand constructs a Rand keyed by seed. The same seed always yields the
// same sequence of draws.
func NewRand(seed []byte) (*Rand, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, err
	}
	return &Rand{prng: prng}, nil
}

// Uint64 draws a uniformly random 64-bit word.
func (r *Rand) Uint64() uint64 {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(r.prng, buf); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf)
}

// Intn draws a uniformly random integer in [0, n) via rejection sampling.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("core: Intn requires n > 0")
	}
	rangeSize := uint64(n)
	maxUint64 := ^uint64(0)
	threshold := (maxUint64 / rangeSize) * rangeSize
	for {
		w := r.Uint64()
		if w < threshold {
			return int(w % rangeSize)
		}
	}
}

// Bool draws a uniformly random bit.
func (r *Rand) Bool() bool { return r.Intn(2) == 1 }

// BitVector draws a uniformly random vector of the given length.
func (r *Rand) BitVector(length int) BitVector {
	bv := NewBitVector(length)
	for i := 0; i < length; i++ {
		if r.Bool() {
			bv.XorBit(i)
		}
	}
	return bv
}

// cliffordGateNames lists the gate kinds FromCircuit accepts, used by
// RandomCliffordCircuit to stay within the Clifford fragment.
var cliffordGateNames = []GateType{GateX, GateZ, GateH, GateS, GateSdg, GateCNOT, GateCZ, GateSwap}

// RandomCliffordCircuit draws a random circuit over n qubits made only of
// Clifford gates (X, Z, H, S, S-dagger, CNOT, CZ, SWAP), suitable for
// round-trip tests against RowMajorTableau.FromCircuit/ToCircuit.
func (r *Rand) RandomCliffordCircuit(n, numGates int) *QuantumCircuit {
	qc := NewQuantumCircuit(uint32(n))
	for i := 0; i < numGates; i++ {
		kind := cliffordGateNames[r.Intn(len(cliffordGateNames))]
		switch kind {
		case GateX:
			qc.AddX(uint16(r.Intn(n)))
		case GateZ:
			qc.AddZ(uint16(r.Intn(n)))
		case GateH:
			qc.AddH(uint16(r.Intn(n)))
		case GateS:
			qc.AddS(uint16(r.Intn(n)))
		case GateSdg:
			qc.AddSdg(uint16(r.Intn(n)))
		case GateCNOT:
			c, t := r.distinctPair(n)
			qc.AddCNOT(uint16(c), uint16(t))
		case GateCZ:
			a, b := r.distinctPair(n)
			qc.AddCZ(uint16(a), uint16(b))
		case GateSwap:
			a, b := r.distinctPair(n)
			qc.AddSwap(uint16(a), uint16(b))
		}
	}
	return qc
}

// RandomCliffordTCircuit draws a random circuit over n qubits made of
// Clifford gates plus T/T-dagger, suitable for exercising Optimize.
func (r *Rand) RandomCliffordTCircuit(n, numGates int) *QuantumCircuit {
	qc := r.RandomCliffordCircuit(n, 0)
	for i := 0; i < numGates; i++ {
		if r.Intn(3) == 0 {
			q := uint16(r.Intn(n))
			if r.Bool() {
				qc.AddT(q)
			} else {
				qc.AddTdg(q)
			}
			continue
		}
		kind := cliffordGateNames[r.Intn(len(cliffordGateNames))]
		switch kind {
		case GateX:
			qc.AddX(uint16(r.Intn(n)))
		case GateZ:
			qc.AddZ(uint16(r.Intn(n)))
		case GateH:
			qc.AddH(uint16(r.Intn(n)))
		case GateS:
			qc.AddS(uint16(r.Intn(n)))
		case GateSdg:
			qc.AddSdg(uint16(r.Intn(n)))
		case GateCNOT:
			c, t := r.distinctPair(n)
			qc.AddCNOT(uint16(c), uint16(t))
		case GateCZ:
			a, b := r.distinctPair(n)
			qc.AddCZ(uint16(a), uint16(b))
		case GateSwap:
			a, b := r.distinctPair(n)
			qc.AddSwap(uint16(a), uint16(b))
		}
	}
	return qc
}

func (r *Rand) distinctPair(n int) (int, int) {
	if n < 2 {
		panic("core: distinctPair requires n >= 2")
	}
	a := r.Intn(n)
	b := r.Intn(n - 1)
	if b >= a {
		b++
	}
	return a, b
}
