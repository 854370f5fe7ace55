// Package wire marshals core circuits and tableaux to and from the host's
// JSON wire format, following the same tolerant request/response envelope
// style as ntru/io.
package wire

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"

	"qcopt/core"
)

// gateRecord is the wire representation of one core.Gate.
type gateRecord struct {
	Name   string  `json:"name"`
	Target uint16  `json:"target"`
	Ctrl   *uint16 `json:"ctrl,omitempty"`
	Ctrl1  *uint16 `json:"ctrl1,omitempty"`
	Ctrl2  *uint16 `json:"ctrl2,omitempty"`
}

// circuitDoc is the wire representation of a core.QuantumCircuit.
type circuitDoc struct {
	NQubits      uint32       `json:"n_qubits"`
	QubitMapping []uint32     `json:"qubit_mapping"`
	Gates        []gateRecord `json:"gates"`
	Fingerprint  string       `json:"fingerprint,omitempty"`
}

func gateName(t core.GateType, hGate bool) string {
	if t == core.GateToffoli && !hGate {
		return "CCZ"
	}
	return t.String()
}

func parseGateName(name string) (core.GateType, bool, error) {
	switch name {
	case "X":
		return core.GateX, false, nil
	case "Z":
		return core.GateZ, false, nil
	case "HAD":
		return core.GateH, false, nil
	case "CNOT":
		return core.GateCNOT, false, nil
	case "T":
		return core.GateT, false, nil
	case "Tdg":
		return core.GateTdg, false, nil
	case "S":
		return core.GateS, false, nil
	case "Sdg":
		return core.GateSdg, false, nil
	case "Tof":
		return core.GateToffoli, true, nil
	case "CCZ":
		return core.GateToffoli, false, nil
	case "Swap":
		return core.GateSwap, false, nil
	case "CZ":
		return core.GateCZ, false, nil
	default:
		return 0, false, fmt.Errorf("wire: unknown gate name %q", name)
	}
}

// EncodeCircuit writes circ as wire-format JSON, with an optional sha3-256
// content fingerprint over the gate list.
func EncodeCircuit(w io.Writer, circ *core.QuantumCircuit) error {
	doc := circuitDoc{NQubits: circ.NQubits, QubitMapping: circ.QubitMapping}
	for _, g := range circ.Gates {
		rec := gateRecord{Name: gateName(g.Type(), g.IsHGate()), Target: g.Target()}
		switch g.Type() {
		case core.GateCNOT, core.GateCZ, core.GateSwap:
			c := g.Control()
			rec.Ctrl = &c
		case core.GateToffoli:
			c1, c2 := g.Ctrl1(), g.Ctrl2()
			rec.Ctrl1, rec.Ctrl2 = &c1, &c2
		}
		doc.Gates = append(doc.Gates, rec)
	}

	body, err := json.Marshal(doc.Gates)
	if err != nil {
		return fmt.Errorf("wire: encode circuit: %w", err)
	}
	sum := sha3.Sum256(body)
	doc.Fingerprint = hex.EncodeToString(sum[:])

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("wire: encode circuit: %w", err)
	}
	return nil
}

// DecodeCircuit reads a wire-format circuit, rebuilding each packed Gate
// from its {name, target, ctrl...} record.
func DecodeCircuit(r io.Reader) (*core.QuantumCircuit, error) {
	var doc circuitDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("wire: decode circuit: %w", err)
	}
	circ := core.NewQuantumCircuit(doc.NQubits)
	if len(doc.QubitMapping) == int(doc.NQubits) {
		circ.QubitMapping = doc.QubitMapping
	}
	for _, rec := range doc.Gates {
		kind, hGate, err := parseGateName(rec.Name)
		if err != nil {
			return nil, err
		}
		switch kind {
		case core.GateX:
			circ.AddX(rec.Target)
		case core.GateZ:
			circ.AddZ(rec.Target)
		case core.GateH:
			circ.AddH(rec.Target)
		case core.GateS:
			circ.AddS(rec.Target)
		case core.GateSdg:
			circ.AddSdg(rec.Target)
		case core.GateT:
			circ.AddT(rec.Target)
		case core.GateTdg:
			circ.AddTdg(rec.Target)
		case core.GateCNOT:
			if rec.Ctrl == nil {
				return nil, fmt.Errorf("wire: CNOT gate missing ctrl")
			}
			circ.AddCNOT(*rec.Ctrl, rec.Target)
		case core.GateCZ:
			if rec.Ctrl == nil {
				return nil, fmt.Errorf("wire: CZ gate missing ctrl")
			}
			circ.AddCZ(rec.Target, *rec.Ctrl)
		case core.GateSwap:
			if rec.Ctrl == nil {
				return nil, fmt.Errorf("wire: Swap gate missing ctrl")
			}
			circ.AddSwap(rec.Target, *rec.Ctrl)
		case core.GateToffoli:
			if rec.Ctrl1 == nil || rec.Ctrl2 == nil {
				return nil, fmt.Errorf("wire: Toffoli/CCZ gate missing ctrl1/ctrl2")
			}
			if hGate {
				circ.AddToffoli(rec.Target, *rec.Ctrl1, *rec.Ctrl2)
			} else {
				circ.AddCCZ(rec.Target, *rec.Ctrl1, *rec.Ctrl2)
			}
		}
	}
	return circ, nil
}
