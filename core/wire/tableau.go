package wire

import (
	"encoding/json"
	"fmt"
	"io"

	"qcopt/core"
)

// tableauDoc is the wire representation of a core.RowMajorTableau per §3.1:
// n z-row strings, n x-row strings and one signs string, each of length 2n.
type tableauDoc struct {
	N     int      `json:"n"`
	ZRows []string `json:"z_rows"`
	XRows []string `json:"x_rows"`
	Signs string   `json:"signs"`
}

// EncodeTableau writes t as wire-format JSON.
func EncodeTableau(w io.Writer, t *core.RowMajorTableau) error {
	n := t.N()
	signs := t.Signs
	doc := tableauDoc{N: n, Signs: signs.String()}
	for i := 0; i < n; i++ {
		zr := t.ZRow(i)
		xr := t.XRow(i)
		doc.ZRows = append(doc.ZRows, zr.String())
		doc.XRows = append(doc.XRows, xr.String())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("wire: encode tableau: %w", err)
	}
	return nil
}

// DecodeTableau reads a wire-format tableau, validating row_len = 2n and
// row-count n per spec.md §6/§7's structural error class.
func DecodeTableau(r io.Reader) (*core.RowMajorTableau, error) {
	var doc tableauDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("wire: decode tableau: %w", err)
	}
	if doc.N <= 0 {
		return nil, fmt.Errorf("wire: tableau n must be positive, got %d", doc.N)
	}
	if len(doc.ZRows) != doc.N || len(doc.XRows) != doc.N {
		return nil, fmt.Errorf("wire: tableau expected %d z/x rows, got %d/%d", doc.N, len(doc.ZRows), len(doc.XRows))
	}
	rowLen := 2 * doc.N
	for i, s := range doc.ZRows {
		if len(s) != rowLen {
			return nil, fmt.Errorf("wire: tableau z_rows[%d] has length %d, want %d", i, len(s), rowLen)
		}
	}
	for i, s := range doc.XRows {
		if len(s) != rowLen {
			return nil, fmt.Errorf("wire: tableau x_rows[%d] has length %d, want %d", i, len(s), rowLen)
		}
	}
	if len(doc.Signs) != rowLen {
		return nil, fmt.Errorf("wire: tableau signs has length %d, want %d", len(doc.Signs), rowLen)
	}
	zRows := make([]core.BitVector, doc.N)
	xRows := make([]core.BitVector, doc.N)
	for i := 0; i < doc.N; i++ {
		zRows[i] = core.BitVectorFromString(doc.ZRows[i])
		xRows[i] = core.BitVectorFromString(doc.XRows[i])
	}
	signs := core.BitVectorFromString(doc.Signs)
	return core.RowMajorTableauFromRows(doc.N, zRows, xRows, signs)
}
