// Package main implements qcprofile, a batch T-count reduction profiler:
// it runs core.Optimize over every wire-format circuit in a directory and
// renders a before/after bar chart, in the same style as cmd/analysis's
// histogram report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"qcopt/core"
	"qcopt/core/wire"
)

type profileResult struct {
	File    string `json:"file"`
	Before  int    `json:"t_count_before"`
	After   int    `json:"t_count_after"`
	Qubits  uint32 `json:"n_qubits"`
	Skipped string `json:"skipped,omitempty"`
}

func profileOne(path string) profileResult {
	res := profileResult{File: filepath.Base(path)}

	f, err := os.Open(path)
	if err != nil {
		res.Skipped = err.Error()
		return res
	}
	defer f.Close()

	circ, err := wire.DecodeCircuit(f)
	if err != nil {
		res.Skipped = err.Error()
		return res
	}
	res.Qubits = circ.NQubits
	res.Before = circ.NumT()

	optimized, err := core.Optimize(circ)
	if err != nil {
		res.Skipped = err.Error()
		return res
	}
	res.After = optimized.NumT()
	return res
}

func newTCountChart(results []profileResult) *charts.Bar {
	var labels []string
	var before, after []opts.BarData
	for _, r := range results {
		if r.Skipped != "" {
			continue
		}
		labels = append(labels, r.File)
		before = append(before, opts.BarData{Value: r.Before})
		after = append(after, opts.BarData{Value: r.After})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "T-count before/after optimize"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "qcprofile", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("before", before).
		AddSeries("after", after)
	return bar
}

func main() {
	dir := flag.String("dir", "", "directory of wire-format circuit JSON files")
	outDir := flag.String("out", "qcprofile_reports", "output directory for reports")
	flag.Parse()

	if *dir == "" {
		log.Fatalf("qcprofile: -dir is required")
	}
	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("qcprofile: read dir: %v", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			files = append(files, filepath.Join(*dir, e.Name()))
		}
	}
	sort.Strings(files)

	var results []profileResult
	for _, path := range files {
		log.Printf("qcprofile: optimizing %s", path)
		results = append(results, profileOne(path))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("qcprofile: mkdir: %v", err)
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("profile_%s.json", ts))
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatalf("qcprofile: marshal results: %v", err)
	}
	if err := os.WriteFile(jsonPath, b, 0o644); err != nil {
		log.Fatalf("qcprofile: write results: %v", err)
	}

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("tcount_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("qcprofile: create html: %v", err)
	}
	defer f.Close()
	if err := newTCountChart(results).Render(f); err != nil {
		log.Fatalf("qcprofile: render html: %v", err)
	}

	fmt.Println("T-count chart:", htmlPath)
	fmt.Println("Results JSON:", jsonPath)
}
