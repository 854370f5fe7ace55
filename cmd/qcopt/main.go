package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"qcopt/core"
	"qcopt/core/wire"
)

func usage() {
	fmt.Println(`usage: qcopt <optimize|tableau-from|tableau-to> [options]

Subcommands:
  optimize       Read a wire-format circuit, run the T-count optimiser, write the result
                 Flags:
                   -in  <path>  input circuit JSON (required)
                   -out <path>  output circuit JSON (default: stdout)

  tableau-from   Read an all-Clifford circuit, write its stabiliser tableau
                 Flags:
                   -in  <path>  input circuit JSON (required)
                   -out <path>  output tableau JSON (default: stdout)

  tableau-to     Read a stabiliser tableau, synthesise a Clifford circuit
                 Flags:
                   -in      <path>  input tableau JSON (required)
                   -out     <path>  output circuit JSON (default: stdout)
                   -inverse         synthesise the inverse Clifford`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "optimize":
		runOptimize(os.Args[2:])
	case "tableau-from":
		runTableauFrom(os.Args[2:])
	case "tableau-to":
		runTableauTo(os.Args[2:])
	default:
		usage()
	}
}

func openIn(path string) *os.File {
	if path == "" {
		log.Fatalf("-in is required")
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	return f
}

func openOut(path string) *os.File {
	if path == "" {
		return os.Stdout
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	return f
}

func runOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	in := fs.String("in", "", "input circuit JSON")
	out := fs.String("out", "", "output circuit JSON (default: stdout)")
	fs.Parse(args)

	inFile := openIn(*in)
	defer inFile.Close()
	circ, err := wire.DecodeCircuit(inFile)
	if err != nil {
		log.Fatalf("optimize: %v", err)
	}

	before := circ.NumT()
	optimized, err := core.Optimize(circ)
	if err != nil {
		log.Fatalf("optimize: %v", err)
	}

	outFile := openOut(*out)
	defer outFile.Close()
	if err := wire.EncodeCircuit(outFile, optimized); err != nil {
		log.Fatalf("optimize: %v", err)
	}
	fmt.Fprintf(os.Stderr, "optimize: t-count %d -> %d\n", before, optimized.NumT())
}

func runTableauFrom(args []string) {
	fs := flag.NewFlagSet("tableau-from", flag.ExitOnError)
	in := fs.String("in", "", "input circuit JSON")
	out := fs.String("out", "", "output tableau JSON (default: stdout)")
	fs.Parse(args)

	inFile := openIn(*in)
	defer inFile.Close()
	circ, err := wire.DecodeCircuit(inFile)
	if err != nil {
		log.Fatalf("tableau-from: %v", err)
	}

	tab, err := core.TableauFromCircuit(circ)
	if err != nil {
		log.Fatalf("tableau-from: %v", err)
	}

	outFile := openOut(*out)
	defer outFile.Close()
	if err := wire.EncodeTableau(outFile, tab); err != nil {
		log.Fatalf("tableau-from: %v", err)
	}
}

func runTableauTo(args []string) {
	fs := flag.NewFlagSet("tableau-to", flag.ExitOnError)
	in := fs.String("in", "", "input tableau JSON")
	out := fs.String("out", "", "output circuit JSON (default: stdout)")
	inverse := fs.Bool("inverse", false, "synthesise the inverse Clifford")
	fs.Parse(args)

	inFile := openIn(*in)
	defer inFile.Close()
	tab, err := wire.DecodeTableau(inFile)
	if err != nil {
		log.Fatalf("tableau-to: %v", err)
	}

	circ := tab.ToCircuit(*inverse)

	outFile := openOut(*out)
	defer outFile.Close()
	if err := wire.EncodeCircuit(outFile, circ); err != nil {
		log.Fatalf("tableau-to: %v", err)
	}
}
