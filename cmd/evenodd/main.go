// Command evenodd prints even/odd decompositions of discrete signals.
//
// Usage:
//
//	evenodd [flags]
//
// Without flags it decomposes three example signals: an arbitrary sequence,
// a geometric sequence, and a sine over a symmetric index range. A custom
// signal can be given as comma-separated samples with indices starting at 0.
//
// Examples:
//
//	evenodd
//	evenodd -signal 2,1,-1,3,2
//	evenodd -base 0.5 -samples 8
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dsp-primer/dsp/parity"
	"github.com/cwbudde/algo-dsp-primer/dsp/sinusoid"
)

func main() {
	custom := flag.String("signal", "", "comma-separated samples, indexed from 0")
	base := flag.Float64("base", 0.8, "base of the geometric example signal")
	samples := flag.Int("samples", 6, "length of the geometric example signal")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: evenodd [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Splits discrete signals into even and odd parts over a\n")
		fmt.Fprintf(os.Stderr, "symmetric index range, with even + odd reconstructing the\n")
		fmt.Fprintf(os.Stderr, "zero-padded signal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	fmt.Println("Even part:  xe[n] = (x[n] + x[-n])/2")
	fmt.Println("Odd part:   xo[n] = (x[n] - x[-n])/2")
	fmt.Println("Identity:   x[n] = xe[n] + xo[n]")

	if *custom != "" {
		x, err := parseSignal(*custom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		n := make([]int, len(x))
		for i := range n {
			n[i] = i
		}
		printDecomposition("custom signal", x, n)
		return
	}

	x := []float64{2, 1, -1, 3, 2}
	n := []int{0, 1, 2, 3, 4}
	printDecomposition("arbitrary signal", x, n)

	geo, err := sinusoid.Geometric(*base, *samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	n = make([]int, len(geo))
	for i := range n {
		n[i] = i
	}
	printDecomposition(fmt.Sprintf("geometric signal %.2f^n", *base), geo, n)

	n = make([]int, 11)
	for i := range n {
		n[i] = i - 5
	}
	sine, err := sinusoid.SineAt(math.Pi/4, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	printDecomposition("sine sin(pi/4*n), odd by construction", sine, n)
}

func parseSignal(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func printDecomposition(title string, x []float64, n []int) {
	d, err := parity.Decompose(x, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	extended, _, err := parity.Extend(x, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	recon := d.Reconstruct()

	fmt.Printf("\n%s\n", title)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "n\tx[n]\txe[n]\txo[n]\txe+xo\t\n")
	for i, idx := range d.Index {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			idx, extended[i], d.Even[i], d.Odd[i], recon[i])
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	fmt.Printf("even symmetric: %v, odd antisymmetric: %v\n",
		parity.Symmetric(d.Even, 1e-9), parity.Antisymmetric(d.Odd, 1e-9))
}
