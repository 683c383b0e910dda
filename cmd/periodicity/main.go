// Command periodicity reports whether discrete complex sinusoids repeat.
//
// Usage:
//
//	periodicity [flags] [omega ...]
//
// Frequencies are given in radians per sample and may use a "pi" suffix
// notation, e.g. "pi/4" or "2pi/3". Without arguments it analyzes a set of
// canonical frequencies.
//
// Examples:
//
//	periodicity
//	periodicity pi/4 1.0
//	periodicity -max-period 500 0.0314159
//	periodicity -alias pi/6
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dsp-primer/dsp/periodic"
	"github.com/cwbudde/algo-dsp-primer/dsp/sinusoid"
	"github.com/cwbudde/algo-dsp-primer/measure/freq"
)

type frequencyEntry struct {
	label string
	omega float64
}

var canonical = []frequencyEntry{
	{"0", 0},
	{"pi/4", math.Pi / 4},
	{"pi/3", math.Pi / 3},
	{"pi/2", math.Pi / 2},
	{"2pi/3", 2 * math.Pi / 3},
	{"pi", math.Pi},
	{"pi*sqrt2/2", math.Pi * math.Sqrt2 / 2},
	{"1.0", 1.0},
}

func main() {
	maxPeriod := flag.Int("max-period", 100, "inclusive upper bound of the period search")
	samples := flag.Int("samples", 64, "sequence length for alias and estimation checks")
	alias := flag.Bool("alias", false, "also verify the 2*pi alias identity per frequency")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: periodicity [flags] [omega ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reports the fundamental period of e^(j*omega*n) per frequency.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, analyzes a canonical set of frequencies.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  periodicity pi/4 1.0\n")
		fmt.Fprintf(os.Stderr, "  periodicity -max-period 500 0.0314159\n")
		fmt.Fprintf(os.Stderr, "  periodicity -alias pi/6\n")
	}
	flag.Parse()

	checker, err := periodic.NewChecker(periodic.WithMaxPeriod(*maxPeriod))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	entries := canonical
	if args := flag.Args(); len(args) > 0 {
		entries = nil
		for _, arg := range args {
			omega, err := parseOmega(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				continue
			}
			entries = append(entries, frequencyEntry{arg, omega})
		}
	}
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid frequencies\n")
		os.Exit(1)
	}

	fmt.Printf("A complex sinusoid e^(j*omega*n) is periodic exactly when omega\n")
	fmt.Printf("is a rational multiple of 2*pi. Search bound: %d samples.\n\n", checker.MaxPeriod())

	printTable(checker, entries, *samples)

	if *alias {
		fmt.Println()
		for _, e := range entries {
			printAliasCheck(e, *samples)
		}
	}
}

func parseOmega(s string) (float64, error) {
	t := strings.ToLower(strings.ReplaceAll(s, " ", ""))

	num, den := t, ""
	if i := strings.IndexByte(t, '/'); i >= 0 {
		num, den = t[:i], t[i+1:]
	}

	parsePart := func(p string) (float64, error) {
		if p == "" {
			return 0, fmt.Errorf("invalid frequency %q", s)
		}
		factor := 1.0
		if strings.Contains(p, "pi") {
			factor = math.Pi
			p = strings.Replace(p, "pi", "", 1)
			if p == "" || p == "-" {
				p += "1"
			}
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frequency %q", s)
		}
		return v * factor, nil
	}

	omega, err := parsePart(num)
	if err != nil {
		return 0, err
	}
	if den != "" {
		d, err := parsePart(den)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, fmt.Errorf("invalid frequency %q: zero denominator", s)
		}
		omega /= d
	}
	return omega, nil
}

func printTable(checker *periodic.Checker, entries []frequencyEntry, samples int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Omega\tRad/Sample\tOmega/(2*pi)\tPeriodic\tPeriod\tEstimated Omega\n")
	fmt.Fprintf(tw, "-----\t----------\t------------\t--------\t------\t---------------\n")

	g := sinusoid.NewGenerator()
	for _, e := range entries {
		period, ok := checker.FundamentalPeriod(e.omega)

		status, periodText := "no", "-"
		if ok {
			status = "yes"
			periodText = strconv.Itoa(period)
		}

		estimate := "-"
		if x, err := g.ComplexExponential(e.omega, samples); err == nil {
			if est, err := freq.DominantOmega(x); err == nil {
				estimate = fmt.Sprintf("%.4f", est)
			}
		}

		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%s\t%s\t%s\n",
			e.label, e.omega, e.omega/(2*math.Pi), status, periodText, estimate)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printAliasCheck(e frequencyEntry, samples int) {
	g := sinusoid.NewGenerator()

	base, err := g.ComplexExponential(e.omega, samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	fmt.Printf("omega = %s: alias identity e^(j(omega+2*pi*k)n) = e^(j*omega*n)\n", e.label)
	for _, k := range []int{1, -1} {
		aliased, err := g.ComplexExponential(sinusoid.Alias(e.omega, k), samples)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		dev, err := sinusoid.MaxDeviation(base, aliased)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Printf("  k=%+d: max deviation %.2e\n", k, dev)
	}
}
