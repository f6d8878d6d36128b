// Command simdatoi parses decimal numerals with one of the simdatoi kernels,
// or times every kernel over a sample timestamp.
//
// Usage:
//
//	simdatoi -kernel variable 42ab 1585201087123789
//	printf '1\n22\n333\n' | simdatoi -kernel simple
//	simdatoi -bench
//	simdatoi -info
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/mnightingale/simdatoi"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("simdatoi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kernelName := fs.String("kernel", simdatoi.KernelVariable.String(), "kernel to parse with ("+kernelList()+")")
	bench := fs.Bool("bench", false, "time every kernel over "+simdatoi.SampleTimestamp)
	info := fs.Bool("info", false, "print the variable kernel front end and CPU features")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [-kernel name] [numeral...]\n\n", fs.Name()),
			writeln(stderr, "Parses each numeral argument, or each line of stdin, and prints the value and bytes consumed."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *info {
		if err := printInfo(stdout); err != nil {
			return 1
		}
		return 0
	}
	if *bench {
		if err := runBench(stdout); err != nil {
			return 1
		}
		return 0
	}

	kernel, err := simdatoi.ParseKernel(*kernelName)
	if err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	var inputs []string
	if fs.NArg() > 0 {
		inputs = fs.Args()
	} else {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			inputs = append(inputs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			_ = writef(stderr, "error reading input: %v\n", err)
			return 1
		}
	}

	status := 0
	for _, in := range inputs {
		// Zero padding would make a fixed kernel return a wrong value, so only
		// the variable kernel gets a padded copy.
		if len(in) < kernel.Width() && kernel != simdatoi.KernelVariable {
			if err := writef(stderr, "error: %q is shorter than the %d bytes %s reads\n", in, kernel.Width(), kernel); err != nil {
				return 1
			}
			status = 1
			continue
		}
		buf := []byte(in)
		if kernel == simdatoi.KernelVariable {
			buf = simdatoi.AppendPadding(buf)
		}
		v, n := kernel.Parse(buf)
		if err := writef(stdout, "%d %d\n", v, n); err != nil {
			return 1
		}
	}
	return status
}

func kernelList() string {
	var names []string
	for _, k := range simdatoi.Kernels() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func printInfo(w io.Writer) error {
	features := strings.Join(simdatoi.CPUFeatures(), " ")
	if features == "" {
		features = "none"
	}
	return errors.Join(
		writef(w, "variable kernel: %s\n", simdatoi.VariableKernel()),
		writef(w, "cpu features: %s\n", features),
	)
}

var sink uint64

func runBench(w io.Writer) error {
	input := simdatoi.AppendPadding([]byte(simdatoi.SampleTimestamp))
	numeral := input[:len(simdatoi.SampleTimestamp)]
	for _, k := range simdatoi.Kernels() {
		b := input
		if k.Width() == 0 {
			b = numeral
		}
		r := testing.Benchmark(func(tb *testing.B) {
			for tb.Loop() {
				v, _ := k.Parse(b)
				sink += v
			}
		})
		if err := writef(w, "%-12s %10.2f ns/op\n", k, float64(r.T.Nanoseconds())/float64(r.N)); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
