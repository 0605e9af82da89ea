// countrygen writes a synthetic country directory payload in one of the
// shapes the loader understands. Useful for --source file and load testing.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func main() {
	var (
		shape  string
		count  int
		dupes  int
		seed   int64
		out    string
		pretty bool
	)
	pflag.StringVar(&shape, "shape", shapeV31, "payload shape: v3.1, v2, challenge or mixed")
	pflag.IntVarP(&count, "count", "n", 250, "number of countries")
	pflag.IntVar(&dupes, "dupes", 0, "extra records repeating an earlier name")
	pflag.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pflag.StringVarP(&out, "out", "o", "", "output file (default stdout)")
	pflag.BoolVar(&pretty, "pretty", false, "indent the JSON output")
	pflag.Parse()

	if !isSupported(shape) {
		fmt.Fprintf(os.Stderr, "unsupported shape: %s\n", shape)
		os.Exit(2)
	}
	if count < 0 || dupes < 0 {
		fmt.Fprintln(os.Stderr, "--count and --dupes must not be negative")
		os.Exit(2)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := run(out, shape, count, dupes, seed, pretty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if out != "" {
		fmt.Fprintf(os.Stderr, "wrote %d %s records -> %s (seed %d)\n", count+dupes, shape, out, seed)
	}
}

func run(out, shape string, count, dupes int, seed int64, pretty bool) error {
	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err := newGenerator(seed).write(bw, shape, count, dupes, pretty); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if out != "" {
		return w.Close()
	}
	return nil
}
