// Command gridinfo prints the frequency-index layout of FFT array
// shapes.
//
// Usage:
//
//	gridinfo [flags] shape [shape ...]
//
// Shapes are dimension lengths joined by 'x', e.g. 8 or 6x9.
//
// Examples:
//
//	gridinfo 8
//	gridinfo 6x9 4x4x4
//	gridinfo -values 16
//	gridinfo -enumerate 12 2x3
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fftgrid"
)

func main() {
	values := flag.Bool("values", false, "print the full frequency value list of every axis")
	ascending := flag.Bool("ascending", false, "with -values, print axes in ascending frequency order")
	enumerate := flag.Int("enumerate", 0, "print the first N frequency indices of each grid")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gridinfo [flags] shape [shape ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the frequency-index layout of FFT array shapes.\n")
		fmt.Fprintf(os.Stderr, "Shapes are dimension lengths joined by 'x', e.g. 8 or 6x9.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gridinfo 8\n")
		fmt.Fprintf(os.Stderr, "  gridinfo 6x9 4x4x4\n")
		fmt.Fprintf(os.Stderr, "  gridinfo -values -ascending 16\n")
		fmt.Fprintf(os.Stderr, "  gridinfo -enumerate 12 2x3\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ok := true
	for _, arg := range flag.Args() {
		grid, err := parseShape(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			ok = false
			continue
		}
		printGrid(grid, *values, *ascending, *enumerate)
	}
	if !ok {
		os.Exit(1)
	}
}

func parseShape(arg string) (fftgrid.Grid, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(arg)), "x")
	lengths := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fftgrid.Grid{}, fmt.Errorf("shape %q: bad dimension %q", arg, p)
		}
		lengths[i] = n
	}
	grid, err := fftgrid.NewGrid(lengths...)
	if err != nil {
		return fftgrid.Grid{}, fmt.Errorf("shape %q: %w", arg, err)
	}
	return grid, nil
}

func printGrid(grid fftgrid.Grid, values, ascending bool, enumerate int) {
	fmt.Printf("%s  size=%d\n", grid, grid.Size())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Dim\tLength\tMin\tMax\tNyquist Pos\n")
	fmt.Fprintf(tw, "---\t------\t---\t---\t-----------\n")
	for d := 0; d < grid.NDim(); d++ {
		axis, err := grid.Axis(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n", d, axis.Len(), axis.Min(), axis.Max(), (axis.Len()+1)/2)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	if values {
		for d := 0; d < grid.NDim(); d++ {
			axis, _ := grid.Axis(d)
			fmt.Printf("axis %d:", d)
			if ascending {
				for f := range axis.Sorted(false).Values() {
					fmt.Printf(" %d", f)
				}
			} else {
				for f := range axis.Values() {
					fmt.Printf(" %d", f)
				}
			}
			fmt.Println()
		}
	}

	if enumerate > 0 {
		for lin, ix := range grid.All() {
			if lin >= enumerate {
				fmt.Println("...")
				break
			}
			fmt.Printf("%4d  %s\n", lin, ix)
		}
	}
	fmt.Println()
}
