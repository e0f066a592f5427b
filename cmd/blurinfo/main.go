// Command blurinfo prints the parameters of an iterated box blur.
//
// Usage:
//
//	blurinfo [flags]
//
// For the given matrix dimensions it prints the derived window sizes, the
// phase breakdown of the 1D kernel on each axis, and the kernel backend
// selected for the current CPU.
//
// Examples:
//
//	blurinfo -rows 512 -cols 512
//	blurinfo -rows 512 -cols 512 -window-rows 9 -passes 3
//	blurinfo -cols 1024 -weights
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-boxblur"
)

var (
	flagRows       = flag.Int("rows", 512, "number of matrix rows")
	flagCols       = flag.Int("cols", 512, "number of matrix columns")
	flagWindowRows = flag.Int("window-rows", 0, "window size along rows (0 = derive from cols)")
	flagWindowCols = flag.Int("window-cols", 0, "window size along columns (0 = derive from rows)")
	flagPasses     = flag.Int("passes", boxblur.DefaultPasses, "number of row+column repetitions")
	flagWeights    = flag.Bool("weights", false, "print the effective 1D kernel weights per axis")
)

func main() {
	flag.Parse()

	if *flagRows < 1 || *flagCols < 1 {
		fmt.Fprintln(os.Stderr, "blurinfo: rows and cols must be >= 1")
		os.Exit(2)
	}

	windowRows := *flagWindowRows
	if windowRows == 0 {
		windowRows = boxblur.WindowSizeForDimension(*flagCols)
	}
	windowCols := *flagWindowCols
	if windowCols == 0 {
		windowCols = boxblur.WindowSizeForDimension(*flagRows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "matrix\t%d x %d\n", *flagRows, *flagCols)
	fmt.Fprintf(w, "kernel backend\t%s\n", boxblur.SelectedKernel())
	fmt.Fprintf(w, "passes\t%d\n", *flagPasses)
	fmt.Fprintln(w)

	printAxis(w, "row pass", *flagCols, windowRows)
	printAxis(w, "column pass", *flagRows, windowCols)
	w.Flush()

	if *flagWeights {
		printWeights("row pass", *flagCols, windowRows, *flagPasses)
		printWeights("column pass", *flagRows, windowCols, *flagPasses)
	}
}

// printAxis prints the four phase lengths of the 1D kernel for one axis.
func printAxis(w *tabwriter.Writer, name string, length, windowSize int) {
	half := (windowSize + 2) / 2

	warmup := half - 1
	growth := windowSize - half + 1
	steady := length - windowSize
	if steady < 0 {
		steady = 0
	}
	shrink := half - 1

	fmt.Fprintf(w, "%s\twindow %d over length %d\n", name, windowSize, length)
	fmt.Fprintf(w, "  warm-up\t%d samples (no output)\n", warmup)
	fmt.Fprintf(w, "  growth\t%d outputs\n", growth)
	fmt.Fprintf(w, "  steady\t%d outputs (%d unrolled blocks)\n", steady, steady/8)
	fmt.Fprintf(w, "  shrink\t%d outputs\n", shrink)
}

// printWeights prints the nonzero span of the effective iterated kernel.
func printWeights(name string, length, windowSize, passes int) {
	h, err := boxblur.ImpulseResponse(length, windowSize, passes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blurinfo: %v\n", err)
		os.Exit(1)
	}

	lo, hi := 0, len(h)-1
	for lo < hi && h[lo] == 0 {
		lo++
	}
	for hi > lo && h[hi] == 0 {
		hi--
	}

	fmt.Printf("\n%s effective kernel (%d taps):\n", name, hi-lo+1)
	for i := lo; i <= hi; i++ {
		fmt.Printf("  h[%+d] = %.6f\n", i-length/2, h[i])
	}
}
