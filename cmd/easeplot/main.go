package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/milk9111/tweens/easing"
	"gopkg.in/yaml.v3"
)

func main() {
	names := flag.String("easing", "Linear", "comma separated easing names (case and _ insensitive)")
	samples := flag.Int("samples", 11, "samples per curve, including t=0 and t=1")
	plotCurves := flag.Bool("plot", false, "draw ASCII plots instead of a table")
	height := flag.Int("height", 16, "plot height in rows")
	asYAML := flag.Bool("yaml", false, "print samples as YAML")
	list := flag.Bool("list", false, "list easing names and exit")
	flag.Parse()

	if *list {
		for _, name := range easing.Names() {
			fmt.Println(name)
		}
		return
	}

	curves, err := parseCurves(*names)
	if err != nil {
		log.Fatal(err)
	}
	if *samples < 2 {
		log.Fatalf("samples must be at least 2, got %d", *samples)
	}

	switch {
	case *asYAML:
		err = writeYAML(os.Stdout, curves, *samples)
	case *plotCurves:
		for _, e := range curves {
			fmt.Println(e.Name())
			for _, line := range plot(e, *samples, *height) {
				fmt.Println(line)
			}
			fmt.Println()
		}
	default:
		err = writeTable(os.Stdout, curves, *samples)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func parseCurves(list string) ([]easing.Easing, error) {
	var curves []easing.Easing
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		e, ok := easing.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown easing %q (see -list)", name)
		}
		curves = append(curves, e)
	}
	if len(curves) == 0 {
		return nil, fmt.Errorf("no easing given")
	}
	return curves, nil
}

func fraction(i, samples int) float64 {
	return float64(i) / float64(samples-1)
}

func writeTable(w io.Writer, curves []easing.Easing, samples int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "t\t")
	for _, e := range curves {
		fmt.Fprintf(tw, "%s\t", e.Name())
	}
	fmt.Fprintln(tw)
	for i := 0; i < samples; i++ {
		t := fraction(i, samples)
		fmt.Fprintf(tw, "%.4f\t", t)
		for _, e := range curves {
			fmt.Fprintf(tw, "%.4f\t", e.Ease(t))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func writeYAML(w io.Writer, curves []easing.Easing, samples int) error {
	out := make(map[string][]float64, len(curves))
	for _, e := range curves {
		values := make([]float64, samples)
		for i := range values {
			values[i] = e.Ease(fraction(i, samples))
		}
		out[e.Name()] = values
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode samples: %w", err)
	}
	return enc.Close()
}

// plot draws one column per sample. Rows span the sampled range, widened to
// include 0 and 1, which are drawn as dotted guides.
func plot(e easing.Easing, width, height int) []string {
	width = max(width, 2)
	height = max(height, 2)

	values := make([]float64, width)
	lo, hi := 0.0, 1.0
	for i := range values {
		v := e.Ease(fraction(i, width))
		values[i] = v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	row := func(v float64) int {
		return height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(height-1)))
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", width))
	}
	for c := 0; c < width; c++ {
		grid[row(0)][c] = '.'
		grid[row(1)][c] = '.'
	}
	for c, v := range values {
		grid[row(v)][c] = '*'
	}

	lines := make([]string, height)
	for r := range grid {
		lines[r] = "|" + string(grid[r])
	}
	return lines
}
