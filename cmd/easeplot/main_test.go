package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseCurves(t *testing.T) {
	cases := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{in: "Linear", want: []string{"Linear"}},
		{in: "quad_in, BounceOut", want: []string{"QuadIn", "BounceOut"}},
		{in: "QuadIn,,", want: []string{"QuadIn"}},
		{in: "NotACurve", wantErr: true},
		{in: " , ", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parseCurves(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("parseCurves(%q) = %v, want error", c.in, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("got %d curves, want %d", len(got), len(c.want))
			}
			for i, e := range got {
				if e.Name() != c.want[i] {
					t.Fatalf("curve %d = %s, want %s", i, e.Name(), c.want[i])
				}
			}
		})
	}
}

func TestWriteTable(t *testing.T) {
	curves, _ := parseCurves("Linear,QuadIn")
	var buf bytes.Buffer
	if err := writeTable(&buf, curves, 3); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3:\n%s", len(lines), buf.String())
	}
	if f := strings.Fields(lines[0]); len(f) != 3 || f[1] != "Linear" || f[2] != "QuadIn" {
		t.Fatalf("header = %q", lines[0])
	}
	if f := strings.Fields(lines[2]); len(f) != 3 || f[0] != "0.5000" || f[1] != "0.5000" || f[2] != "0.2500" {
		t.Fatalf("mid row = %q", lines[2])
	}
}

func TestWriteYAML(t *testing.T) {
	curves, _ := parseCurves("QuadIn,CubicOut")
	var buf bytes.Buffer
	if err := writeYAML(&buf, curves, 3); err != nil {
		t.Fatal(err)
	}
	var got map[string][]float64
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if v := got["QuadIn"]; len(v) != 3 || v[0] != 0 || v[1] != 0.25 || v[2] != 1 {
		t.Fatalf("QuadIn = %v", v)
	}
	if v := got["CubicOut"]; len(v) != 3 || v[1] != 0.875 {
		t.Fatalf("CubicOut = %v", v)
	}
}

func TestPlotLinear(t *testing.T) {
	curves, _ := parseCurves("Linear")
	lines := plot(curves[0], 11, 11)
	if len(lines) != 11 {
		t.Fatalf("got %d rows", len(lines))
	}
	for i, line := range lines {
		if len(line) != 12 {
			t.Fatalf("row %d width = %d, want 12", i, len(line))
		}
	}
	if lines[10][1] != '*' {
		t.Fatalf("t=0 not on the bottom row:\n%s", strings.Join(lines, "\n"))
	}
	if lines[0][11] != '*' {
		t.Fatalf("t=1 not on the top row:\n%s", strings.Join(lines, "\n"))
	}
	if lines[5][6] != '*' {
		t.Fatalf("t=0.5 not on the middle row:\n%s", strings.Join(lines, "\n"))
	}
}

func TestPlotOvershootWidensRange(t *testing.T) {
	curves, _ := parseCurves("BackIn")
	lines := plot(curves[0], 21, 10)
	if !strings.Contains(lines[len(lines)-1], "*") {
		t.Fatalf("minimum sample not on the bottom row:\n%s", strings.Join(lines, "\n"))
	}
	if strings.Contains(lines[len(lines)-1], ".") {
		t.Fatalf("zero guide should sit above the undershoot:\n%s", strings.Join(lines, "\n"))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteYAMLReportsWriteError(t *testing.T) {
	curves, _ := parseCurves("Linear")
	if err := writeYAML(failingWriter{}, curves, 3); err == nil {
		t.Fatal("writeYAML to a failing writer returned nil")
	}
}
