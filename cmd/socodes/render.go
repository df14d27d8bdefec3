package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socodes/catalog"
	"github.com/katalvlaran/socodes/code"
)

// codeView is the JSON/YAML form of a code.
type codeView struct {
	Length          int      `json:"length" yaml:"length"`
	Dimension       int      `json:"dimension" yaml:"dimension"`
	Generator       []string `json:"generator" yaml:"generator"`
	MinimumDistance int      `json:"minimum_distance" yaml:"minimum_distance"`
	DoublyEven      bool     `json:"doubly_even" yaml:"doubly_even"`
	Key             string   `json:"key,omitempty" yaml:"key,omitempty"`
}

func viewOf(c *code.LinearCode) (codeView, error) {
	dmin, err := c.MinimumDistance()
	if err != nil {
		return codeView{}, err
	}
	echelon, _ := c.GeneratorMatrix().RREF()
	rows := make([]string, 0, echelon.Rows())
	for _, v := range echelon.RowVectors() {
		b := make([]byte, v.Len())
		for j, x := range v.Bits() {
			b[j] = '0' + x
		}
		rows = append(rows, string(b))
	}

	return codeView{
		Length:          c.Length(),
		Dimension:       c.Dimension(),
		Generator:       rows,
		MinimumDistance: dmin,
		DoublyEven:      c.IsDoublyEven(),
	}, nil
}

// writeText prints c and its generator matrix in reduced echelon form:
//
//	[4, 1] linear code over GF(2)
//	[1 1 1 1]
func writeText(w io.Writer, c *code.LinearCode) error {
	echelon, _ := c.GeneratorMatrix().RREF()
	_, err := fmt.Fprintf(w, "%v\n%v\n", c, echelon)

	return err
}

// encode writes v as indented JSON or as YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// codeSink receives codes one at a time and renders them in format.
// Text is streamed; JSON and YAML are written as one document by flush.
type codeSink struct {
	w      io.Writer
	format string
	views  []codeView
	count  int
}

func (s *codeSink) add(c *code.LinearCode) error {
	s.count++
	if s.format == "text" {
		return writeText(s.w, c)
	}
	v, err := viewOf(c)
	if err != nil {
		return err
	}
	s.views = append(s.views, v)

	return nil
}

func (s *codeSink) flush() error {
	if s.format == "text" {
		return nil
	}
	if s.views == nil {
		s.views = []codeView{}
	}

	return encode(s.w, s.format, s.views)
}

// writeRuns prints a run table or a JSON/YAML document.
func writeRuns(w io.Writer, format string, runs []catalog.Run) error {
	if format != "text" {
		if runs == nil {
			runs = []catalog.Run{}
		}
		return encode(w, format, runs)
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "no runs found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tN\tK\tB\tEXACT\tSTARTED\tCODES")
	for _, r := range runs {
		count := "-"
		if r.Finished {
			count = fmt.Sprint(r.Count)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%t\t%s\t%s\n",
			r.ID, r.Params.N, r.Params.K, r.Params.B, r.Params.Exact,
			r.StartedAt.Format(time.DateTime), count)
	}

	return tw.Flush()
}

// writeEntries renders stored catalog entries.
func writeEntries(w io.Writer, format string, entries []catalog.Entry) error {
	sink := &codeSink{w: w, format: format}
	for _, e := range entries {
		if err := sink.add(e.Code); err != nil {
			return err
		}
		if n := len(sink.views); n > 0 {
			sink.views[n-1].Key = e.Key
		}
	}

	return sink.flush()
}
