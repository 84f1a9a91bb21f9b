// Package summary describes how the material averages of a property spread.
// The standard deviations stay user-declared; nothing here recomputes them.
package summary

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"semdiff/domain/scale"

	"github.com/montanaflynn/stats"
)

// PropertySummary holds descriptive statistics over a property's averages
type PropertySummary struct {
	Property  string
	Materials int
	Mean      float64
	Median    float64
	Min       float64
	Max       float64
	// Top is the material with the highest average; the first one wins ties
	Top string
}

// Summarize computes the summary of one property
func Summarize(p *scale.Property) (PropertySummary, error) {
	data := stats.Float64Data(p.Averages())
	s := PropertySummary{Property: p.Name, Materials: len(data)}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, fmt.Errorf("summarize %q: %w", p.Name, err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, fmt.Errorf("summarize %q: %w", p.Name, err)
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, fmt.Errorf("summarize %q: %w", p.Name, err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, fmt.Errorf("summarize %q: %w", p.Name, err)
	}

	for _, row := range p.Rows() {
		if row.Average == s.Max {
			s.Top = row.Material
			break
		}
	}
	return s, nil
}

// SummarizeAll computes summaries for every property in dataset order
func SummarizeAll(ds *scale.Dataset) ([]PropertySummary, error) {
	out := make([]PropertySummary, 0, len(ds.Properties))
	for _, p := range ds.Properties {
		s, err := Summarize(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Headers are the column titles of a summary table
var Headers = []string{"Property", "Materials", "Mean", "Median", "Min", "Max", "Highest"}

// Write prints the summaries as an aligned table
func Write(w io.Writer, summaries []PropertySummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(Headers, "\t"))
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			s.Property, s.Materials,
			scale.FormatValue(round(s.Mean)), scale.FormatValue(round(s.Median)),
			scale.FormatValue(s.Min), scale.FormatValue(s.Max), s.Top)
	}
	return tw.Flush()
}

func round(v float64) float64 {
	r, err := stats.Round(v, 3)
	if err != nil {
		return v
	}
	return r
}
