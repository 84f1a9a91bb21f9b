package app

import (
	"io"

	"semdiff/domain/scale"
	"semdiff/internal/summary"
)

// PrintSummary writes the per-property spread of averages to w
func PrintSummary(w io.Writer, ds *scale.Dataset) error {
	summaries, err := summary.SummarizeAll(ds)
	if err != nil {
		return err
	}
	return summary.Write(w, summaries)
}
