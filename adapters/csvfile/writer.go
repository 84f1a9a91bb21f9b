package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"semdiff/domain/core"
	"semdiff/domain/scale"
	"semdiff/internal/paths"
)

// Exporter writes a property as "Material,Average,Standard Deviation" rows
type Exporter struct{}

// NewExporter creates a CSV exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Kind() core.ArtifactKind { return core.ArtifactCSV }

func (e *Exporter) Description() string { return "CSV file of semantic differential data" }

// FileName returns "<safe name>-csv-file.csv"
func (e *Exporter) FileName(property string) string {
	return paths.New("", property).WithExtras("csv", "csv", "file")
}

// WriteProperty writes the property table to path
func (e *Exporter) WriteProperty(ctx context.Context, path string, p *scale.Property, _ scale.Range) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := Encode(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the header row and one row per material in insertion order
func Encode(w io.Writer, p *scale.Property) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(p.Table()); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}
