package excel

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"semdiff/domain/core"
	"semdiff/domain/scale"
	"semdiff/internal/summary"

	"github.com/xuri/excelize/v2"
)

const (
	// WorkbookName is the file written into the export directory
	WorkbookName = "semantic-differential-scales.xlsx"
	// SummarySheet lists the per-property summaries
	SummarySheet = "Summary"

	maxSheetNameLen = 31
	defaultSheet    = "Sheet1"
)

// WorkbookExporter writes every property of a dataset as its own sheet plus a summary sheet
type WorkbookExporter struct{}

// NewWorkbookExporter creates a workbook exporter
func NewWorkbookExporter() *WorkbookExporter {
	return &WorkbookExporter{}
}

func (e *WorkbookExporter) Kind() core.ArtifactKind { return core.ArtifactWorkbook }

func (e *WorkbookExporter) Description() string { return "workbook of all properties" }

func (e *WorkbookExporter) FileName() string { return WorkbookName }

// WriteDataset builds the workbook and saves it to path
func (e *WorkbookExporter) WriteDataset(ctx context.Context, path string, ds *scale.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ds.Properties) == 0 {
		return fmt.Errorf("dataset has no properties to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	names := SheetNames(ds.Properties)
	for i, p := range ds.Properties {
		sheet := names[i]
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
		}
		if err := writePropertySheet(f, sheet, p); err != nil {
			return err
		}
	}

	if err := writeSummarySheet(f, ds); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writePropertySheet(f *excelize.File, sheet string, p *scale.Property) error {
	header := make([]interface{}, len(scale.Headers))
	for i, h := range scale.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %q: %w", sheet, err)
	}

	for i, row := range p.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Material, row.Average, row.StdDev}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write %q row %d: %w", sheet, i+1, err)
		}
	}
	return f.SetColWidth(sheet, "A", "C", 20)
}

func writeSummarySheet(f *excelize.File, ds *scale.Dataset) error {
	summaries, err := summary.SummarizeAll(ds)
	if err != nil {
		return err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	header := make([]interface{}, len(summary.Headers))
	for i, h := range summary.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return err
	}
	for i, s := range summaries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{s.Property, s.Materials, s.Mean, s.Median, s.Min, s.Max, s.Top}
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return err
		}
	}

	meta := [][]interface{}{
		{"Session", ds.SessionID.String()},
		{"Range min", ds.Range.Min},
		{"Range max", ds.Range.Max},
		{"Mode", string(ds.Mode)},
	}
	start := len(summaries) + 3
	for i, row := range meta {
		cell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// SheetNames maps property names to unique, Excel-valid sheet names.
// "Summary" is reserved for the summary sheet.
func SheetNames(props []*scale.Property) []string {
	used := map[string]bool{strings.ToLower(SummarySheet): true}
	out := make([]string, len(props))
	for i, p := range props {
		base := sheetName(p.Name)
		name := base
		for n := 2; used[strings.ToLower(name)]; n++ {
			suffix := fmt.Sprintf(" (%d)", n)
			name = truncate(base, maxSheetNameLen-len(suffix)) + suffix
		}
		used[strings.ToLower(name)] = true
		out[i] = name
	}
	return out
}

func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, name)
	name = strings.Trim(name, "' ")
	if name == "" {
		name = "Property"
	}
	return truncate(name, maxSheetNameLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
