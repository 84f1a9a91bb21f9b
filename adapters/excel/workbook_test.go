package excel

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"semdiff/domain/scale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func dataset(t *testing.T, names ...string) *scale.Dataset {
	t.Helper()
	ds := scale.NewDataset(scale.Range{Min: 1, Max: 7}, scale.ModeManual)
	wood := scale.Material{Name: "Wood"}
	steel := scale.Material{Name: "Steel"}
	ds.Materials = []scale.Material{wood, steel}
	for _, name := range names {
		p, err := scale.NewProperty(name)
		require.NoError(t, err)
		p.AddMaterial(wood, 7, 1)
		p.AddMaterial(steel, 2, 0.5)
		ds.Properties = append(ds.Properties, p)
	}
	return ds
}

func TestWriteDataset(t *testing.T) {
	ds := dataset(t, "Warmth", "Hardness")
	path := filepath.Join(t.TempDir(), WorkbookName)

	require.NoError(t, NewWorkbookExporter().WriteDataset(context.Background(), path, ds))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Warmth", "Hardness", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Warmth")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Material", "Average", "Standard Deviation"}, rows[0])
	assert.Equal(t, []string{"Wood", "7", "1"}, rows[1])
	assert.Equal(t, []string{"Steel", "2", "0.5"}, rows[2])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, "Highest", summary[0][6])
	assert.Equal(t, "Warmth", summary[1][0])
	assert.Equal(t, "Wood", summary[1][6])

	session, err := f.GetCellValue(SummarySheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, ds.SessionID.String(), session)
}

func TestWriteDatasetRequiresProperties(t *testing.T) {
	ds := dataset(t)
	err := NewWorkbookExporter().WriteDataset(context.Background(), filepath.Join(t.TempDir(), "x.xlsx"), ds)
	assert.Error(t, err)
}

func TestSheetNames(t *testing.T) {
	props := dataset(t,
		"Warm/Cold",
		"warm/cold",
		"Summary",
		"[draft]",
		strings.Repeat("x", 40),
		strings.Repeat("x", 40),
	).Properties

	names := SheetNames(props)
	assert.Equal(t, "Warm-Cold", names[0])
	assert.Equal(t, "warm-cold (2)", names[1])
	assert.Equal(t, "Summary (2)", names[2])
	assert.Equal(t, "-draft-", names[3])
	assert.Equal(t, strings.Repeat("x", 31), names[4])
	assert.Equal(t, strings.Repeat("x", 27)+" (2)", names[5])
}
