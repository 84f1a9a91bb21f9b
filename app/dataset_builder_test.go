package app

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"semdiff/adapters/generator"
	"semdiff/domain/scale"
	"semdiff/internal/errors"
	"semdiff/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func newManualDataset(t *testing.T, materials []string, properties ...string) *scale.Dataset {
	t.Helper()
	r, err := scale.NewRange(1, 10)
	require.NoError(t, err)
	ds := scale.NewDataset(r, scale.ModeManual)
	for _, name := range materials {
		ds.Materials = append(ds.Materials, scale.Material{Name: name})
	}
	for _, name := range properties {
		p, err := scale.NewProperty(name)
		require.NoError(t, err)
		ds.Properties = append(ds.Properties, p)
	}
	return ds
}

func TestDatasetBuilderRatesPropertyByProperty(t *testing.T) {
	kit := testkit.NewTestKit(
		"7", "1", // Warmth, Wood
		"2", "1.5", // Warmth, Steel
		"4", "2", // Hardness, Wood
		"9", "1", // Hardness, Steel
	)
	ds := newManualDataset(t, []string{"Wood", "Steel"}, "Warmth", "Hardness")

	b := NewDatasetBuilder(kit.Prompter, generator.NewManual(kit.Prompter), kit.Logger)
	require.NoError(t, b.Build(context.Background(), ds))

	warmth := ds.Property("Warmth")
	got, ok := warmth.Rating("Steel")
	require.True(t, ok)
	assert.Equal(t, scale.Rating{Average: 2, StdDev: 1.5}, got)

	got, ok = ds.Property("Hardness").Rating("Wood")
	require.True(t, ok)
	assert.Equal(t, scale.Rating{Average: 4, StdDev: 2}, got)

	lines := kit.Transcript()
	assert.Equal(t, "Your materials are [Wood, Steel]", lines[0])
	assert.Equal(t, "Your properties are [Warmth, Hardness]", lines[1])
	assert.Equal(t, "Enter a value for average Warmth-ness, of Wood:", lines[2])
	assert.Equal(t, "Enter a value for standard deviation around Wood's Warmth-ness:", lines[3])
}

func TestDatasetBuilderReasksAfterDeclinedRangeWarning(t *testing.T) {
	kit := testkit.NewTestKit(
		"12", "1", // outside 1..10
		"n",
		"8", "1",
	)
	ds := newManualDataset(t, []string{"Wood"}, "Warmth")

	b := NewDatasetBuilder(kit.Prompter, generator.NewManual(kit.Prompter), kit.Logger)
	require.NoError(t, b.Build(context.Background(), ds))

	got, _ := ds.Property("Warmth").Rating("Wood")
	assert.Equal(t, 8.0, got.Average)
	assert.Contains(t, kit.Out.String(),
		"WARNING!!! The values specified for average and standard deviation of Wood's Warmth-ness are outside of the maximum and minimum values. Do you wish to continue? (y/n)")
}

func TestDatasetBuilderRejittersAfterDeclinedRangeWarning(t *testing.T) {
	kit := testkit.NewTestKit(
		"20", "5", // far outside 1..10 for any factor in [0.8, 1.2]
		"n",
		"5", "5",
	)
	ds := newManualDataset(t, []string{"Wood"}, "Warmth")
	ds.Mode = scale.ModeJitter

	gen := generator.NewJitter(kit.Prompter, 0.8, 1.2, rand.NewPCG(1, 2))
	b := NewDatasetBuilder(kit.Prompter, gen, kit.Logger)
	require.NoError(t, b.Build(context.Background(), ds))

	// Replay the same stream: two factors for the declined pair, two for the kept one.
	factors := distuv.Uniform{Min: 0.8, Max: 1.2, Src: rand.NewPCG(1, 2)}
	factors.Rand()
	factors.Rand()
	wantAvg := 5 * factors.Rand()
	wantStd := 5 * factors.Rand()

	got, ok := ds.Property("Warmth").Rating("Wood")
	require.True(t, ok)
	assert.InDelta(t, wantAvg, got.Average, 1e-12)
	assert.InDelta(t, wantStd, got.StdDev, 1e-12)
	assert.NotEqual(t, 5.0, got.Average)

	out := kit.Out.String()
	assert.Equal(t, 2, strings.Count(out, "Enter a value for average Warmth-ness, of Wood:"))
	assert.Equal(t, 1, strings.Count(out, "WARNING!!!"))
}

func TestDatasetBuilderKeepsConfirmedOutOfRangeValue(t *testing.T) {
	kit := testkit.NewTestKit("5", "0", "y")
	ds := newManualDataset(t, []string{"Wood"}, "Warmth")

	b := NewDatasetBuilder(kit.Prompter, generator.NewManual(kit.Prompter), kit.Logger)
	require.NoError(t, b.Build(context.Background(), ds))

	got, _ := ds.Property("Warmth").Rating("Wood")
	assert.Equal(t, scale.Rating{Average: 5, StdDev: 0}, got)
}

func TestDatasetBuilderRandomModeSkipsRangeWarning(t *testing.T) {
	kit := testkit.NewTestKit()
	ds := newManualDataset(t, []string{"Wood", "Steel", "Glass"}, "Warmth")
	ds.Mode = scale.ModeRandom

	gen, err := generator.ForMode(scale.ModeRandom, generator.Options{RNG: kit.RNGAdapter(), SessionID: ds.SessionID})
	require.NoError(t, err)

	b := NewDatasetBuilder(kit.Prompter, gen, kit.Logger)
	require.NoError(t, b.Build(context.Background(), ds))

	for _, row := range ds.Property("Warmth").Rows() {
		assert.GreaterOrEqual(t, row.Average, 1.0)
		assert.Less(t, row.Average, 10.0)
		assert.GreaterOrEqual(t, row.StdDev, 1.0)
		assert.Less(t, row.StdDev, 2.5)
	}
	assert.NotContains(t, kit.Out.String(), "WARNING")
}

func TestDatasetBuilderSkipsRatedPairs(t *testing.T) {
	kit := testkit.NewTestKit("3", "1")
	ds := newManualDataset(t, []string{"Wood", "Steel"}, "Warmth")
	ds.Property("Warmth").AddMaterial(ds.Materials[0], 7, 1)

	b := NewDatasetBuilder(kit.Prompter, generator.NewManual(kit.Prompter), kit.Logger)
	require.NoError(t, b.Build(context.Background(), ds))

	assert.NotContains(t, kit.Out.String(), "of Wood:")
	got, _ := ds.Property("Warmth").Rating("Steel")
	assert.Equal(t, 3.0, got.Average)
}

func TestDatasetBuilderStopsWhenInputCloses(t *testing.T) {
	kit := testkit.NewTestKit("7")
	ds := newManualDataset(t, []string{"Wood"}, "Warmth")

	b := NewDatasetBuilder(kit.Prompter, generator.NewManual(kit.Prompter), kit.Logger)
	err := b.Build(context.Background(), ds)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInputClosed, errors.GetCode(err))
}
