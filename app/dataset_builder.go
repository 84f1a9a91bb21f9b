package app

import (
	"context"
	"fmt"
	"strings"

	"semdiff/domain/scale"
	"semdiff/internal"
	"semdiff/ports"
)

// DatasetBuilder fills every (property, material) pair of a session from a
// value-generation strategy, asking for confirmation when an interactive
// value leaves the declared range.
type DatasetBuilder struct {
	prompter  ports.Prompter
	generator ports.ValueGenerator
	logger    *internal.Logger
}

// NewDatasetBuilder creates a builder
func NewDatasetBuilder(prompter ports.Prompter, generator ports.ValueGenerator, logger *internal.Logger) *DatasetBuilder {
	return &DatasetBuilder{prompter: prompter, generator: generator, logger: logger}
}

// Build rates every material on every property, property by property.
// Pairs that already hold a rating are left alone.
func (b *DatasetBuilder) Build(ctx context.Context, ds *scale.Dataset) error {
	if len(ds.Materials) == 0 || len(ds.Properties) == 0 {
		return ds.Complete()
	}

	b.prompter.Say("Your materials are %s", listNames(ds.Materials))
	b.prompter.Say("Your properties are %s", listProperties(ds.Properties))

	for _, p := range ds.Properties {
		for _, m := range ds.Materials {
			if _, done := p.Rating(m.Name); done {
				continue
			}
			rating, err := b.rate(ctx, p.Name, m, ds.Range)
			if err != nil {
				return err
			}
			p.AddMaterial(m, rating.Average, rating.StdDev)
			b.logger.Debug("rated %s on %s: avg=%s std=%s", m, p.Name,
				scale.FormatValue(rating.Average), scale.FormatValue(rating.StdDev))
		}
	}
	return ds.Complete()
}

func (b *DatasetBuilder) rate(ctx context.Context, property string, m scale.Material, r scale.Range) (scale.Rating, error) {
	for {
		rating, err := b.generator.Generate(ctx, property, m, r)
		if err != nil {
			return scale.Rating{}, err
		}
		if !b.generator.Mode().Interactive() || !r.OutOfRange(rating) {
			return rating, nil
		}

		b.logger.Warn("%s on %s outside %s: avg=%s std=%s", m, property, r,
			scale.FormatValue(rating.Average), scale.FormatValue(rating.StdDev))
		keep, err := b.prompter.YesNo(ctx, fmt.Sprintf(
			"WARNING!!! The values specified for average and standard deviation of %s's %s-ness are outside of the maximum and minimum values. Do you wish to continue? (y/n)",
			m, property))
		if err != nil {
			return scale.Rating{}, err
		}
		if keep {
			return rating, nil
		}
	}
}

func listNames(materials []scale.Material) string {
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func listProperties(props []*scale.Property) string {
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}
