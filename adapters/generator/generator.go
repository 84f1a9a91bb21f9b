// Package generator holds the value-generation strategies used to fill a
// dataset: typed in by the user, typed in and jittered, or drawn at random.
package generator

import (
	"context"
	"fmt"
	"math/rand/v2"

	"semdiff/domain/core"
	"semdiff/domain/scale"
	"semdiff/ports"

	"gonum.org/v1/gonum/stat/distuv"
)

// Manual asks the user for both values
type Manual struct {
	prompter ports.Prompter
}

// NewManual creates a generator that prompts for every value
func NewManual(prompter ports.Prompter) *Manual {
	return &Manual{prompter: prompter}
}

func (g *Manual) Mode() scale.Mode { return scale.ModeManual }

// Generate prompts for the average and then the standard deviation
func (g *Manual) Generate(ctx context.Context, property string, material scale.Material, _ scale.Range) (scale.Rating, error) {
	avg, err := g.prompter.Float(ctx, averageQuestion(property, material))
	if err != nil {
		return scale.Rating{}, err
	}
	std, err := g.prompter.Float(ctx, stdDevQuestion(property, material))
	if err != nil {
		return scale.Rating{}, err
	}
	return scale.Rating{Average: avg, StdDev: std}, nil
}

// Jitter asks the user for both values and scales each by an independent
// uniform factor.
type Jitter struct {
	prompter ports.Prompter
	factor   distuv.Uniform
}

// NewJitter creates a jittering generator drawing factors in [min, max] from src
func NewJitter(prompter ports.Prompter, min, max float64, src rand.Source) *Jitter {
	return &Jitter{
		prompter: prompter,
		factor:   distuv.Uniform{Min: min, Max: max, Src: src},
	}
}

func (g *Jitter) Mode() scale.Mode { return scale.ModeJitter }

// Generate prompts for each value and multiplies it by a fresh factor
func (g *Jitter) Generate(ctx context.Context, property string, material scale.Material, _ scale.Range) (scale.Rating, error) {
	avg, err := g.prompter.Float(ctx, averageQuestion(property, material))
	if err != nil {
		return scale.Rating{}, err
	}
	avg *= g.factor.Rand()

	std, err := g.prompter.Float(ctx, stdDevQuestion(property, material))
	if err != nil {
		return scale.Rating{}, err
	}
	std *= g.factor.Rand()

	return scale.Rating{Average: avg, StdDev: std}, nil
}

// Random draws both values without asking. The average is uniform over the
// range; the standard deviation is uniform over [min, max/4].
type Random struct {
	src rand.Source
}

// NewRandom creates a random generator reading from src
func NewRandom(src rand.Source) *Random {
	return &Random{src: src}
}

func (g *Random) Mode() scale.Mode { return scale.ModeRandom }

// Generate draws an average and a standard deviation from the declared range
func (g *Random) Generate(ctx context.Context, _ string, _ scale.Material, r scale.Range) (scale.Rating, error) {
	if err := ctx.Err(); err != nil {
		return scale.Rating{}, err
	}
	avg := distuv.Uniform{Min: r.Min, Max: r.Max, Src: g.src}.Rand()
	std := distuv.Uniform{Min: r.Min, Max: r.Max / 4, Src: g.src}.Rand()
	return scale.Rating{Average: avg, StdDev: std}, nil
}

func averageQuestion(property string, material scale.Material) string {
	return fmt.Sprintf("Enter a value for average %s-ness, of %s:", property, material)
}

func stdDevQuestion(property string, material scale.Material) string {
	return fmt.Sprintf("Enter a value for standard deviation around %s's %s-ness:", material, property)
}

// Options carries what the strategies need
type Options struct {
	Prompter  ports.Prompter
	RNG       ports.RNGPort
	SessionID core.SessionID
	JitterMin float64
	JitterMax float64
}

// ForMode builds the strategy for mode. Each random strategy gets its own
// named stream of the session.
func ForMode(mode scale.Mode, opts Options) (ports.ValueGenerator, error) {
	switch mode {
	case scale.ModeManual:
		return NewManual(opts.Prompter), nil
	case scale.ModeJitter:
		return NewJitter(opts.Prompter, opts.JitterMin, opts.JitterMax, opts.RNG.Stream(opts.SessionID, "jitter")), nil
	case scale.ModeRandom:
		return NewRandom(opts.RNG.Stream(opts.SessionID, "random")), nil
	}
	return nil, fmt.Errorf("no generator for mode %q", mode)
}
