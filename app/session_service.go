package app

import (
	"context"
	"fmt"
	"io"

	"semdiff/domain/core"
	"semdiff/domain/scale"
	"semdiff/internal"
	"semdiff/internal/errors"
	"semdiff/ports"
)

// GeneratorFactory builds the value-generation strategy for a session
type GeneratorFactory func(mode scale.Mode, sessionID core.SessionID) (ports.ValueGenerator, error)

// SessionService runs one interactive entry session: range, generation mode,
// materials, properties, ratings, then exports.
type SessionService struct {
	prompter     ports.Prompter
	newGenerator GeneratorFactory
	exporter     *ExportService
	summaryOut   io.Writer
	logger       *internal.Logger
}

// SessionResult is what a finished session produced
type SessionResult struct {
	Dataset   *scale.Dataset
	Artifacts []core.Artifact
}

// NewSessionService creates a session service. The summary table goes to summaryOut.
func NewSessionService(prompter ports.Prompter, newGenerator GeneratorFactory, exporter *ExportService, summaryOut io.Writer, logger *internal.Logger) *SessionService {
	return &SessionService{
		prompter:     prompter,
		newGenerator: newGenerator,
		exporter:     exporter,
		summaryOut:   summaryOut,
		logger:       logger,
	}
}

// Run drives the whole session
func (s *SessionService) Run(ctx context.Context) (*SessionResult, error) {
	r, err := s.askRange(ctx)
	if err != nil {
		return nil, err
	}
	mode, err := s.askMode(ctx)
	if err != nil {
		return nil, err
	}

	ds := scale.NewDataset(r, mode)
	s.logger.Info("session %s started: range %s, mode %s", ds.SessionID, r, mode)

	if err := s.askMaterials(ctx, ds); err != nil {
		return nil, err
	}
	if err := s.askProperties(ctx, ds); err != nil {
		return nil, err
	}

	gen, err := s.newGenerator(mode, ds.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up value generation")
	}
	if err := NewDatasetBuilder(s.prompter, gen, s.logger).Build(ctx, ds); err != nil {
		return nil, err
	}

	artifacts, err := s.exporter.Export(ctx, ds)
	if err != nil {
		return &SessionResult{Dataset: ds, Artifacts: artifacts}, err
	}
	if err := PrintSummary(s.summaryOut, ds); err != nil {
		s.logger.Warn("summary unavailable: %v", err)
	}

	s.logger.Info("session %s finished: %d files written", ds.SessionID, len(artifacts))
	return &SessionResult{Dataset: ds, Artifacts: artifacts}, nil
}

func (s *SessionService) askRange(ctx context.Context) (scale.Range, error) {
	min, err := s.prompter.Float(ctx, "Please enter the minimum rating limit:")
	if err != nil {
		return scale.Range{}, err
	}
	for {
		max, err := s.prompter.Float(ctx, "Please enter the maximum rating limit:")
		if err != nil {
			return scale.Range{}, err
		}
		r, err := scale.NewRange(min, max)
		if err == nil {
			return r, nil
		}
		s.prompter.Say("The maximum rating limit must not be below the minimum (%s)!", scale.FormatValue(min))
	}
}

func (s *SessionService) askMode(ctx context.Context) (scale.Mode, error) {
	random, err := s.prompter.YesNo(ctx, "Do you want to generate totally random values for your material properties and standard deviations? (y/n)")
	if err != nil {
		return "", err
	}
	if random {
		sure, err := s.prompter.YesNo(ctx, "WARNING!!! These values are completely and totally random. No guarantee can be made for their relevance to the materials specified. Do you still want to proceed? (y/n)")
		if err != nil {
			return "", err
		}
		if sure {
			return scale.ModeRandom, nil
		}
	}

	jitter, err := s.prompter.YesNo(ctx, "Would you like to add a small amount of randomness to inputted values? (y/n)")
	if err != nil {
		return "", err
	}
	if jitter {
		return scale.ModeJitter, nil
	}
	return scale.ModeManual, nil
}

func (s *SessionService) askMaterials(ctx context.Context, ds *scale.Dataset) error {
	return s.askNames(ctx, "material", func(name string) bool {
		if ds.HasMaterial(name) {
			return false
		}
		m, err := scale.NewMaterial(name)
		if err != nil {
			return false
		}
		ds.Materials = append(ds.Materials, m)
		return true
	})
}

func (s *SessionService) askProperties(ctx context.Context, ds *scale.Dataset) error {
	return s.askNames(ctx, "property", func(name string) bool {
		if ds.HasProperty(name) {
			return false
		}
		p, err := scale.NewProperty(name)
		if err != nil {
			return false
		}
		ds.Properties = append(ds.Properties, p)
		return true
	})
}

// askNames collects names until the user declines to add another. add
// reports false for a name that is already present.
func (s *SessionService) askNames(ctx context.Context, kind string, add func(name string) bool) error {
	for {
		name, err := s.prompter.Line(ctx, fmt.Sprintf("Please enter a %s.", kind))
		if err != nil {
			return err
		}
		if name == "" {
			s.prompter.Say("Please enter a non-empty %s name!", kind)
			continue
		}
		if !add(name) {
			s.prompter.Say("%s has already been added.", name)
		}

		more, err := s.prompter.YesNo(ctx, fmt.Sprintf("Do you want to add another %s? (y/n)", kind))
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
