package container

import (
	"fmt"
	"io"
	"path/filepath"

	"semdiff/adapters/chart"
	"semdiff/adapters/console"
	"semdiff/adapters/csvfile"
	"semdiff/adapters/excel"
	"semdiff/adapters/generator"
	"semdiff/adapters/rng"
	"semdiff/adapters/sessionfile"
	"semdiff/app"
	"semdiff/domain/core"
	"semdiff/domain/scale"
	"semdiff/internal"
	"semdiff/internal/config"
	"semdiff/ports"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Terminal
	Prompter ports.Prompter
	Out      io.Writer

	// Infrastructure
	RNG          *rng.Seeded
	SessionStore *sessionfile.Store

	// Exporters
	PropertyExporters []ports.PropertyExporter
	DatasetExporters  []ports.DatasetExporter
}

// New wires every adapter from cfg. Prompts are read from in; prompts and
// progress go to out.
func New(cfg *config.Config, logger *internal.Logger, in io.Reader, out io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	c := &Container{
		Config:       cfg,
		Logger:       logger,
		Prompter:     console.NewPrompter(in, out),
		Out:          out,
		RNG:          rng.NewSeeded(cfg.Generator.Seed),
		SessionStore: sessionfile.NewStore(),
	}

	c.PropertyExporters = []ports.PropertyExporter{
		chart.NewErrorBarExporter(cfg.Chart.DPI, cfg.Chart.WidthIn, cfg.Chart.HeightIn),
		csvfile.NewExporter(),
	}
	if cfg.Output.ExportXLSX {
		c.DatasetExporters = append(c.DatasetExporters, excel.NewWorkbookExporter())
	}
	if cfg.Output.SessionFile {
		c.DatasetExporters = append(c.DatasetExporters, c.SessionStore)
	}

	logger.Debug("container ready: output=%s seed=%d exporters=%d+%d",
		cfg.Output.Dir, c.RNG.BaseSeed(), len(c.PropertyExporters), len(c.DatasetExporters))
	return c, nil
}

// OutputDir returns the absolute export directory
func (c *Container) OutputDir() string {
	if abs, err := filepath.Abs(c.Config.Output.Dir); err == nil {
		return abs
	}
	return c.Config.Output.Dir
}

// ExportService builds an export service. The session store is left out
// when withSession is false.
func (c *Container) ExportService(withSession bool) *app.ExportService {
	datasetExporters := c.DatasetExporters
	if !withSession {
		datasetExporters = nil
		for _, exp := range c.DatasetExporters {
			if exp.Kind() != core.ArtifactSession {
				datasetExporters = append(datasetExporters, exp)
			}
		}
	}
	return app.NewExportService(c.OutputDir(), c.Prompter, c.Logger, c.PropertyExporters, datasetExporters)
}

// GeneratorFactory returns the generator factory bound to the configured RNG and jitter bounds
func (c *Container) GeneratorFactory() app.GeneratorFactory {
	return func(mode scale.Mode, sessionID core.SessionID) (ports.ValueGenerator, error) {
		return generator.ForMode(mode, generator.Options{
			Prompter:  c.Prompter,
			RNG:       c.RNG,
			SessionID: sessionID,
			JitterMin: c.Config.Generator.JitterMin,
			JitterMax: c.Config.Generator.JitterMax,
		})
	}
}

// SessionService builds the interactive session service
func (c *Container) SessionService() *app.SessionService {
	return app.NewSessionService(c.Prompter, c.GeneratorFactory(), c.ExportService(true), c.Out, c.Logger)
}

// RenderService builds the service that re-exports saved sessions
func (c *Container) RenderService() *app.RenderService {
	return app.NewRenderService(c.SessionStore, c.ExportService(false), c.Out, c.Logger)
}
