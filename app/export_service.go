package app

import (
	"context"
	"fmt"
	"path/filepath"

	"semdiff/domain/core"
	"semdiff/domain/scale"
	"semdiff/internal"
	"semdiff/internal/errors"
	"semdiff/internal/paths"
	"semdiff/ports"
)

// ExportService writes every export of a dataset into one directory
type ExportService struct {
	dir               string
	propertyExporters []ports.PropertyExporter
	datasetExporters  []ports.DatasetExporter
	prompter          ports.Prompter
	logger            *internal.Logger
}

// NewExportService creates an export service writing into dir. Property
// exporters run per property in the order given; dataset exporters run once
// afterwards.
func NewExportService(dir string, prompter ports.Prompter, logger *internal.Logger, propertyExporters []ports.PropertyExporter, datasetExporters []ports.DatasetExporter) *ExportService {
	return &ExportService{
		dir:               dir,
		propertyExporters: propertyExporters,
		datasetExporters:  datasetExporters,
		prompter:          prompter,
		logger:            logger,
	}
}

// Dir returns the export directory
func (s *ExportService) Dir() string {
	return s.dir
}

// Export writes all artifacts for ds and returns them in write order
func (s *ExportService) Export(ctx context.Context, ds *scale.Dataset) ([]core.Artifact, error) {
	if err := ds.Complete(); err != nil {
		return nil, errors.Wrap(errors.ValidationError(err.Error()), "dataset is not ready for export")
	}

	var artifacts []core.Artifact
	writtenBy := make(map[string]string)
	for _, p := range ds.Properties {
		if err := s.ensureDir(); err != nil {
			return artifacts, err
		}
		for _, exp := range s.propertyExporters {
			file := exp.FileName(p.Name)
			path := paths.New(s.dir, p.Name).Join(file)
			if prev, ok := writtenBy[path]; ok {
				s.logger.Warn("%s for %q overwrites the one written for %q: both map to %s", exp.Kind(), p.Name, prev, file)
				s.prompter.Say("WARNING!!! %s and %s share the file name %s; the file for %s replaces the earlier one.", prev, p.Name, file, p.Name)
			}
			writtenBy[path] = p.Name

			s.prompter.Say("Saving a %s for %s as %s", exp.Description(), p.Name, file)
			s.prompter.Say("...")
			if err := exp.WriteProperty(ctx, path, p, ds.Range); err != nil {
				return artifacts, errors.Wrapf(errors.ExportError(string(exp.Kind()), err), "property %q", p.Name)
			}
			s.prompter.Say("Done!")
			s.logger.Info("wrote %s %s", exp.Kind(), path)
			artifacts = append(artifacts, core.Artifact{Kind: exp.Kind(), Property: p.Name, Path: path})
		}
		s.prompter.Say("Your graph and CSV file have been saved in %s", s.dir)
	}

	for _, exp := range s.datasetExporters {
		path := filepath.Join(s.dir, exp.FileName())
		s.prompter.Say("Saving a %s as %s", exp.Description(), exp.FileName())
		if err := exp.WriteDataset(ctx, path, ds); err != nil {
			return artifacts, errors.ExportError(string(exp.Kind()), err)
		}
		s.logger.Info("wrote %s %s", exp.Kind(), path)
		artifacts = append(artifacts, core.Artifact{Kind: exp.Kind(), Path: path})
	}

	return artifacts, nil
}

func (s *ExportService) ensureDir() error {
	name := filepath.Base(s.dir)
	existed, err := paths.EnsureDir(s.dir)
	if err != nil {
		return errors.ExportError(fmt.Sprintf("directory %s", s.dir), err)
	}
	if existed {
		s.prompter.Say("%s found!", name)
		return nil
	}
	s.prompter.Say("%s directory not found. Making a new directory", name)
	s.prompter.Say("...")
	s.prompter.Say("Done!")
	s.prompter.Say("Directory successfully made")
	s.logger.Info("created export directory %s", s.dir)
	return nil
}
