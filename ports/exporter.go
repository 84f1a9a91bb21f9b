package ports

import (
	"context"

	"semdiff/domain/core"
	"semdiff/domain/scale"
)

// PropertyExporter writes one file per property
type PropertyExporter interface {
	Kind() core.ArtifactKind

	// Description is used in progress messages, e.g. "CSV file of semantic differential data"
	Description() string

	// FileName returns the file name (without directory) for the named property
	FileName(property string) string

	WriteProperty(ctx context.Context, path string, p *scale.Property, r scale.Range) error
}

// DatasetExporter writes one file covering the whole dataset
type DatasetExporter interface {
	Kind() core.ArtifactKind
	Description() string
	FileName() string
	WriteDataset(ctx context.Context, path string, ds *scale.Dataset) error
}
