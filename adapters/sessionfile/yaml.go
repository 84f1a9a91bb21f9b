package sessionfile

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"semdiff/domain/core"
	"semdiff/domain/scale"

	"gopkg.in/yaml.v3"
)

// FileName is the session file written next to the exports
const FileName = "session.yaml"

// Store reads and writes datasets as YAML documents
type Store struct{}

// NewStore creates a YAML session store
func NewStore() *Store {
	return &Store{}
}

type yamlSession struct {
	SessionID  string         `yaml:"session_id"`
	CreatedAt  time.Time      `yaml:"created_at"`
	Range      scale.Range    `yaml:"range"`
	Mode       string         `yaml:"mode"`
	Materials  []string       `yaml:"materials"`
	Properties []yamlProperty `yaml:"properties"`
}

type yamlProperty struct {
	Name string      `yaml:"name"`
	Rows []scale.Row `yaml:"rows"`
}

func (s *Store) Kind() core.ArtifactKind { return core.ArtifactSession }

func (s *Store) Description() string { return "session file" }

func (s *Store) FileName() string { return FileName }

// WriteDataset saves the dataset; it lets the store run as a dataset exporter
func (s *Store) WriteDataset(ctx context.Context, path string, ds *scale.Dataset) error {
	return s.Save(ctx, path, ds)
}

// Save writes ds to path
func (s *Store) Save(ctx context.Context, path string, ds *scale.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	if err := Encode(f, ds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a dataset back from path
func (s *Store) Load(ctx context.Context, path string) (*scale.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes ds as YAML
func Encode(w io.Writer, ds *scale.Dataset) error {
	doc := yamlSession{
		SessionID: ds.SessionID.String(),
		CreatedAt: ds.CreatedAt,
		Range:     ds.Range,
		Mode:      string(ds.Mode),
	}
	for _, m := range ds.Materials {
		doc.Materials = append(doc.Materials, m.Name)
	}
	for _, p := range ds.Properties {
		doc.Properties = append(doc.Properties, yamlProperty{Name: p.Name, Rows: p.Rows()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return enc.Close()
}

// Decode parses a YAML session and checks it is complete
func Decode(r io.Reader) (*scale.Dataset, error) {
	var doc yamlSession
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	id, err := core.ParseSessionID(doc.SessionID)
	if err != nil {
		return nil, err
	}
	rng, err := scale.NewRange(doc.Range.Min, doc.Range.Max)
	if err != nil {
		return nil, err
	}
	mode, err := scale.ParseMode(doc.Mode)
	if err != nil {
		return nil, err
	}

	ds := &scale.Dataset{SessionID: id, CreatedAt: doc.CreatedAt, Range: rng, Mode: mode}
	for _, name := range doc.Materials {
		m, err := scale.NewMaterial(name)
		if err != nil {
			return nil, err
		}
		if ds.HasMaterial(m.Name) {
			return nil, fmt.Errorf("material %q listed twice", m.Name)
		}
		ds.Materials = append(ds.Materials, m)
	}
	for _, yp := range doc.Properties {
		p, err := scale.NewProperty(yp.Name)
		if err != nil {
			return nil, err
		}
		if ds.HasProperty(p.Name) {
			return nil, fmt.Errorf("property %q listed twice", p.Name)
		}
		for _, row := range yp.Rows {
			if !ds.HasMaterial(row.Material) {
				return nil, fmt.Errorf("property %q rates unknown material %q", p.Name, row.Material)
			}
			if !finite(row.Average) || !finite(row.StdDev) {
				return nil, fmt.Errorf("property %q has a non-finite rating for material %q (average %s, standard deviation %s)",
					p.Name, row.Material, scale.FormatValue(row.Average), scale.FormatValue(row.StdDev))
			}
			p.AddMaterial(scale.Material{Name: row.Material}, row.Average, row.StdDev)
		}
		ds.Properties = append(ds.Properties, p)
	}

	if err := ds.Complete(); err != nil {
		return nil, err
	}
	return ds, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
