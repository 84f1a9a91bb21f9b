package scale

import (
	"fmt"
	"time"

	"semdiff/domain/core"
)

// Dataset is everything one entry session produced
type Dataset struct {
	SessionID  core.SessionID
	CreatedAt  time.Time
	Range      Range
	Mode       Mode
	Materials  []Material
	Properties []*Property
}

// NewDataset creates an empty dataset for a fresh session
func NewDataset(r Range, mode Mode) *Dataset {
	return &Dataset{
		SessionID: core.NewSessionID(),
		CreatedAt: time.Now().UTC(),
		Range:     r,
		Mode:      mode,
	}
}

// HasMaterial reports whether a material with that name was already added
func (d *Dataset) HasMaterial(name string) bool {
	for _, m := range d.Materials {
		if m.Name == name {
			return true
		}
	}
	return false
}

// HasProperty reports whether a property with that name was already added
func (d *Dataset) HasProperty(name string) bool {
	return d.Property(name) != nil
}

// Property returns the named property or nil
func (d *Dataset) Property(name string) *Property {
	for _, p := range d.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Complete checks that every property rates every material
func (d *Dataset) Complete() error {
	if len(d.Materials) == 0 {
		return fmt.Errorf("dataset has no materials")
	}
	if len(d.Properties) == 0 {
		return fmt.Errorf("dataset has no properties")
	}
	for _, p := range d.Properties {
		for _, m := range d.Materials {
			if _, ok := p.Rating(m.Name); !ok {
				return fmt.Errorf("property %q has no rating for material %q", p.Name, m.Name)
			}
		}
	}
	return nil
}
