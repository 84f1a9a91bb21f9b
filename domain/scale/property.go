package scale

import (
	"fmt"
	"strings"
)

// Headers are the column titles of every tabular property export
var Headers = []string{"Material", "Average", "Standard Deviation"}

// Property is a named bipolar scale holding one rating per material.
// Materials keep the order in which they were first added.
type Property struct {
	Name    string
	order   []string
	ratings map[string]Rating
}

// NewProperty trims name and rejects empty names
func NewProperty(name string) (*Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("property name cannot be empty")
	}
	return &Property{Name: name, ratings: make(map[string]Rating)}, nil
}

func (p *Property) String() string { return p.Name }

// AddMaterial records the rating of material. Adding a material that is
// already present replaces its rating and keeps its original position.
func (p *Property) AddMaterial(material Material, avg, stdDev float64) {
	if p.ratings == nil {
		p.ratings = make(map[string]Rating)
	}
	if _, ok := p.ratings[material.Name]; !ok {
		p.order = append(p.order, material.Name)
	}
	p.ratings[material.Name] = Rating{Average: avg, StdDev: stdDev}
}

// Rating returns the rating recorded for the named material
func (p *Property) Rating(material string) (Rating, bool) {
	r, ok := p.ratings[material]
	return r, ok
}

// Len returns the number of materials rated on this property
func (p *Property) Len() int {
	return len(p.order)
}

// Materials returns material names in insertion order
func (p *Property) Materials() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Rows returns (material, average, std dev) rows in insertion order
func (p *Property) Rows() []Row {
	rows := make([]Row, 0, len(p.order))
	for _, name := range p.order {
		r := p.ratings[name]
		rows = append(rows, Row{Material: name, Average: r.Average, StdDev: r.StdDev})
	}
	return rows
}

// Averages returns the average of every material in insertion order
func (p *Property) Averages() []float64 {
	out := make([]float64, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.ratings[name].Average)
	}
	return out
}

// Table renders the property as string cells, header row first
func (p *Property) Table() [][]string {
	table := make([][]string, 0, len(p.order)+1)
	table = append(table, append([]string(nil), Headers...))
	for _, row := range p.Rows() {
		table = append(table, []string{row.Material, FormatValue(row.Average), FormatValue(row.StdDev)})
	}
	return table
}
