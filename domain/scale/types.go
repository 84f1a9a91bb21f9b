package scale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Material is an entity under evaluation, identified only by its display name
type Material struct {
	Name string
}

// NewMaterial trims name and rejects empty names
func NewMaterial(name string) (Material, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Material{}, fmt.Errorf("material name cannot be empty")
	}
	return Material{Name: name}, nil
}

func (m Material) String() string { return m.Name }

// Rating is the user-declared summary of a material on one property
type Rating struct {
	Average float64 `yaml:"average"`
	StdDev  float64 `yaml:"std_dev"`
}

// Row is one material's entry in a property, in insertion order
type Row struct {
	Material string  `yaml:"material"`
	Average  float64 `yaml:"average"`
	StdDev   float64 `yaml:"std_dev"`
}

// Range bounds the rating scale. It is a display and validation bound only.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// NewRange validates min <= max and finite bounds
func NewRange(min, max float64) (Range, error) {
	if !isFinite(min) || !isFinite(max) {
		return Range{}, fmt.Errorf("range bounds must be finite numbers")
	}
	if min > max {
		return Range{}, fmt.Errorf("range minimum %s is above maximum %s", FormatValue(min), FormatValue(max))
	}
	return Range{Min: min, Max: max}, nil
}

// Contains reports whether v lies inside [Min, Max]
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// OutOfRange reports whether the average or the standard deviation falls outside the range
func (r Range) OutOfRange(rating Rating) bool {
	return !r.Contains(rating.Average) || !r.Contains(rating.StdDev)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", FormatValue(r.Min), FormatValue(r.Max))
}

// Mode selects how ratings are produced during a session
type Mode string

const (
	ModeManual Mode = "manual"
	ModeJitter Mode = "jitter"
	ModeRandom Mode = "random"
)

// ParseMode parses a mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeManual:
		return ModeManual, nil
	case ModeJitter:
		return ModeJitter, nil
	case ModeRandom:
		return ModeRandom, nil
	}
	return "", fmt.Errorf("unknown generation mode %q", s)
}

// Interactive reports whether ratings in this mode come from the user and
// therefore go through the out-of-range confirmation.
func (m Mode) Interactive() bool {
	return m != ModeRandom
}

// FormatValue renders v as the shortest decimal that round-trips, always
// with a fractional part or an exponent: 7 -> "7.0", 0.5 -> "0.5", 1e-05 -> "1e-05".
func FormatValue(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if math.IsNaN(v) {
		return "nan"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
