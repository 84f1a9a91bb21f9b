package testkit

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"semdiff/adapters/console"
	"semdiff/domain/core"
	"semdiff/domain/scale"
	"semdiff/internal"
	"semdiff/ports"
)

// TestKit bundles the fakes an app-level test needs
type TestKit struct {
	Prompter *console.Prompter
	Out      *bytes.Buffer
	Logger   *internal.Logger
}

// NewTestKit creates a kit whose prompter answers from the given lines in order.
// Running out of answers behaves like a closed terminal.
func NewTestKit(answers ...string) *TestKit {
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	if len(answers) == 0 {
		in = strings.NewReader("")
	}
	return &TestKit{
		Prompter: console.NewPrompter(in, out),
		Out:      out,
		Logger:   internal.Discard(),
	}
}

// Transcript returns everything printed so far, one entry per line
func (k *TestKit) Transcript() []string {
	text := strings.TrimRight(k.Out.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// RNGAdapter returns a deterministic RNG port
func (k *TestKit) RNGAdapter() ports.RNGPort {
	return &RNGAdapter{Seed: 42}
}

// RNGAdapter derives streams from a fixed seed and the stream name only
type RNGAdapter struct {
	Seed uint64
}

// Stream returns the same source for the same name regardless of session
func (r *RNGAdapter) Stream(_ core.SessionID, name string) rand.Source {
	return rand.NewPCG(r.Seed, hashString(name))
}

// hashString is djb2
func hashString(s string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}
	return h
}

// WarmthDataset returns a complete two-property dataset on a 1..10 range
func WarmthDataset(t *testing.T) *scale.Dataset {
	t.Helper()
	r, err := scale.NewRange(1, 10)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	ds := scale.NewDataset(r, scale.ModeManual)
	ds.Materials = []scale.Material{{Name: "Wood"}, {Name: "Steel"}, {Name: "Glass"}}

	warmth := mustProperty(t, "Warmth")
	warmth.AddMaterial(ds.Materials[0], 7, 1)
	warmth.AddMaterial(ds.Materials[1], 2.5, 0.5)
	warmth.AddMaterial(ds.Materials[2], 3, 1.2)

	hardness := mustProperty(t, "Hard/Soft")
	hardness.AddMaterial(ds.Materials[0], 5, 2)
	hardness.AddMaterial(ds.Materials[1], 9.5, 0.25)
	hardness.AddMaterial(ds.Materials[2], 8, 1)

	ds.Properties = []*scale.Property{warmth, hardness}
	return ds
}

func mustProperty(t *testing.T, name string) *scale.Property {
	t.Helper()
	p, err := scale.NewProperty(name)
	if err != nil {
		t.Fatalf("property %q: %v", name, err)
	}
	return p
}
