package rng

import (
	"math/rand/v2"
	"time"

	"semdiff/domain/core"
)

// Seeded derives one PCG stream per (session, name) from a base seed, so the
// same seed and session replay the same draws.
type Seeded struct {
	baseSeed uint64
}

// NewSeeded creates a seeded RNG adapter. A zero seed is replaced by the clock.
func NewSeeded(seed uint64) *Seeded {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Seeded{baseSeed: seed}
}

// BaseSeed returns the seed in use, for logging so a run can be reproduced
func (s *Seeded) BaseSeed() uint64 {
	return s.baseSeed
}

// Stream returns a deterministic source for a named use within a session
func (s *Seeded) Stream(sessionID core.SessionID, name string) rand.Source {
	return rand.NewPCG(s.baseSeed^hashString(sessionID.String()), hashString(name))
}

// hashString is djb2 widened to 64 bits
func hashString(s string) uint64 {
	var hash uint64 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint64(c)
	}
	return hash
}
