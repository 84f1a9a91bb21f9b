package ports

import (
	"math/rand/v2"

	"semdiff/domain/core"
)

// RNGPort provides seeded random sources so a session's draws can be replayed
type RNGPort interface {
	// Stream returns a deterministic source for a named use within a session
	Stream(sessionID core.SessionID, name string) rand.Source
}
