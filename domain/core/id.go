package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// SessionID identifies one data-entry session and everything it exported
type SessionID ID

func (id SessionID) String() string { return ID(id).String() }

// NewSessionID returns a fresh time-ordered session identifier
func NewSessionID() SessionID {
	return SessionID(NewID())
}

// ParseSessionID parses a string into SessionID
func ParseSessionID(s string) (SessionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("session ID cannot be empty")
	}
	return SessionID(s), nil
}

// Artifact is one file written by an exporter
type Artifact struct {
	Kind     ArtifactKind
	Property string
	Path     string
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	ArtifactChart    ArtifactKind = "chart"
	ArtifactCSV      ArtifactKind = "csv"
	ArtifactWorkbook ArtifactKind = "workbook"
	ArtifactSession  ArtifactKind = "session"
)
