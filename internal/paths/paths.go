// Package paths turns free-text property names into file names that are safe
// to write under the export directory.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Punctuation is the ASCII punctuation set replaced by MakeSafe.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// MakeSafe replaces every ASCII punctuation character in name with "-".
// Everything else, including spaces and non-ASCII runes, is kept.
func MakeSafe(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(Punctuation, r) {
			return '-'
		}
		return r
	}, name)
}

// FilePath composes export file names for one named item under a directory.
type FilePath struct {
	Dir      string
	SafeName string
}

// New builds a FilePath for name under dir.
func New(dir, name string) FilePath {
	return FilePath{Dir: dir, SafeName: MakeSafe(name)}
}

// WithExtras appends each extra token prefixed with "-" and then ".ext".
//
//	New(dir, "Warmth").WithExtras("csv", "csv", "file") == "Warmth-csv-file.csv"
func (p FilePath) WithExtras(ext string, extras ...string) string {
	var b strings.Builder
	b.WriteString(p.SafeName)
	for _, extra := range extras {
		b.WriteByte('-')
		b.WriteString(extra)
	}
	b.WriteByte('.')
	b.WriteString(ext)
	return b.String()
}

// Join returns file located inside the directory.
func (p FilePath) Join(file string) string {
	return filepath.Join(p.Dir, file)
}

// EnsureDir creates dir (and parents) when missing. It reports whether the
// directory already existed.
func EnsureDir(dir string) (existed bool, err error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, &os.PathError{Op: "mkdir", Path: dir, Err: os.ErrExist}
		}
		return true, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	return false, os.MkdirAll(dir, 0o755)
}
