// Package text supplies the words a practice session is built from.
package text

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPhrase is practiced when no usable text is given.
const DefaultPhrase = "The Buddha’s first teaching was called the Dhammacakkappavattana\nShift ' test: \"\n"

// Reason records where the words came from.
type Reason int

const (
	// ReasonFile means the words were read from the named file.
	ReasonFile Reason = iota
	// ReasonEmptyInput means no filename was given.
	ReasonEmptyInput
	// ReasonFileMissing means the named file does not exist.
	ReasonFileMissing
	// ReasonFileEmpty means the file held only whitespace.
	ReasonFileEmpty
)

// Message is the notice printed before practice starts.
func (r Reason) Message() string {
	switch r {
	case ReasonEmptyInput:
		return "No filename given. Using default text."
	case ReasonFileMissing:
		return "File not found. Using default text."
	case ReasonFileEmpty:
		return "File is empty or whitespace. Using default text."
	default:
		return "Successfully read file."
	}
}

// UsesDefault reports whether the default phrase was substituted.
func (r Reason) UsesDefault() bool {
	return r != ReasonFile
}

// Source is a loaded practice text.
type Source struct {
	Path   string
	Reason Reason
	Words  []string
}

var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", "\"",
	"”", "\"",
)

// Normalize replaces curly quotes with their ASCII forms.
func Normalize(s string) string {
	return quoteReplacer.Replace(s)
}

// Words normalizes body and splits it on whitespace.
func Words(body string) []string {
	return strings.Fields(Normalize(body))
}

// Load reads name relative to dir. A blank name, a missing file, or a file
// holding only whitespace falls back to DefaultPhrase; other read errors are
// returned.
func Load(dir, name string) (Source, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback("", ReasonEmptyInput), nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fallback(path, ReasonFileMissing), nil
		}
		return Source{}, fmt.Errorf("failed to stat text file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fallback(path, ReasonFileMissing), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read text file: %w", err)
	}
	words := Words(string(data))
	if len(words) == 0 {
		return fallback(path, ReasonFileEmpty), nil
	}
	return Source{Path: path, Reason: ReasonFile, Words: words}, nil
}

// Default returns the built-in phrase.
func Default() Source {
	return fallback("", ReasonEmptyInput)
}

func fallback(path string, reason Reason) Source {
	return Source{Path: path, Reason: reason, Words: Words(DefaultPhrase)}
}
