package store

import (
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ttpr0/landmark-routing/parser"
	"golang.org/x/text/unicode/norm"
)

var ErrDatasetNotFound = errors.New("dataset not found")
var ErrInvalidName = errors.New("invalid dataset name")

// Dataset is the raw content of a stored dataset file.
type Dataset struct {
	Name    string
	Data    []byte
	ModTime time.Time
}

// DatasetStore is where uploaded datasets live. Implementations must report
// missing datasets with ErrDatasetNotFound.
type DatasetStore interface {
	Save(name string, reader io.Reader) error
	Load(name string) (Dataset, error)
	Stat(name string) (time.Time, error)
}

//*******************************************
// filenames
//*******************************************

var _unsafe_chars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces an uploaded filename to a flat, ASCII-only name.
// It returns an empty string if nothing usable is left.
func SecureFilename(name string) string {
	name = _ToASCII(name)
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.Join(strings.Fields(name), "_")
	name = _unsafe_chars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "." || name == ".." {
		return ""
	}
	return name
}

// decomposes accented letters (NFKD) and drops what is left outside ASCII
func _ToASCII(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AllowedFile reports whether name has a dataset extension the parser understands.
func AllowedFile(name string) bool {
	if !strings.Contains(name, ".") {
		return false
	}
	_, ok := parser.FormatFromFilename(name)
	return ok
}

func _ValidName(name string) bool {
	return name != "" && SecureFilename(name) == name
}
