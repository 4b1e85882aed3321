package record

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/camuuid/category"
)

// History holds the identifiers found in existing record files.
type History struct {
	Identifiers []string
	Files       []string
}

// Scanner collects previously issued identifiers from a directory.
type Scanner struct {
	fs       afs.Service
	listener Listener
}

// Scan reads every record file in dirURL belonging to one of categories and
// returns their identifiers. Only a failure to list the directory is fatal;
// unreadable files are reported to the listener and skipped.
func (s *Scanner) Scan(ctx context.Context, dirURL string, categories ...category.Category) (*History, error) {
	objects, err := s.fs.List(ctx, dirURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %s: %w", ErrDirectory, dirURL, err)
	}

	pattern := Pattern(categories...)
	var selected []storage.Object
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if !pattern.MatchString(object.Name()) {
			continue
		}
		selected = append(selected, object)
	}
	slices.SortFunc(selected, func(a, b storage.Object) int {
		return strings.Compare(a.Name(), b.Name())
	})

	history := &History{}
	for _, object := range selected {
		s.listener.Reading(object.URL())
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			s.listener.Skipped(object.URL(), err)
			continue
		}
		history.Files = append(history.Files, object.URL())
		history.Identifiers = append(history.Identifiers, ParseLines(data)...)
	}
	return history, nil
}

// ParseLines returns the non-empty, valid UTF-8 lines of data with
// surrounding whitespace removed.
func ParseLines(data []byte) []string {
	var result []string
	for _, line := range bytes.Split(data, []byte("\n")) {
		if !utf8.Valid(line) {
			continue
		}
		text := strings.TrimSpace(string(line))
		if text == "" {
			continue
		}
		result = append(result, text)
	}
	return result
}

// NewScanner creates a scanner. A nil listener discards notifications.
func NewScanner(fs afs.Service, listener Listener) *Scanner {
	if fs == nil {
		fs = afs.New()
	}
	if listener == nil {
		listener = NopListener
	}
	return &Scanner{fs: fs, listener: listener}
}
