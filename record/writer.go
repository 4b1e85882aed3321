package record

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/camuuid/category"
	"github.com/viant/camuuid/internal/clock"
)

// Writer persists a batch as a new dated record file.
type Writer struct {
	fs    afs.Service
	now   clock.Func
	local bool
}

// Write stores ids, one per line in the given order, in the record file for
// c dated by the writer clock, and returns the file URL. An existing file for
// the same day is never replaced.
func (w *Writer) Write(ctx context.Context, dirURL string, c category.Category, ids []string) (string, error) {
	fileURL := url.Join(dirURL, FileName(c, w.date()))
	exists, err := w.fs.Exists(ctx, fileURL)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", fileURL, err)
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrRecordExists, fileURL)
	}

	buffer := new(bytes.Buffer)
	for _, id := range ids {
		buffer.WriteString(id)
		buffer.WriteByte('\n')
	}
	if err := w.fs.Upload(ctx, fileURL, file.DefaultFileOsMode, buffer); err != nil {
		return "", fmt.Errorf("failed to write record file %s: %w", fileURL, err)
	}
	return fileURL, nil
}

func (w *Writer) date() time.Time {
	now := w.now()
	if w.local {
		return now.Local()
	}
	return now.UTC()
}

// NewWriter creates a writer dating files with now, in local time when local
// is set and UTC otherwise.
func NewWriter(fs afs.Service, now clock.Func, local bool) *Writer {
	if fs == nil {
		fs = afs.New()
	}
	return &Writer{fs: fs, now: clock.OrDefault(now), local: local}
}
