package record

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// DirURL turns a local path or URL into the normalized directory URL used by
// Scanner and Writer.
func DirURL(location string) string {
	return url.Normalize(location, file.Scheme)
}

// CheckDirectory fails with ErrDirectory unless dirURL names an existing directory.
func CheckDirectory(ctx context.Context, fs afs.Service, dirURL string) error {
	exists, err := fs.Exists(ctx, dirURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirectory, url.Path(dirURL), err)
	}
	if !exists {
		return fmt.Errorf("%w: %s does not exist", ErrDirectory, url.Path(dirURL))
	}
	object, err := fs.Object(ctx, dirURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirectory, url.Path(dirURL), err)
	}
	if !object.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectory, url.Path(dirURL))
	}
	return nil
}
