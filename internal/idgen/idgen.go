package idgen

import "github.com/google/uuid"

// NewFunc returns a new random identifier. It is a variable so tests can stub it.
var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }

// maxPrealloc caps the capacity reserved up front; larger batches grow on append.
const maxPrealloc = 4096

// Batch returns n identifiers in generation order. A nil next uses New.
func Batch(n int, next func() string) []string {
	if next == nil {
		next = New
	}
	if n < 0 {
		n = 0
	}
	ids := make([]string, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		ids = append(ids, next())
	}
	return ids
}
