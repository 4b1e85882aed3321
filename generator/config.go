package generator

import (
	"fmt"

	"github.com/viant/camuuid/category"
)

// DefaultDirectory holds record files when no directory is given.
const DefaultDirectory = "camera-uuids"

// Config holds the run settings that do not come from positional arguments.
// Start from DefaultConfig; the zero value has no directory.
type Config struct {
	Directory string
	// AllCategories widens the collision check to the record files of every
	// category instead of only the requested one.
	AllCategories bool
	// LocalTime dates record files in local time instead of UTC.
	LocalTime bool
	TraceFile string
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Directory: DefaultDirectory,
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Directory == "" {
		return fmt.Errorf("directory must not be empty")
	}
	return nil
}

// Request returns a run request for count identifiers of c using c's settings.
func (c *Config) Request(count int, cat category.Category) *Request {
	return &Request{
		Count:         count,
		Category:      cat,
		Directory:     c.Directory,
		AllCategories: c.AllCategories,
	}
}
