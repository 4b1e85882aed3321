// Package category defines the closed set of camera families identifiers are
// issued for. A Category value can only be one of the declared constants or
// a value returned by Parse.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a name does not denote a known camera family.
var ErrUnknown = errors.New("category: unknown")

// Category identifies a camera family.
type Category struct {
	name string
}

var (
	Hyrax     = Category{name: "hyrax"}
	Bagheera  = Category{name: "bagheera"}
	Hornet    = Category{name: "hornet"}
	Bumblebee = Category{name: "bumblebee"}
	Coati     = Category{name: "coati"}
)

var all = []Category{Hyrax, Bagheera, Hornet, Bumblebee, Coati}

// All returns every category in declaration order.
func All() []Category {
	result := make([]Category, len(all))
	copy(result, all)
	return result
}

// Names returns the names of all categories in declaration order.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.name)
	}
	return names
}

// Parse returns the category with the given name. Matching is exact.
func Parse(name string) (Category, error) {
	for _, c := range all {
		if c.name == name {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q, expected one of %s", ErrUnknown, name, strings.Join(Names(), " | "))
}

func (c Category) String() string {
	return c.name
}

// IsZero reports whether c is the zero value, which denotes no category.
func (c Category) IsZero() bool {
	return c.name == ""
}
