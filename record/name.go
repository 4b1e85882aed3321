package record

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/viant/camuuid/category"
)

// DateLayout is the date part of a record file name.
const DateLayout = "2006_01_02"

// Ext is the record file extension.
const Ext = ".txt"

// FileName returns the record file name for c on the calendar day of at.
func FileName(c category.Category, at time.Time) string {
	return fmt.Sprintf("%s_%s%s", c, at.Format(DateLayout), Ext)
}

// Pattern matches base names of record files belonging to any of categories.
// No categories means all of them.
func Pattern(categories ...category.Category) *regexp.Regexp {
	if len(categories) == 0 {
		categories = category.All()
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, regexp.QuoteMeta(c.String()))
	}
	return regexp.MustCompile(`^(?:` + strings.Join(names, "|") + `)_.*\.txt$`)
}
