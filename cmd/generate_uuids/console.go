package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/viant/afs/url"
	"github.com/viant/camuuid/category"
	"github.com/viant/camuuid/record"
)

// console prints run progress for a human operator.
type console struct {
	w     io.Writer
	info  *color.Color
	warn  *color.Color
	fail  *color.Color
	green *color.Color
}

func newConsole(w io.Writer) *console {
	return &console{
		w:     w,
		info:  color.New(color.FgCyan),
		warn:  color.New(color.FgHiYellow),
		fail:  color.New(color.FgRed),
		green: color.New(color.FgGreen),
	}
}

func (c *console) Generating(count int, cat category.Category) {
	fmt.Fprintf(c.w, "Generating %d new UUIDs for %s\n", count, cat)
}

func (c *console) Reading(URL string) {
	c.info.Fprintf(c.w, "Reading %s\n", url.Path(URL))
}

func (c *console) Skipped(URL string, err error) {
	c.warn.Fprintf(c.w, "Skipping %s: %v\n", url.Path(URL), err)
}

func (c *console) Written(URL string, count int) {
	c.green.Fprintf(c.w, "Wrote %d UUIDs to %s\n", count, url.Path(URL))
}

func (c *console) Failed(err error) {
	switch {
	case errors.Is(err, record.ErrSelfDuplicate):
		c.fail.Fprintf(c.w, "Failed to generate enough unique UUIDs (%v)\n", err)
	case errors.Is(err, record.ErrCollision):
		c.fail.Fprintf(c.w, "UUID collisions were detected (%v)\n", err)
	default:
		c.fail.Fprintf(c.w, "%v\n", err)
	}
}
