package generator

import (
	"github.com/viant/camuuid/category"
	"github.com/viant/camuuid/record"
)

// Listener observes the progress of a run.
type Listener interface {
	record.Listener
	// Generating is called once the request has been validated.
	Generating(count int, c category.Category)
	// Written is called after the record file has been stored.
	Written(URL string, count int)
}

type nopListener struct {
	record.Listener
}

func (nopListener) Generating(int, category.Category) {}
func (nopListener) Written(string, int) {}

// NopListener ignores all notifications.
var NopListener Listener = nopListener{Listener: record.NopListener}
