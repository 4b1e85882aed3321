package record

// Listener observes the progress of a scan.
type Listener interface {
	// Reading is called before a record file is read.
	Reading(URL string)
	// Skipped is called when a record file could not be read.
	Skipped(URL string, err error)
}

type nopListener struct{}

func (nopListener) Reading(string) {}
func (nopListener) Skipped(string, error) {}

// NopListener ignores all notifications.
var NopListener Listener = nopListener{}
