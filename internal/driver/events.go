package driver

// Status is the per-file state reported to progress listeners.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusCached
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "parsing"
	case StatusCached:
		return "cached"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Finished reports whether no further event follows for the file.
func (s Status) Finished() bool {
	return s == StatusCached || s == StatusDone || s == StatusError
}

// Event is sent on CheckOptions.Events as files move through a check.
type Event struct {
	File   string
	Status Status
}
