package vecpool

// Status is the coarse result code carried by index build and search tasks.
// StatusSuccess is the zero value; everything else is a failure the caller
// is expected to inspect.
type Status int

const (
	StatusSuccess Status = iota
	StatusInvalidArgs
	StatusOutOfRange
	StatusEmptyIndex
	StatusIndexNotTrained
	StatusNotImplemented
	StatusTimeout
	StatusInternalError
)

// OK reports whether the status is StatusSuccess.
func (s Status) OK() bool { return s == StatusSuccess }

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidArgs:
		return "invalid args"
	case StatusOutOfRange:
		return "out of range"
	case StatusEmptyIndex:
		return "empty index"
	case StatusIndexNotTrained:
		return "index not trained"
	case StatusNotImplemented:
		return "not implemented"
	case StatusTimeout:
		return "timeout"
	case StatusInternalError:
		return "internal error"
	default:
		return "unknown"
	}
}
