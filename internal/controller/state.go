package controller

// State identifies the current stage of a compression operation.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateReading
	StateCompressing
	StateAwaitingSavePath
	StateWriting
	StateComplete
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateReading:
		return "reading"
	case StateCompressing:
		return "compressing"
	case StateAwaitingSavePath:
		return "awaiting_save_path"
	case StateWriting:
		return "writing"
	case StateComplete:
		return "complete"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
