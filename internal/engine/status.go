package engine

// Status is the lifecycle state of a Session.
type Status int

const (
	NotStarted Status = iota
	Running
	Paused
	Over
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}
