package essdk

// State is the lifecycle position of the native session.
type State int

// Session states.
const (
	StateUnloaded State = iota
	StateLoading
	StateReady
	StateQueryPending
	StateQueryComplete
	StateDisposed
)

// String returns the string representation.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateQueryPending:
		return "query-pending"
	case StateQueryComplete:
		return "query-complete"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// acceptsQuery reports whether a new query may start from s.
func (s State) acceptsQuery() bool {
	return s == StateReady || s == StateQueryComplete
}
