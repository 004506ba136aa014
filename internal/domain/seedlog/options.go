package seedlog

// ListOptions provides filtering options for listing seed log entries.
type ListOptions struct {
	RunID string
	Kind  *Kind
	Limit int
}
