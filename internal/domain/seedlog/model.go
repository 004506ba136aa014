package seedlog

import "time"

// Kind represents what a seed run did to one item.
type Kind string

const (
	KindJourneyCreated Kind = "journey_created"
	KindJourneySkipped Kind = "journey_skipped"
	KindAdminEnsured   Kind = "admin_ensured"
)

// Entry records one step of a seed run.
type Entry struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	Kind      Kind      `json:"kind"`
	Slug      string    `json:"slug,omitempty"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
