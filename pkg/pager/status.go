package pager

import "fmt"

// Status summarizes the controller's position in its loading cycle.
//
// The status follows this state machine:
//
//	            FetchNewPage()
//	StatusIdle ────────────────► StatusFetching
//	    ▲                           │       │
//	    │  AppendItems /            │       │  SetError()
//	    │  SetHasMoreItems /        │       ▼
//	    │  Cancel                   │   StatusErrored
//	    └───────────────────────────┘       │
//	    ▲                                   │
//	    └───────────────────────────────────┘
//	                  Retry() / Reset()
//
// Idle covers both "more pages may exist" and "list exhausted"; consult
// HasMoreItems and NoItemsFound to distinguish them.
type Status int

const (
	// StatusIdle means no fetch is in flight and no error is recorded.
	StatusIdle Status = iota
	// StatusFetching means a fetch was accepted and no terminal event has
	// arrived yet.
	StatusFetching
	// StatusErrored means the last fetch failed and the error has not been
	// cleared by Retry or Reset.
	StatusErrored
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusFetching:
		return "fetching"
	case StatusErrored:
		return "errored"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
