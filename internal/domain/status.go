package domain

import "fmt"

// Status is the fulfillment status of an order. The pipeline only ever moves
// it forward: Pending -> Preparing -> Completed.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusCompleted Status = "Completed"
)

// ParseStatus converts raw input into a Status. Anything outside the closed
// enum is rejected.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Next returns the status that follows s in the pipeline. ok is false for the
// terminal status.
func (s Status) Next() (next Status, ok bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further transitions are ever applied.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}
