package models

import (
	"errors"
	"fmt"
)

// ModerationStatus is the lifecycle shared by deposit requests, withdrawal
// requests, task submissions and blog posts: a single transition from pending
// to one terminal state, exactly once.
type ModerationStatus string

const (
	StatusPending   ModerationStatus = "pending"
	StatusApproved  ModerationStatus = "approved"
	StatusRejected  ModerationStatus = "rejected"
	StatusPublished ModerationStatus = "published" // blog posts only
)

var ErrAlreadyProcessed = errors.New("already processed")

func (s ModerationStatus) Resolved() bool {
	return s != StatusPending
}

// Resolve validates and applies the pending→terminal transition. A resolved
// item rejects any further transition with ErrAlreadyProcessed.
func (s *ModerationStatus) Resolve(next ModerationStatus) error {
	switch next {
	case StatusApproved, StatusRejected, StatusPublished:
	default:
		return fmt.Errorf("invalid target status %q", next)
	}
	if s.Resolved() {
		return ErrAlreadyProcessed
	}
	*s = next
	return nil
}
