package feedback

import (
	"restoboard/domain"
)

// statusRank orders feedback statuses; transitions may only move forward.
var statusRank = map[string]int{
	domain.FeedbackStatusPending:   0,
	domain.FeedbackStatusReviewed:  1,
	domain.FeedbackStatusResponded: 2,
}

// CanTransition reports whether a feedback status change is allowed.
// pending → reviewed → responded, skipping ahead is fine, going back is not.
func CanTransition(from, to string) error {
	fromRank, ok := statusRank[from]
	if !ok {
		return domain.ErrInvalidStatusChange
	}
	toRank, ok := statusRank[to]
	if !ok {
		return domain.ErrInvalidStatusChange
	}
	if toRank <= fromRank {
		return domain.ErrInvalidStatusChange
	}
	return nil
}
