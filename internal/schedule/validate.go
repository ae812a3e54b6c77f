package schedule

import (
	"time"

	apperrors "volunteer-checkin-backend/internal/errors"

	"github.com/google/uuid"
)

// ValidateSlotRange decides whether a candidate slot window may be committed
// under the given position window and sibling set. It returns nil when the
// candidate is acceptable and a *apperrors.ValidationError with the
// user-facing reason otherwise.
//
// A candidate with no start or no end is an unscheduled slot and is always
// valid with respect to range checks. Rules are applied in order: ordering,
// containment in the parent window, then overlap against every sibling that
// has both times set and whose id differs from excludeID (the candidate's
// own id when editing). Overlap is half-open: touching endpoints are fine.
func ValidateSlotRange(start, end *time.Time, parent Range, siblings []SlotRange, excludeID *uuid.UUID) error {
	if start == nil || end == nil {
		return nil
	}

	candidate := NewRange(*start, *end)

	if !candidate.IsValid() {
		return apperrors.ErrEndBeforeStart
	}

	if candidate.Start.Before(parent.Start) {
		return apperrors.ErrStartBeforePosition
	}
	if candidate.End.After(parent.End) {
		return apperrors.ErrEndAfterPosition
	}

	for _, sibling := range siblings {
		if excludeID != nil && sibling.ID == *excludeID {
			continue
		}
		if !sibling.IsScheduled() {
			continue
		}
		if candidate.Overlaps(NewRange(*sibling.Start, *sibling.End)) {
			// A single generic reason regardless of which sibling conflicted.
			return apperrors.ErrSlotOverlap
		}
	}

	return nil
}

// ValidatePositionWindow checks the ordering invariant of a position window
func ValidatePositionWindow(start, end time.Time) error {
	if !NewRange(start, end).IsValid() {
		return apperrors.ErrEndBeforeStart
	}
	return nil
}
