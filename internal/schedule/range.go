// Package schedule implements the slot scheduling rules: half-open time
// ranges, containment in the parent position window, and overlap-freedom
// among sibling slots. Everything here is a pure decision over supplied
// data; callers fetch state and commit results.
package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Range is a half-open interval [Start, End): the start instant belongs to
// the range, the end instant does not.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange constructs a range from two instants
func NewRange(start, end time.Time) Range {
	return Range{Start: start, End: end}
}

// IsValid reports whether the range is well ordered (Start before End).
// Zero-length ranges are not valid.
func (r Range) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether two half-open ranges share any instant.
// Touching endpoints do not overlap: a range ending at T and one starting
// at T are disjoint.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// ContainsRange reports whether other lies entirely within r
func (r Range) ContainsRange(other Range) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// ContainsInstant reports whether t falls inside the range with inclusive
// bounds. The check-in window treats both endpoints as active, so this is
// deliberately not the half-open membership test.
func (r Range) ContainsInstant(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// SlotRange is a sibling slot's identity and (possibly absent) time window
// as fetched for overlap checking.
type SlotRange struct {
	ID    uuid.UUID
	Start *time.Time
	End   *time.Time
}

// IsScheduled reports whether both times are set
func (s SlotRange) IsScheduled() bool {
	return s.Start != nil && s.End != nil
}
