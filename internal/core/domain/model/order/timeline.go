package order

import (
	"sort"
	"time"

	"logistics/internal/pkg/errs"
)

// TimelineEvent is a single entry in an order's audit timeline. Label is the
// display form of the status at the time of the event ("Order Placed",
// "Picked Up"), Location names where the event occurred.
//
// TimelineEvent is an immutable value object.
type TimelineEvent struct {
	label     string
	timestamp time.Time
	location  string
}

// NewTimelineEvent creates a timeline event. Label and location must be
// non-empty and the timestamp must be set.
func NewTimelineEvent(label string, timestamp time.Time, location string) (TimelineEvent, error) {
	if label == "" {
		return TimelineEvent{}, errs.NewValueIsRequiredError("label")
	}
	if timestamp.IsZero() {
		return TimelineEvent{}, errs.NewValueIsRequiredError("timestamp")
	}
	if location == "" {
		return TimelineEvent{}, errs.NewValueIsRequiredError("location")
	}

	return TimelineEvent{
		label:     label,
		timestamp: timestamp,
		location:  location,
	}, nil
}

// Label returns the display form of the event's status.
func (e TimelineEvent) Label() string {
	return e.label
}

// Timestamp returns when the event occurred.
func (e TimelineEvent) Timestamp() time.Time {
	return e.timestamp
}

// Location returns where the event occurred.
func (e TimelineEvent) Location() string {
	return e.location
}

// Timeline is the append-only, timestamp-ordered sequence of events in an
// order's life. The first element is always the "Order Placed" event.
type Timeline []TimelineEvent

// Contains reports whether an event with the given label already exists.
// Used for idempotent derived-event appends.
func (t Timeline) Contains(label string) bool {
	for _, e := range t {
		if e.label == label {
			return true
		}
	}
	return false
}

// Sorted returns a copy ordered ascending by timestamp. The sort is stable so
// events sharing a timestamp keep their append order.
func (t Timeline) Sorted() Timeline {
	out := make(Timeline, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].timestamp.Before(out[j].timestamp)
	})
	return out
}

// IsOrdered reports whether timestamps are monotonically non-decreasing.
func (t Timeline) IsOrdered() bool {
	for i := 1; i < len(t); i++ {
		if t[i].timestamp.Before(t[i-1].timestamp) {
			return false
		}
	}
	return true
}
