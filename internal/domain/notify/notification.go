package notify

import (
	"time"

	"artisan-storefront/internal/domain/ids"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 4 * time.Second

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Notification struct {
	ID      int64    `json:"id"`
	Message string   `json:"message"`
	Type    Severity `json:"type"`
}

type EventKind string

const (
	EventAdded   EventKind = "added"
	EventExpired EventKind = "expired"
)

type Event struct {
	Kind         EventKind    `json:"kind"`
	Notification Notification `json:"notification"`
}

// Queue is the ordered list of visible toasts. Expiry is scheduled by the
// owner, which calls Remove once the entry's own delay has elapsed.
type Queue struct {
	items []Notification
	seq   ids.Sequence
}

func (q *Queue) Add(now time.Time, message string, severity Severity) Notification {
	if severity == "" {
		severity = SeverityInfo
	}
	n := Notification{ID: q.seq.Next(now), Message: message, Type: severity}
	q.items = append(q.items, n)
	return n
}

// Remove drops the notification with id and reports whether it was present.
func (q *Queue) Remove(id int64) (Notification, bool) {
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return n, true
		}
	}
	return Notification{}, false
}

func (q *Queue) Items() []Notification {
	return append([]Notification{}, q.items...)
}

func (q *Queue) Len() int { return len(q.items) }
