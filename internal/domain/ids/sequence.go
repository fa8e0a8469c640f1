package ids

import "time"

// Sequence hands out millisecond timestamps as identifiers, bumped by one
// whenever two calls land in the same millisecond so IDs stay unique.
type Sequence struct {
	last int64
}

func (s *Sequence) Next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
