package cache

import "time"

// SetClockForTest overrides the store's clock so tests can control the
// timestamp written into records.
func (s *Store) SetClockForTest(now func() time.Time) {
	s.now = now
}
