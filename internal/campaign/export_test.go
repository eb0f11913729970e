package campaign

import "time"

// SetClock overrides the service clocks for tests.
func (s *Service) SetClock(now func() time.Time, sleep func(time.Duration)) {
	if now != nil {
		s.now = now
	}
	if sleep != nil {
		s.sleep = sleep
	}
}
