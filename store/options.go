package store

import "time"

type Option func(*Library)

// WithClock replaces the time source, mainly so tests can pin due dates and
// overdue checks to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		if now != nil {
			l.now = now
		}
	}
}
