package store

import "github.com/edlesonjrr/Bibliotech/model"

// Stats recomputes the summary from the current state on every call. Keeping
// this a pure recomputation instead of incrementally maintained counters
// rules out drift between the counters and the collections.
func (l *Library) Stats() model.Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := model.Stats{
		TotalUsers:       len(l.users),
		BooksPerCategory: make(map[string]int),
		UsersByType:      make(map[model.UserType]int),
	}
	for _, b := range l.books {
		s.TotalBooks += b.TotalCopies
		s.BooksPerCategory[b.Category] += b.TotalCopies
	}
	for _, u := range l.users {
		s.UsersByType[u.Type]++
	}
	now := l.now()
	for _, ln := range l.loans {
		if ln.Status != model.LoanActive {
			continue
		}
		s.ActiveLoans++
		if ln.IsOverdue(now) {
			s.OverdueLoans++
		}
	}
	return s
}
