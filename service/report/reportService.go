package reportsvc

import (
	"context"
	"sort"

	"github.com/edlesonjrr/Bibliotech/model"
)

const dashboardLimit = 5

// RecentLoan is an active loan joined with its book and user for display.
type RecentLoan struct {
	model.Loan
	Book *model.Book `json:"book,omitempty"`
	User *model.User `json:"user,omitempty"`
}

type Dashboard struct {
	Stats        model.Stats  `json:"stats"`
	RecentLoans  []RecentLoan `json:"recent_loans"`
	PopularBooks []model.Book `json:"popular_books"`
}

type Store interface {
	Stats() model.Stats
	Books() []model.Book
	Loans() []model.Loan
	BookByID(id string) (model.Book, bool)
	UserByID(id string) (model.User, bool)
}

type Service interface {
	Stats(ctx context.Context) (model.Stats, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type service struct{ s Store }

func New(s Store) Service { return &service{s: s} }

func (svc *service) Stats(ctx context.Context) (model.Stats, error) {
	return svc.s.Stats(), nil
}

func (svc *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{
		Stats:        svc.s.Stats(),
		RecentLoans:  svc.recentLoans(),
		PopularBooks: svc.popularBooks(),
	}
	return d, nil
}

func (svc *service) recentLoans() []RecentLoan {
	var out []RecentLoan
	for _, ln := range svc.s.Loans() {
		if ln.Status != model.LoanActive {
			continue
		}
		rl := RecentLoan{Loan: ln}
		if b, ok := svc.s.BookByID(ln.BookID); ok {
			rl.Book = &b
		}
		if u, ok := svc.s.UserByID(ln.UserID); ok {
			rl.User = &u
		}
		out = append(out, rl)
		if len(out) == dashboardLimit {
			break
		}
	}
	return out
}

// popularBooks ranks by copies currently in use, most borrowed first.
func (svc *service) popularBooks() []model.Book {
	books := svc.s.Books()
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].CopiesInUse() > books[j].CopiesInUse()
	})
	if len(books) > dashboardLimit {
		books = books[:dashboardLimit]
	}
	return books
}
