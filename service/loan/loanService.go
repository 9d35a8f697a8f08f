package loansvc

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/edlesonjrr/Bibliotech/model"
	"github.com/edlesonjrr/Bibliotech/policy"
	"github.com/edlesonjrr/Bibliotech/store"
)

// errors used by controllers

type ErrCode string

const (
	ErrNoCopies        ErrCode = "NO_COPIES"
	ErrBookNotFound    ErrCode = "BOOK_NOT_FOUND"
	ErrUserNotFound    ErrCode = "USER_NOT_FOUND"
	ErrLoanNotFound    ErrCode = "LOAN_NOT_FOUND"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
	ErrNotOwner        ErrCode = "NOT_OWNER"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Filter narrows the staff loan listing. Status is "active", "returned" or
// empty/"all"; Query matches the joined book title or user name.
type Filter struct {
	Status string
	Query  string
}

// Detail is a loan joined with its book and user. Either join may be nil when
// the referenced record no longer exists.
type Detail struct {
	model.Loan
	Book    *model.Book `json:"book,omitempty"`
	User    *model.User `json:"user,omitempty"`
	Overdue bool        `json:"overdue"`
}

type Store interface {
	CreateLoan(bookID, userID string) (model.Loan, error)
	ReturnLoan(loanID string) (model.Loan, error)
	LoanByID(id string) (model.Loan, bool)
	UserLoans(userID string) []model.Loan
	Loans() []model.Loan
	BookByID(id string) (model.Book, bool)
	UserByID(id string) (model.User, bool)
}

type Service interface {
	// Create lends a copy of the book to the user. Members may only borrow
	// for themselves; staff may create loans for anyone.
	Create(ctx context.Context, actor *model.User, bookID, userID string) (*model.Loan, error)

	// Return closes an active loan. Members may only return their own.
	Return(ctx context.Context, actor *model.User, loanID string) (*model.Loan, error)

	// MyLoans lists every loan of the user, any status.
	MyLoans(ctx context.Context, userID string) ([]Detail, error)

	// List is the staff view: filtered, joined, most recent first.
	List(ctx context.Context, f Filter) ([]Detail, error)
}

type service struct{ s Store }

func New(s Store) Service { return &service{s: s} }

func (svc *service) Create(ctx context.Context, actor *model.User, bookID, userID string) (*model.Loan, error) {
	if !policy.CanManageAllLoans(actor) {
		if actor == nil || actor.ID != userID {
			return nil, makeErr(ErrNotOwner)
		}
	}

	loan, err := svc.s.CreateLoan(bookID, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound):
			return nil, makeErr(ErrBookNotFound)
		case errors.Is(err, store.ErrNoCopies):
			return nil, makeErr(ErrNoCopies)
		case errors.Is(err, store.ErrUserNotFound):
			return nil, makeErr(ErrUserNotFound)
		default:
			return nil, err
		}
	}
	return &loan, nil
}

func (svc *service) Return(ctx context.Context, actor *model.User, loanID string) (*model.Loan, error) {
	if !policy.CanManageAllLoans(actor) {
		ln, ok := svc.s.LoanByID(loanID)
		if !ok {
			return nil, makeErr(ErrLoanNotFound)
		}
		if actor == nil || ln.UserID != actor.ID {
			return nil, makeErr(ErrNotOwner)
		}
	}

	loan, err := svc.s.ReturnLoan(loanID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLoanNotFound):
			return nil, makeErr(ErrLoanNotFound)
		case errors.Is(err, store.ErrAlreadyReturned):
			return nil, makeErr(ErrAlreadyReturned)
		default:
			return nil, err
		}
	}
	return &loan, nil
}

func (svc *service) MyLoans(ctx context.Context, userID string) ([]Detail, error) {
	now := time.Now()
	var out []Detail
	for _, ln := range svc.s.UserLoans(userID) {
		out = append(out, svc.join(ln, now))
	}
	return out, nil
}

func (svc *service) List(ctx context.Context, f Filter) ([]Detail, error) {
	now := time.Now()
	q := strings.ToLower(f.Query)

	var out []Detail
	for _, ln := range svc.s.Loans() {
		if f.Status != "" && f.Status != "all" && string(ln.Status) != f.Status {
			continue
		}
		d := svc.join(ln, now)
		if q != "" && !matches(d, q) {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LoanDate.After(out[j].LoanDate)
	})
	return out, nil
}

func (svc *service) join(ln model.Loan, now time.Time) Detail {
	d := Detail{Loan: ln, Overdue: ln.IsOverdue(now)}
	if b, ok := svc.s.BookByID(ln.BookID); ok {
		d.Book = &b
	}
	if u, ok := svc.s.UserByID(ln.UserID); ok {
		d.User = &u
	}
	return d
}

func matches(d Detail, q string) bool {
	if d.Book != nil && strings.Contains(strings.ToLower(d.Book.Title), q) {
		return true
	}
	if d.User != nil && strings.Contains(strings.ToLower(d.User.Name), q) {
		return true
	}
	return false
}
