// Package store owns the three library collections (books, users, loans) and
// enforces the copy-count and loan-lifecycle invariants. All state lives in
// memory; a Library is constructed from an injected seed snapshot.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edlesonjrr/Bibliotech/model"
)

// LoanPeriod is the fixed borrowing period; DueDate = LoanDate + LoanPeriod.
const LoanPeriod = 30 * 24 * time.Hour

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrLoanNotFound    = errors.New("loan not found")
	ErrNoCopies        = errors.New("no copies available")
	ErrAlreadyReturned = errors.New("loan already returned")
	ErrBookHasLoans    = errors.New("book has active loans")
	ErrUserHasLoans    = errors.New("user has active loans")
)

// Snapshot is the initial state handed to New. The Library copies the slices,
// so callers may reuse or mutate theirs afterwards.
type Snapshot struct {
	Books []model.Book
	Users []model.User
	Loans []model.Loan
}

// Library is the single owner of the collections. Every operation holds the
// mutex for its full duration, so check-and-mutate sequences (notably the
// availability check inside CreateLoan) are atomic even when the store is
// shared by concurrent request handlers.
type Library struct {
	mu    sync.Mutex
	books []model.Book
	users []model.User
	loans []model.Loan
	now   func() time.Time
}

func New(seed Snapshot, opts ...Option) *Library {
	l := &Library{
		books: append([]model.Book(nil), seed.Books...),
		users: append([]model.User(nil), seed.Users...),
		loans: append([]model.Loan(nil), seed.Loans...),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ----- books -----

// Books returns a snapshot copy in insertion order.
func (l *Library) Books() []model.Book {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Book(nil), l.books...)
}

func (l *Library) BookByID(id string) (model.Book, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.books {
		if b.ID == id {
			return b, true
		}
	}
	return model.Book{}, false
}

// AddBook assigns a fresh id and appends. Copy counts are taken as given;
// only the loan lifecycle maintains the availability invariant.
func (l *Library) AddBook(b model.Book) model.Book {
	l.mu.Lock()
	defer l.mu.Unlock()
	b.ID = uuid.NewString()
	l.books = append(l.books, b)
	return b
}

// UpdateBook merges the non-nil patch fields into the matching book. An
// unknown id is a silent no-op.
func (l *Library) UpdateBook(id string, p model.BookPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.books {
		if l.books[i].ID != id {
			continue
		}
		applyBookPatch(&l.books[i], p)
		return
	}
}

// DeleteBook removes the book. Deletion is rejected while active loans still
// reference the book; an unknown id is a silent no-op.
func (l *Library) DeleteBook(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ln := range l.loans {
		if ln.BookID == id && ln.Status == model.LoanActive {
			return ErrBookHasLoans
		}
	}
	for i := range l.books {
		if l.books[i].ID == id {
			l.books = append(l.books[:i], l.books[i+1:]...)
			return nil
		}
	}
	return nil
}

// SearchBooks matches the query as a case-insensitive substring of title or
// author, or a case-sensitive substring of the ISBN. Results keep insertion
// order; there is no ranking.
func (l *Library) SearchBooks(query string) []model.Book {
	l.mu.Lock()
	defer l.mu.Unlock()
	q := strings.ToLower(query)
	var out []model.Book
	for _, b := range l.books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(b.ISBN, query) {
			out = append(out, b)
		}
	}
	return out
}

// ----- users -----

func (l *Library) Users() []model.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.User(nil), l.users...)
}

func (l *Library) UserByID(id string) (model.User, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, u := range l.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// UserByEmail looks a user up by exact email match.
func (l *Library) UserByEmail(email string) (model.User, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, u := range l.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// AddUser assigns a fresh id, stamps the registration date and appends.
func (l *Library) AddUser(u model.User) model.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	u.ID = uuid.NewString()
	u.RegistrationDate = l.now()
	l.users = append(l.users, u)
	return u
}

// UpdateUser merges the non-nil patch fields into the matching user. The
// registration date is immutable. An unknown id is a silent no-op.
func (l *Library) UpdateUser(id string, p model.UserPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.users {
		if l.users[i].ID != id {
			continue
		}
		applyUserPatch(&l.users[i], p)
		return
	}
}

// DeleteUser removes the user, rejected while active loans reference them.
func (l *Library) DeleteUser(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ln := range l.loans {
		if ln.UserID == id && ln.Status == model.LoanActive {
			return ErrUserHasLoans
		}
	}
	for i := range l.users {
		if l.users[i].ID == id {
			l.users = append(l.users[:i], l.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// ----- loans -----

func (l *Library) Loans() []model.Loan {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Loan(nil), l.loans...)
}

func (l *Library) LoanByID(id string) (model.Loan, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ln := range l.loans {
		if ln.ID == id {
			return ln, true
		}
	}
	return model.Loan{}, false
}

// CreateLoan lends one copy of the book to the user: it decrements the book's
// available copies and appends an active loan due in 30 days, as one atomic
// step. Fails with ErrBookNotFound, ErrUserNotFound or ErrNoCopies.
func (l *Library) CreateLoan(bookID, userID string) (model.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var book *model.Book
	for i := range l.books {
		if l.books[i].ID == bookID {
			book = &l.books[i]
			break
		}
	}
	if book == nil {
		return model.Loan{}, ErrBookNotFound
	}
	if book.AvailableCopies <= 0 {
		return model.Loan{}, ErrNoCopies
	}
	if !l.userExists(userID) {
		return model.Loan{}, ErrUserNotFound
	}

	now := l.now()
	loan := model.Loan{
		ID:       uuid.NewString(),
		BookID:   bookID,
		UserID:   userID,
		LoanDate: now,
		DueDate:  now.Add(LoanPeriod),
		Status:   model.LoanActive,
	}
	book.AvailableCopies--
	l.loans = append(l.loans, loan)
	return loan, nil
}

// ReturnLoan transitions an active loan to returned, stamping the return date
// and giving the copy back to the book. A loan can only be returned once;
// a second call fails with ErrAlreadyReturned and leaves the counts alone.
func (l *Library) ReturnLoan(loanID string) (model.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var loan *model.Loan
	for i := range l.loans {
		if l.loans[i].ID == loanID {
			loan = &l.loans[i]
			break
		}
	}
	if loan == nil {
		return model.Loan{}, ErrLoanNotFound
	}
	if loan.Status != model.LoanActive {
		return model.Loan{}, ErrAlreadyReturned
	}

	for i := range l.books {
		if l.books[i].ID == loan.BookID {
			l.books[i].AvailableCopies++
			break
		}
	}
	now := l.now()
	loan.ReturnDate = &now
	loan.Status = model.LoanReturned
	return *loan, nil
}

// UserLoans returns every loan of the user, any status, in insertion order.
func (l *Library) UserLoans(userID string) []model.Loan {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []model.Loan
	for _, ln := range l.loans {
		if ln.UserID == userID {
			out = append(out, ln)
		}
	}
	return out
}

// ----- helpers -----

func (l *Library) userExists(id string) bool {
	for _, u := range l.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func applyBookPatch(b *model.Book, p model.BookPatch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.PublishedYear != nil {
		b.PublishedYear = *p.PublishedYear
	}
	if p.TotalCopies != nil {
		b.TotalCopies = *p.TotalCopies
	}
	if p.AvailableCopies != nil {
		b.AvailableCopies = *p.AvailableCopies
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.CoverURL != nil {
		b.CoverURL = *p.CoverURL
	}
}

func applyUserPatch(u *model.User, p model.UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Type != nil {
		u.Type = *p.Type
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}
