package catalogsvc

import (
	"context"
	"errors"

	"github.com/edlesonjrr/Bibliotech/model"
	"github.com/edlesonjrr/Bibliotech/store"
)

type ErrCode string

const (
	ErrBadInput       ErrCode = "BAD_INPUT"
	ErrHasActiveLoans ErrCode = "HAS_ACTIVE_LOANS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Store interface {
	Books() []model.Book
	BookByID(id string) (model.Book, bool)
	SearchBooks(query string) []model.Book
	AddBook(b model.Book) model.Book
	UpdateBook(id string, p model.BookPatch)
	DeleteBook(id string) error
}

type Service interface {
	List(ctx context.Context) ([]model.Book, error)
	Detail(ctx context.Context, id string) (*model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
	Create(ctx context.Context, b model.Book) (model.Book, error)

	// Update merges the patch into the book; an unknown id is a no-op.
	Update(ctx context.Context, id string, p model.BookPatch) error

	// Delete removes the book, rejected while active loans reference it.
	Delete(ctx context.Context, id string) error
}

type service struct{ s Store }

func New(s Store) Service { return &service{s: s} }

func (svc *service) List(ctx context.Context) ([]model.Book, error) {
	return svc.s.Books(), nil
}

func (svc *service) Detail(ctx context.Context, id string) (*model.Book, error) {
	b, ok := svc.s.BookByID(id)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (svc *service) Search(ctx context.Context, query string) ([]model.Book, error) {
	return svc.s.SearchBooks(query), nil
}

func (svc *service) Create(ctx context.Context, b model.Book) (model.Book, error) {
	if b.Title == "" || b.Author == "" || b.TotalCopies < 1 {
		return model.Book{}, makeErr(ErrBadInput)
	}
	return svc.s.AddBook(b), nil
}

func (svc *service) Update(ctx context.Context, id string, p model.BookPatch) error {
	svc.s.UpdateBook(id, p)
	return nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	if err := svc.s.DeleteBook(id); err != nil {
		if errors.Is(err, store.ErrBookHasLoans) {
			return makeErr(ErrHasActiveLoans)
		}
		return err
	}
	return nil
}
