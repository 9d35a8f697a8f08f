package membersvc

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

var validTypes = map[model.UserType]bool{
	model.TypeAdmin:     true,
	model.TypeLibrarian: true,
	model.TypeMember:    true,
}

type Store interface {
	Users() []model.User
	UserByID(id string) (model.User, bool)
	AddUser(u model.User) model.User
	UpdateUser(id string, p model.UserPatch)
	DeleteUser(id string) error
}

type Service interface {
	List(ctx context.Context) ([]model.User, error)
	Detail(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, id string, p model.UserPatch) error
	Delete(ctx context.Context, id string) error
}

type service struct{ s Store }

func New(s Store) Service { return &service{s: s} }

func (svc *service) List(ctx context.Context) ([]model.User, error) {
	return svc.s.Users(), nil
}

func (svc *service) Detail(ctx context.Context, id string) (*model.User, error) {
	u, ok := svc.s.UserByID(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (svc *service) Create(ctx context.Context, u model.User) (model.User, error) {
	if u.Name == "" || u.Email == "" || !validTypes[u.Type] {
		return model.User{}, makeErr(ErrBadInput)
	}
	return svc.s.AddUser(u), nil
}

func (svc *service) Update(ctx context.Context, id string, p model.UserPatch) error {
	if p.Type != nil && !validTypes[*p.Type] {
		return makeErr(ErrBadInput)
	}
	svc.s.UpdateUser(id, p)
	return nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	if err := svc.s.DeleteUser(id); err != nil {
		if errors.Is(err, store.ErrUserHasLoans) {
			return makeErr(ErrHasActiveLoans)
		}
		return err
	}
	return nil
}
