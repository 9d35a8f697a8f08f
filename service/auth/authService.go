package authsvc

import (
	"context"
	"errors"

	"github.com/edlesonjrr/Bibliotech/model"
	jwtutil "github.com/edlesonjrr/Bibliotech/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
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

const tokenTTLHours = 24

type Store interface {
	UserByEmail(email string) (model.User, bool)
	AddUser(u model.User) model.User
}

type Service interface {
	// Login looks the user up by exact email among active users. The password
	// is accepted but never compared; credential checks are out of scope.
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)

	// Register creates an active member account and logs it in.
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
}

type service struct {
	s      Store
	secret string
}

func New(s Store, secret string) Service { return &service{s: s, secret: secret} }

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	u, ok := s.s.UserByEmail(req.Email)
	if !ok || !u.IsActive {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	token, err := jwtutil.Issue(s.secret, u.ID, string(u.Type), tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	if _, exists := s.s.UserByEmail(req.Email); exists {
		return nil, "", makeErr(ErrEmailTaken)
	}

	u := s.s.AddUser(model.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Type:     model.TypeMember,
		IsActive: true,
	})

	token, err := jwtutil.Issue(s.secret, u.ID, string(u.Type), tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}
