package model

import "time"

type UserType string

const (
	TypeAdmin     UserType = "admin"
	TypeLibrarian UserType = "librarian"
	TypeMember    UserType = "member"
)

type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Type             UserType  `json:"type"`
	RegistrationDate time.Time `json:"registration_date"`
	IsActive         bool      `json:"is_active"`
}

// UserPatch carries a partial update; nil fields are left untouched.
// RegistrationDate is immutable and has no patch field.
type UserPatch struct {
	Name     *string   `json:"name,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	Type     *UserType `json:"type,omitempty"`
	IsActive *bool     `json:"is_active,omitempty"`
}

// RegisterReq represents the self-service signup payload
// swagger:model RegisterReq
type RegisterReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
