package user

import "github.com/edlesonjrr/Bibliotech/model"

type CreateUserReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Type     string `json:"type" validate:"required,oneof=admin librarian member"`
	IsActive *bool  `json:"is_active"`
}

func (r CreateUserReq) toUser() model.User {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return model.User{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Type:     model.UserType(r.Type),
		IsActive: active,
	}
}
