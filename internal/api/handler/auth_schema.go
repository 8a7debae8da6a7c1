package handler

import "github.com/mercadillo/storefront/internal/core/domain"

// Wire field names match the original registration and login forms
// (user/name/rol/pass/email/edad); both form and JSON bodies are accepted.

type registerRequest struct {
	Username    string `json:"user"  form:"user"  validate:"required,min=4"`
	DisplayName string `json:"name"  form:"name"  validate:"required,min=4"`
	Role        string `json:"rol"   form:"rol"   validate:"required,oneof=admin standard"`
	Password    string `json:"pass"  form:"pass"  validate:"required,min=4"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Age         int    `json:"edad"  form:"edad"  validate:"gte=0"`
	AvatarRef   string `json:"avatar" form:"avatar"`
}

type loginRequest struct {
	Username string `json:"user" form:"user"`
	Password string `json:"pass" form:"pass"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}
