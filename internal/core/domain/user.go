package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStandard
}

// User models a registered account. PasswordHash is a bcrypt digest with the
// salt and cost embedded; it is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Age          int       `json:"age,omitempty"`
	Role         string    `json:"role"`
	AvatarRef    string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
