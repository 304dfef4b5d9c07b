package model

import "time"

// User roles.
const (
	RoleAdmin  = "admin"
	RoleCommon = "comum"
)

// User is a mock account. Passwords are plain text because the whole auth
// flow is a demo stand-in, same as the dashboard it backs.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"perfil"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
