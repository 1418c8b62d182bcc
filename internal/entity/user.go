package entity

import "time"

// Roles. Librarians and admins hold the can_mark_returned permission.
const (
	RoleUser      = "USER"
	RoleLibrarian = "LIBRARIAN"
	RoleAdmin     = "ADMIN"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanMarkReturned reports whether a role may manage loans: see the
// all-borrowed listing and renew due dates.
func CanMarkReturned(role string) bool {
	return role == RoleLibrarian || role == RoleAdmin
}
