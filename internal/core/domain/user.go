package domain

// Role strings as reported by the board API.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is the client-side mirror of an account record. Identity is
// established once per session and is immutable thereafter except on logout.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt Time   `json:"createdAt"`
}

// IsAdmin reports whether the user carries the administrator role. Safe on a
// nil receiver so anonymous sessions can be asked directly.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
