package domain

import "time"

// Session is the authenticated identity plus the bearer token the backend
// issued for it. A session with an empty token is anonymous.
type Session struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
	// VerifiedAt records when User was last confirmed against /auth/me.
	VerifiedAt time.Time `json:"verifiedAt"`
	// Flash is a one-shot notice shown on the next rendered page.
	Flash string `json:"flash,omitempty"`
}

// Authenticated reports whether the session holds a resolved identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s.Authenticated() && s.User.IsAdmin()
}
