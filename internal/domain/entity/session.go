package entity

import "time"

// Session is the application context of the logged-in user. It is created on
// login or registration, passed explicitly into usecase operations and removed
// on logout.
type Session struct {
	User      *User     `json:"user"`
	StartedAt time.Time `json:"startedAt"`
}

// NewSession starts a session for user.
func NewSession(user *User, now time.Time) *Session {
	return &Session{User: user, StartedAt: now}
}

// Email returns the session user's email, or "" for an empty session.
func (s *Session) Email() string {
	if s == nil || s.User == nil {
		return ""
	}

	return s.User.Email
}

// HasRole reports whether the session user has one of roles.
func (s *Session) HasRole(roles ...Role) bool {
	if s == nil || s.User == nil {
		return false
	}

	return Roles(roles).Contains(s.User.Role)
}
