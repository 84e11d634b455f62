package entity

import "time"

// Session is a server-side admin session, keyed by an opaque token carried in
// a cookie. It is created at login, destroyed at logout and expires after a
// fixed TTL.
type Session struct {
	Token     string
	AdminID   int64
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// Identity returns the admin identity bound to the session.
func (s *Session) Identity() *AdminIdentity {
	return &AdminIdentity{ID: s.AdminID, Username: s.Username}
}
