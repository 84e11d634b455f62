package entity

import "time"

// Admin is a catalog administrator account. Admins are created only by the
// seed step, never through the API.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// AdminIdentity is the public identity bound to an authenticated session.
type AdminIdentity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Identity returns the admin's public identity.
func (a *Admin) Identity() *AdminIdentity {
	return &AdminIdentity{ID: a.ID, Username: a.Username}
}
