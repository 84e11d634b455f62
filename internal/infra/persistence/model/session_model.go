package model

import "time"

// SessionModel is the GORM-specific struct for the 'sessions' table. The
// token is the opaque value carried in the session cookie.
type SessionModel struct {
	Token     string      `gorm:"type:varchar(36);primaryKey"`
	AdminID   int64       `gorm:"not null;index"`
	Username  string      `gorm:"type:varchar(100);not null"`
	ExpiresAt time.Time   `gorm:"not null;index"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
	Admin     *AdminModel `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
