package entity

import "time"

// Contact is a submitted contact-form message. Write-only from the API's
// perspective; rows are read out-of-band.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
