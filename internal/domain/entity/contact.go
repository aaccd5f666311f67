package entity

import "time"

// Contact is a message left through the contact form.
type Contact struct {
	ID        uint
	Email     string
	Messages  string
	CreatedAt time.Time
}
