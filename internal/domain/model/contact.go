package model

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
