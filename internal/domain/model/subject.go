package model

import "time"

// Subject groups notes under a stream (e.g. Physics).
type Subject struct {
	ID        int64
	StreamID  int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
