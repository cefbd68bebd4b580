package model

import "time"

// Stream groups subjects under a board (e.g. Science, Commerce).
type Stream struct {
	ID        int64
	BoardID   int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
