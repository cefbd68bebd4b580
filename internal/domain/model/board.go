package model

import "time"

// Board is the top level of the catalog taxonomy (e.g. an exam board).
type Board struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}
