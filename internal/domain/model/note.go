package model

import "time"

// Note is a purchasable PDF document listed in the catalog.
type Note struct {
	ID           int64
	SubjectID    int64
	Title        string
	Description  string
	Price        float64
	Pages        int
	FileName     string
	FileURL      string
	PreviewImage string
	IsActive     bool
	CreatedBy    int64
	CreatedAt    time.Time
}

// NoteView is a note with its taxonomy chain resolved for display.
type NoteView struct {
	Note
	SubjectName string
	StreamID    int64
	StreamName  string
	BoardID     int64
	BoardName   string
}

// NoteFilter narrows catalog listings. Zero values mean "no constraint".
type NoteFilter struct {
	SubjectID int64
	StreamID  int64
	BoardID   int64
	Search    string
}
