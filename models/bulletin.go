package models

import "time"

// PatchNote is one entry on the public patch-notes board.
type PatchNote struct {
	Note string    `json:"note"`
	Date time.Time `json:"date"`
}

// Announcement is one entry on the public announcements board.
type Announcement struct {
	Announcement string    `json:"announcement"`
	Date         time.Time `json:"date"`
}
