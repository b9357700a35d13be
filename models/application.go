package models

import "time"

// Category is one of the four application kinds. Each category has its own
// collection and its own set of roles allowed to review it.
type Category string

const (
	CategoryGang      Category = "gang"
	CategoryFaction   Category = "faction"
	CategoryWhitelist Category = "whitelist"
	CategoryAdmin     Category = "admin"
)

// Categories lists every valid category in a stable order.
var Categories = []Category{CategoryGang, CategoryFaction, CategoryWhitelist, CategoryAdmin}

// ParseCategory maps a request path segment to a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryGang, CategoryFaction, CategoryWhitelist, CategoryAdmin:
		return Category(s), true
	}
	return "", false
}

// Application is one submitted application. User references the submitting
// account's username (always taken from the session, never from the request
// body); Content is whatever structured payload the form sent.
type Application struct {
	User    string    `json:"user"`
	Content any       `json:"content"`
	Date    time.Time `json:"date"`
}
