package entity

import "time"

// Blog is an external article promoted on the site.
type Blog struct {
	ID              uint
	Title           string
	AuthorName      string
	Email           string
	URL             string
	Description     string
	Tags            []Tag
	ImageURL        string
	ImageAlt        string
	PublicationDate time.Time
}

// Page is an offset window over a listing.
type Page struct {
	Limit  int
	Offset int
}
