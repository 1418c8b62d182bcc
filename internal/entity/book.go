package entity

import (
	"strings"
	"time"
)

type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	ISBN       string    `json:"isbn"`
	AuthorID   *string   `json:"author_id,omitempty"`
	LanguageID *string   `json:"language_id,omitempty"`
	Genres     []Genre   `json:"genres,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AbsoluteURL is the canonical detail locator for this book,
// derivable from the id alone.
func (b Book) AbsoluteURL() string {
	return "/catalog/books/" + b.ID
}

// DisplayGenre joins the names of at most the first three genres
// for compact listing columns. Empty string when the book has none.
func (b Book) DisplayGenre() string {
	n := len(b.Genres)
	if n > 3 {
		n = 3
	}
	names := make([]string, 0, n)
	for _, g := range b.Genres[:n] {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}
