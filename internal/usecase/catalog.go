package usecase

import (
	"context"

	"locallibrary/internal/entity"
)

// Default page sizes for the catalog listings.
const (
	BooksPageSize   = 3
	AuthorsPageSize = 4
	LoansPageSize   = 10
)

// ListParams carries pagination and the optional title filter for the
// book listing.
type ListParams struct {
	Q      string
	Limit  int
	Offset int
}

// BookRepository is the persistence contract for books. List is
// ordered by title. Delete fails with ErrBookInUse while any copy
// still references the book.
type BookRepository interface {
	List(ctx context.Context, p ListParams) ([]entity.Book, int, error)
	Get(ctx context.Context, id string) (entity.Book, error)

	// ListByAuthor returns an author's books ordered by title, for the
	// author detail view.
	ListByAuthor(ctx context.Context, authorID string) ([]entity.Book, error)
	Create(ctx context.Context, book *entity.Book, genreIDs []string) error
	Update(ctx context.Context, book *entity.Book, genreIDs []string) error
	Delete(ctx context.Context, id string) error
}

// AuthorRepository is the persistence contract for authors. List is
// ordered by (last name, first name).
type AuthorRepository interface {
	List(ctx context.Context, limit, offset int) ([]entity.Author, int, error)
	Get(ctx context.Context, id string) (entity.Author, error)
	Create(ctx context.Context, author *entity.Author) error
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id string) error
}

type GenreRepository interface {
	List(ctx context.Context) ([]entity.Genre, error)
	Create(ctx context.Context, genre *entity.Genre) error
}

type LanguageRepository interface {
	List(ctx context.Context) ([]entity.Language, error)
	Create(ctx context.Context, language *entity.Language) error
}
