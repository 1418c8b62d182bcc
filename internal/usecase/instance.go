package usecase

import (
	"context"
	"time"

	"locallibrary/internal/entity"
)

// BookInstanceRepository is the persistence contract for copies.
type BookInstanceRepository interface {
	Get(ctx context.Context, id string) (entity.BookInstance, error)
	Create(ctx context.Context, instance *entity.BookInstance) error

	// ListByBook returns every copy of one book, for the detail view.
	ListByBook(ctx context.Context, bookID string) ([]entity.BookInstance, error)

	// ListLoanedToUser returns the copies currently on loan to one
	// borrower, ascending by due date.
	ListLoanedToUser(ctx context.Context, userID string, limit, offset int) ([]entity.BookInstance, int, error)

	// ListBorrowed returns every copy with a borrower set, ordered by
	// borrower, for the librarian overview.
	ListBorrowed(ctx context.Context, limit, offset int) ([]entity.BookInstance, int, error)

	// UpdateDueBack persists a renewed due date.
	UpdateDueBack(ctx context.Context, id string, dueBack time.Time) error
}
