package store

import (
	"context"

	"locallibrary/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SummaryPG struct {
	db *pgxpool.Pool
}

func NewSummaryPG(db *pgxpool.Pool) *SummaryPG {
	return &SummaryPG{db: db}
}

// CatalogCounts gathers the home page figures in one round trip.
func (r *SummaryPG) CatalogCounts(ctx context.Context) (usecase.CatalogCounts, error) {
	const query = `
	SELECT
		(SELECT COUNT(*) FROM books),
		(SELECT COUNT(*) FROM book_instances),
		(SELECT COUNT(*) FROM book_instances WHERE status = 'a'),
		(SELECT COUNT(*) FROM authors),
		(SELECT COUNT(*) FROM genres),
		(SELECT COUNT(*) FROM books WHERE summary LIKE '%The%')
	`
	var c usecase.CatalogCounts
	err := r.db.QueryRow(ctx, query).Scan(
		&c.NumBooks,
		&c.NumInstances,
		&c.NumInstancesAvailable,
		&c.NumAuthors,
		&c.NumGenre,
		&c.TheBooks,
	)
	if err != nil {
		return usecase.CatalogCounts{}, err
	}
	return c, nil
}
