package store

import (
	"context"
	"errors"
	"time"

	"locallibrary/internal/entity"
	"locallibrary/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookInstancePG struct {
	db *pgxpool.Pool
}

func NewBookInstancePG(db *pgxpool.Pool) *BookInstancePG {
	return &BookInstancePG{db: db}
}

func (r *BookInstancePG) Get(ctx context.Context, id string) (entity.BookInstance, error) {
	const query = `
	SELECT bi.id, bi.book_id, b.title, bi.imprint, bi.due_back, bi.borrower_id, bi.status, bi.created_at, bi.updated_at
	FROM book_instances bi
	JOIN books b ON b.id = bi.book_id
	WHERE bi.id = $1
	LIMIT 1
	`
	var bi entity.BookInstance
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bi.ID, &bi.BookID, &bi.BookTitle, &bi.Imprint, &bi.DueBack, &bi.BorrowerID, &bi.Status, &bi.CreatedAt, &bi.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.BookInstance{}, usecase.ErrNotFound
		}
		return entity.BookInstance{}, err
	}
	return bi, nil
}

// Create stores a new copy. The id is assigned here, once, and is
// immutable afterwards. New copies default to Maintenance.
func (r *BookInstancePG) Create(ctx context.Context, instance *entity.BookInstance) error {
	if instance.ID == "" {
		instance.ID = uuid.New().String()
	}
	if instance.Status == "" {
		instance.Status = entity.StatusMaintenance
	}
	const query = `
	INSERT INTO book_instances (id, book_id, imprint, due_back, borrower_id, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		instance.ID,
		instance.BookID,
		instance.Imprint,
		instance.DueBack,
		instance.BorrowerID,
		instance.Status,
	).Scan(&instance.CreatedAt, &instance.UpdatedAt)
}

func (r *BookInstancePG) ListByBook(ctx context.Context, bookID string) ([]entity.BookInstance, error) {
	const query = `
	SELECT bi.id, bi.book_id, b.title, bi.imprint, bi.due_back, bi.borrower_id, bi.status, bi.created_at, bi.updated_at
	FROM book_instances bi
	JOIN books b ON b.id = bi.book_id
	WHERE bi.book_id = $1
	ORDER BY bi.imprint, bi.id
	`
	instances, _, err := r.queryInstances(ctx, query, 0, bookID)
	return instances, err
}

func (r *BookInstancePG) ListLoanedToUser(ctx context.Context, userID string, limit, offset int) ([]entity.BookInstance, int, error) {
	const countSQL = `
	SELECT COUNT(*)
	FROM book_instances
	WHERE borrower_id = $1 AND status = 'o'
	`
	var total int
	if err := r.db.QueryRow(ctx, countSQL, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const dataSQL = `
	SELECT bi.id, bi.book_id, b.title, bi.imprint, bi.due_back, bi.borrower_id, bi.status, bi.created_at, bi.updated_at
	FROM book_instances bi
	JOIN books b ON b.id = bi.book_id
	WHERE bi.borrower_id = $1 AND bi.status = 'o'
	ORDER BY bi.due_back
	LIMIT $2 OFFSET $3
	`
	return r.queryInstances(ctx, dataSQL, total, userID, limit, offset)
}

func (r *BookInstancePG) ListBorrowed(ctx context.Context, limit, offset int) ([]entity.BookInstance, int, error) {
	const countSQL = `
	SELECT COUNT(*)
	FROM book_instances
	WHERE borrower_id IS NOT NULL
	`
	var total int
	if err := r.db.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, err
	}

	const dataSQL = `
	SELECT bi.id, bi.book_id, b.title, bi.imprint, bi.due_back, bi.borrower_id, bi.status, bi.created_at, bi.updated_at
	FROM book_instances bi
	JOIN books b ON b.id = bi.book_id
	WHERE bi.borrower_id IS NOT NULL
	ORDER BY bi.borrower_id, bi.due_back
	LIMIT $1 OFFSET $2
	`
	return r.queryInstances(ctx, dataSQL, total, limit, offset)
}

func (r *BookInstancePG) UpdateDueBack(ctx context.Context, id string, dueBack time.Time) error {
	const query = `
	UPDATE book_instances
	SET due_back = $2, updated_at = now()
	WHERE id = $1
	`
	result, err := r.db.Exec(ctx, query, id, dueBack)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *BookInstancePG) queryInstances(ctx context.Context, query string, total int, args ...any) ([]entity.BookInstance, int, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var instances []entity.BookInstance
	for rows.Next() {
		var bi entity.BookInstance
		if err := rows.Scan(&bi.ID, &bi.BookID, &bi.BookTitle, &bi.Imprint, &bi.DueBack, &bi.BorrowerID, &bi.Status, &bi.CreatedAt, &bi.UpdatedAt); err != nil {
			return nil, 0, err
		}
		instances = append(instances, bi)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return instances, total, nil
}
