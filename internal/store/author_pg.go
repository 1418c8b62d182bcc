package store

import (
	"context"
	"errors"

	"locallibrary/internal/entity"
	"locallibrary/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthorPG struct {
	db *pgxpool.Pool
}

func NewAuthorPG(db *pgxpool.Pool) *AuthorPG {
	return &AuthorPG{db: db}
}

func (r *AuthorPG) List(ctx context.Context, limit, offset int) ([]entity.Author, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT id, first_name, last_name, date_of_birth, date_of_death, created_at, updated_at
	FROM authors
	ORDER BY last_name, first_name
	LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var authors []entity.Author
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.DateOfDeath, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

func (r *AuthorPG) Get(ctx context.Context, id string) (entity.Author, error) {
	const query = `
	SELECT id, first_name, last_name, date_of_birth, date_of_death, created_at, updated_at
	FROM authors
	WHERE id = $1
	LIMIT 1
	`
	var a entity.Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.DateOfDeath, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, err
	}
	return a, nil
}

func (r *AuthorPG) Create(ctx context.Context, author *entity.Author) error {
	const query = `
	INSERT INTO authors (id, first_name, last_name, date_of_birth, date_of_death)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, author.FirstName, author.LastName, author.DateOfBirth, author.DateOfDeath).
		Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)
}

func (r *AuthorPG) Update(ctx context.Context, author *entity.Author) error {
	const query = `
	UPDATE authors
	SET first_name = $2, last_name = $3, date_of_birth = $4, date_of_death = $5, updated_at = now()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, author.ID, author.FirstName, author.LastName, author.DateOfBirth, author.DateOfDeath).
		Scan(&author.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

// Delete removes an author. Books referencing the author keep their
// rows with author_id set to NULL (ON DELETE SET NULL).
func (r *AuthorPG) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
