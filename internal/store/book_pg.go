package store

import (
	"context"
	"errors"

	"locallibrary/internal/entity"
	"locallibrary/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// foreignKeyViolation is the SQLSTATE raised when a RESTRICT delete is
// blocked by referencing rows.
const foreignKeyViolation = "23503"

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error) {
	const countSQL = `
	SELECT COUNT(*)
	FROM books
	WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
	`
	var total int
	if err := r.db.QueryRow(ctx, countSQL, p.Q).Scan(&total); err != nil {
		return nil, 0, err
	}

	const dataSQL = `
	SELECT id, title, summary, isbn, author_id, language_id, created_at, updated_at
	FROM books
	WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
	ORDER BY title
	LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, dataSQL, p.Q, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.LanguageID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range books {
		genres, err := r.genresFor(ctx, books[i].ID)
		if err != nil {
			return nil, 0, err
		}
		books[i].Genres = genres
	}
	return books, total, nil
}

func (r *BookPG) Get(ctx context.Context, id string) (entity.Book, error) {
	const query = `
	SELECT id, title, summary, isbn, author_id, language_id, created_at, updated_at
	FROM books
	WHERE id = $1
	LIMIT 1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.LanguageID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	genres, err := r.genresFor(ctx, b.ID)
	if err != nil {
		return entity.Book{}, err
	}
	b.Genres = genres
	return b, nil
}

func (r *BookPG) ListByAuthor(ctx context.Context, authorID string) ([]entity.Book, error) {
	const query = `
	SELECT id, title, summary, isbn, author_id, language_id, created_at, updated_at
	FROM books
	WHERE author_id = $1
	ORDER BY title
	`
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.LanguageID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// Create inserts the book and its genre links in one transaction, so
// a failure leaves no partial book behind.
func (r *BookPG) Create(ctx context.Context, book *entity.Book, genreIDs []string) error {
	const query = `
	INSERT INTO books (id, title, summary, isbn, author_id, language_id)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at
	`
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, book.Title, book.Summary, book.ISBN, book.AuthorID, book.LanguageID).
			Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceGenres(ctx, tx, book.ID, genreIDs)
	})
}

// Update rewrites the book row and its genre set in one transaction;
// on any error the old genre set survives untouched.
func (r *BookPG) Update(ctx context.Context, book *entity.Book, genreIDs []string) error {
	const query = `
	UPDATE books
	SET title = $2, summary = $3, isbn = $4, author_id = $5, language_id = $6, updated_at = now()
	WHERE id = $1
	RETURNING updated_at
	`
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, book.ID, book.Title, book.Summary, book.ISBN, book.AuthorID, book.LanguageID).
			Scan(&book.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceGenres(ctx, tx, book.ID, genreIDs)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

// Delete removes a book. The copies table references books with
// ON DELETE RESTRICT, so a book with live copies cannot be removed.
func (r *BookPG) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return usecase.ErrBookInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *BookPG) genresFor(ctx context.Context, bookID string) ([]entity.Genre, error) {
	const query = `
	SELECT g.id, g.name
	FROM book_genres bg
	JOIN genres g ON g.id = bg.genre_id
	WHERE bg.book_id = $1
	`
	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []entity.Genre
	for rows.Next() {
		var g entity.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func replaceGenres(ctx context.Context, tx pgx.Tx, bookID string, genreIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, bookID); err != nil {
		return err
	}
	for _, genreID := range genreIDs {
		const insertSQL = `
		INSERT INTO book_genres (book_id, genre_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
		`
		if _, err := tx.Exec(ctx, insertSQL, bookID, genreID); err != nil {
			return err
		}
	}
	return nil
}
