package store

import (
	"context"

	"locallibrary/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GenrePG struct {
	db *pgxpool.Pool
}

func NewGenrePG(db *pgxpool.Pool) *GenrePG {
	return &GenrePG{db: db}
}

func (r *GenrePG) List(ctx context.Context) ([]entity.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genres ORDER BY name`)
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

func (r *GenrePG) Create(ctx context.Context, genre *entity.Genre) error {
	const query = `
	INSERT INTO genres (id, name)
	VALUES (gen_random_uuid(), $1)
	RETURNING id
	`
	return r.db.QueryRow(ctx, query, genre.Name).Scan(&genre.ID)
}
