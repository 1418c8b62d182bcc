package store

import (
	"context"

	"locallibrary/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LanguagePG struct {
	db *pgxpool.Pool
}

func NewLanguagePG(db *pgxpool.Pool) *LanguagePG {
	return &LanguagePG{db: db}
}

func (r *LanguagePG) List(ctx context.Context) ([]entity.Language, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code FROM languages ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []entity.Language
	for rows.Next() {
		var l entity.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.Code); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, rows.Err()
}

func (r *LanguagePG) Create(ctx context.Context, language *entity.Language) error {
	const query = `
	INSERT INTO languages (id, name, code)
	VALUES (gen_random_uuid(), $1, $2)
	RETURNING id
	`
	return r.db.QueryRow(ctx, query, language.Name, language.Code).Scan(&language.ID)
}
