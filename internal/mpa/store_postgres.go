package mpa

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/internal/platform/database/schema"
	"github.com/taibuivan/kinotek/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListRatings(context context.Context) ([]*MPA, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.Mpas.ID,
		schema.Mpas.Name,
		schema.Mpas.Table,
		schema.Mpas.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_mpas")
	}
	defer rows.Close()

	var ratings []*MPA
	for rows.Next() {
		rating := &MPA{}
		if err := rows.Scan(&rating.ID, &rating.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_mpa")
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}

func (repository *PostgresRepository) GetRatingByID(context context.Context, id int64) (*MPA, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.Mpas.ID,
		schema.Mpas.Name,
		schema.Mpas.Table,
		schema.Mpas.ID,
	)

	rating := &MPA{}
	err := repository.db.QueryRow(context, query, id).Scan(&rating.ID, &rating.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Mpa")
	}

	return rating, dberr.Wrap(err, "get_mpa")
}
