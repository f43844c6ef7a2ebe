package film

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kinotek/internal/platform/database/schema"
	"github.com/taibuivan/kinotek/internal/platform/dberr"
)

// PostgresLikeRepository implements [LikeRepository] using pgx.
type PostgresLikeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresLikeRepository(db *pgxpool.Pool) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// AddLike records a like edge. Liking the same film twice is a no-op.
func (repository *PostgresLikeRepository) AddLike(context context.Context, filmID, userID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING;
	`,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID, schema.FilmLike.UserID,
		schema.FilmLike.FilmID, schema.FilmLike.UserID,
	)

	_, err := repository.db.Exec(context, query, filmID, userID)
	return dberr.Wrap(err, "add_like")
}

// DeleteLike removes the edge if present; a missing edge is not an error.
func (repository *PostgresLikeRepository) DeleteLike(context context.Context, filmID, userID int64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2;
	`,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID, schema.FilmLike.UserID,
	)

	_, err := repository.db.Exec(context, query, filmID, userID)
	return dberr.Wrap(err, "delete_like")
}

func (repository *PostgresLikeRepository) ListLikes(context context.Context, filmID int64) ([]int64, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.FilmLike.UserID,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID,
		schema.FilmLike.UserID,
	)

	rows, err := repository.db.Query(context, query, filmID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_likes")
	}
	defer rows.Close()

	var userIDs []int64
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, dberr.Wrap(err, "scan_like")
		}
		userIDs = append(userIDs, userID)
	}

	return userIDs, nil
}
