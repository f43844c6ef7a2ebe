package genre

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

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.Genres.ID,
		schema.Genres.Name,
		schema.Genres.Table,
		schema.Genres.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		genre := &Genre{}
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, genre)
	}

	return genres, nil
}

func (repository *PostgresRepository) GetGenreByID(context context.Context, id int64) (*Genre, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.Genres.ID,
		schema.Genres.Name,
		schema.Genres.Table,
		schema.Genres.ID,
	)

	genre := &Genre{}
	err := repository.db.QueryRow(context, query, id).Scan(&genre.ID, &genre.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Genre")
	}

	return genre, dberr.Wrap(err, "get_genre")
}

func (repository *PostgresRepository) FindByFilmID(context context.Context, filmID int64) ([]Genre, error) {
	byFilm, err := repository.FindByFilmIDs(context, []int64{filmID})
	if err != nil {
		return nil, err
	}
	return byFilm[filmID], nil
}

// FindByFilmIDs loads the genres of many films in a single query so that
// film listings avoid a per-row round trip.
func (repository *PostgresRepository) FindByFilmIDs(context context.Context, filmIDs []int64) (map[int64][]Genre, error) {
	byFilm := make(map[int64][]Genre, len(filmIDs))
	if len(filmIDs) == 0 {
		return byFilm, nil
	}

	query := fmt.Sprintf(`
		SELECT fg.%s, g.%s, g.%s
		FROM %s fg
		JOIN %s g ON g.%s = fg.%s
		WHERE fg.%s = ANY($1)
		ORDER BY fg.%s ASC, g.%s ASC;
	`,
		schema.FilmGenre.FilmID,
		schema.Genres.ID,
		schema.Genres.Name,
		schema.FilmGenre.Table,
		schema.Genres.Table,
		schema.Genres.ID,
		schema.FilmGenre.GenreID,
		schema.FilmGenre.FilmID,
		schema.FilmGenre.FilmID,
		schema.Genres.ID,
	)

	rows, err := repository.db.Query(context, query, filmIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "find_film_genres")
	}
	defer rows.Close()

	for rows.Next() {
		var filmID int64
		var genre Genre
		if err := rows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_film_genre")
		}
		byFilm[filmID] = append(byFilm[filmID], genre)
	}

	return byFilm, nil
}
