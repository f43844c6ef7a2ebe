/*
Package film (Postgres) implements the storage layer for the film catalogue.

# Schema Table Mapping
  - films: Core film rows with a nullable MPA reference.
  - film_genre: Film-to-genre junction, resynchronised on update.
  - film_like: User-to-film like edges (see store_postgres_like.go).
*/
package film

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kinotek/internal/mpa"
	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/internal/platform/database/schema"
	"github.com/taibuivan/kinotek/internal/platform/dberr"
	"github.com/taibuivan/kinotek/pkg/slice"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// filmColumns is the shared SELECT column list: film row plus the MPA name
// resolved by a LEFT JOIN so films without a rating still come back.
func filmColumns() string {
	return fmt.Sprintf(`f.%s, f.%s, f.%s, f.%s, f.%s, f.%s, m.%s`,
		schema.Films.ID, schema.Films.Name, schema.Films.Description,
		schema.Films.ReleaseDate, schema.Films.Duration, schema.Films.MpaID,
		schema.Mpas.Name,
	)
}

func filmJoin() string {
	return fmt.Sprintf(`%s f LEFT JOIN %s m ON m.%s = f.%s`,
		schema.Films.Table, schema.Mpas.Table, schema.Mpas.ID, schema.Films.MpaID,
	)
}

func (repository *PostgresRepository) ListFilms(context context.Context) ([]*Film, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY f.%s ASC;
	`, filmColumns(), filmJoin(), schema.Films.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_films")
	}
	defer rows.Close()

	return collectFilms(rows)
}

func (repository *PostgresRepository) GetFilmByID(context context.Context, id int64) (*Film, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE f.%s = $1;
	`, filmColumns(), filmJoin(), schema.Films.ID)

	film, err := scanFilm(repository.db.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Film")
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_film")
	}

	return film, nil
}

/*
CreateFilm persists the film row and its genre edges in one transaction.

The generated id is written back onto the entity. Genre ids are expected to
be pre-validated; an unknown id surfaces as a foreign key failure.
*/
func (repository *PostgresRepository) CreateFilm(context context.Context, film *Film) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "create_film_begin")
	}
	defer func() { _ = transaction.Rollback(context) }()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s;
	`,
		schema.Films.Table,
		schema.Films.Name, schema.Films.Description, schema.Films.ReleaseDate,
		schema.Films.Duration, schema.Films.MpaID,
		schema.Films.ID,
	)

	err = transaction.QueryRow(context, query,
		film.Name, film.Description, film.ReleaseDate, film.Duration, mpaParam(film),
	).Scan(&film.ID)
	if err != nil {
		return dberr.Wrap(err, "create_film")
	}

	if err := insertGenreEdges(context, transaction, film.ID, film.GenreIDs()); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "create_film_commit")
}

/*
UpdateFilm rewrites the film row and resynchronises its genre edges so the
post-state equals exactly the provided set.

The resync is a set diff, not a full rewrite: edges present in both the old
and new sets are left untouched.
*/
func (repository *PostgresRepository) UpdateFilm(context context.Context, film *Film) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "update_film_begin")
	}
	defer func() { _ = transaction.Rollback(context) }()

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1;
	`,
		schema.Films.Table,
		schema.Films.Name, schema.Films.Description, schema.Films.ReleaseDate,
		schema.Films.Duration, schema.Films.MpaID,
		schema.Films.ID,
	)

	tag, err := transaction.Exec(context, query,
		film.ID, film.Name, film.Description, film.ReleaseDate, film.Duration, mpaParam(film),
	)
	if err != nil {
		return dberr.Wrap(err, "update_film")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Film")
	}

	current, err := currentGenreIDs(context, transaction, film.ID)
	if err != nil {
		return err
	}

	wanted := film.GenreIDs()
	if err := insertGenreEdges(context, transaction, film.ID, slice.Diff(wanted, current)); err != nil {
		return err
	}
	if err := deleteGenreEdges(context, transaction, film.ID, slice.Diff(current, wanted)); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "update_film_commit")
}

// ListPopular ranks films by like count. The LEFT JOIN keeps zero-like films
// in the result; ties break on film id so a snapshot always ranks the same.
func (repository *PostgresRepository) ListPopular(context context.Context, count int) ([]*Film, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		LEFT JOIN %s fl ON fl.%s = f.%s
		GROUP BY f.%s, m.%s
		ORDER BY COUNT(fl.%s) DESC, f.%s ASC
		LIMIT $1;
	`,
		filmColumns(), filmJoin(),
		schema.FilmLike.Table, schema.FilmLike.FilmID, schema.Films.ID,
		schema.Films.ID, schema.Mpas.Name,
		schema.FilmLike.UserID, schema.Films.ID,
	)

	rows, err := repository.db.Query(context, query, count)
	if err != nil {
		return nil, dberr.Wrap(err, "list_popular")
	}
	defer rows.Close()

	return collectFilms(rows)
}

func (repository *PostgresRepository) FilmExists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1);`,
		schema.Films.Table, schema.Films.ID)

	var exists bool
	err := repository.db.QueryRow(context, query, id).Scan(&exists)
	return exists, dberr.Wrap(err, "film_exists")
}

// # Junction helpers

func currentGenreIDs(context context.Context, transaction pgx.Tx, filmID int64) ([]int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1;`,
		schema.FilmGenre.GenreID, schema.FilmGenre.Table, schema.FilmGenre.FilmID)

	rows, err := transaction.Query(context, query, filmID)
	if err != nil {
		return nil, dberr.Wrap(err, "current_genre_edges")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_genre_edge")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func insertGenreEdges(context context.Context, transaction pgx.Tx, filmID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2);`,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID, schema.FilmGenre.GenreID)

	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(query, filmID, genreID)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "insert_genre_edges")
	}
	return nil
}

func deleteGenreEdges(context context.Context, transaction pgx.Tx, filmID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = ANY($2);`,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID, schema.FilmGenre.GenreID)

	_, err := transaction.Exec(context, query, filmID, genreIDs)
	return dberr.Wrap(err, "delete_genre_edges")
}

// # Row mapping

// mpaParam yields the nullable mpa_id insert parameter.
func mpaParam(film *Film) any {
	if film.MPA == nil {
		return nil
	}
	return film.MPA.ID
}

func scanFilm(row pgx.Row) (*Film, error) {
	film := &Film{}
	var mpaID *int64
	var mpaName *string

	err := row.Scan(
		&film.ID, &film.Name, &film.Description,
		&film.ReleaseDate, &film.Duration, &mpaID, &mpaName,
	)
	if err != nil {
		return nil, err
	}

	if mpaID != nil {
		rating := &mpa.MPA{ID: *mpaID}
		if mpaName != nil {
			rating.Name = *mpaName
		}
		film.MPA = rating
	}
	return film, nil
}

func collectFilms(rows pgx.Rows) ([]*Film, error) {
	var films []*Film
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_film")
		}
		films = append(films, film)
	}
	return films, nil
}
