/*
Package user (Postgres) implements the storage layer for member profiles.

# Schema Table Mapping
  - users: Master profile data.
  - friendship: Directed friendship edges (see store_postgres_friendship.go).
*/
package user

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

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListUsers(context context.Context) ([]*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.Users.ID, schema.Users.Email, schema.Users.Login,
		schema.Users.Name, schema.Users.Birthday,
		schema.Users.Table,
		schema.Users.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	return collectUsers(rows)
}

/*
GetUserByID retrieves a single profile.

Returns:
  - *User: Hydrated profile entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresRepository) GetUserByID(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.Users.ID, schema.Users.Email, schema.Users.Login,
		schema.Users.Name, schema.Users.Birthday,
		schema.Users.Table,
		schema.Users.ID,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&user.ID, &user.Email, &user.Login, &user.Name, &user.Birthday,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("User")
	}

	return user, dberr.Wrap(err, "get_user")
}

// CreateUser inserts a profile and fills the generated id on the entity.
func (repository *PostgresRepository) CreateUser(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s;
	`,
		schema.Users.Table,
		schema.Users.Email, schema.Users.Login, schema.Users.Name, schema.Users.Birthday,
		schema.Users.ID,
	)

	err := repository.db.QueryRow(context, query,
		user.Email, user.Login, user.Name, user.Birthday,
	).Scan(&user.ID)

	return dberr.Wrap(err, "create_user")
}

// UpdateUser rewrites every mutable column. A missing row is a NotFound,
// never a silent no-op.
func (repository *PostgresRepository) UpdateUser(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1;
	`,
		schema.Users.Table,
		schema.Users.Email, schema.Users.Login, schema.Users.Name, schema.Users.Birthday,
		schema.Users.ID,
	)

	tag, err := repository.db.Exec(context, query,
		user.ID, user.Email, user.Login, user.Name, user.Birthday,
	)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

func (repository *PostgresRepository) UserExists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1);`,
		schema.Users.Table, schema.Users.ID)

	var exists bool
	err := repository.db.QueryRow(context, query, id).Scan(&exists)
	return exists, dberr.Wrap(err, "user_exists")
}

// collectUsers drains a result set whose columns match the profile SELECT order.
func collectUsers(rows pgx.Rows) ([]*User, error) {
	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.Login, &user.Name, &user.Birthday); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}
	return users, nil
}
