package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kinotek/internal/platform/database/schema"
	"github.com/taibuivan/kinotek/internal/platform/dberr"
)

// PostgresFriendshipRepository implements [FriendshipRepository] using pgx.
//
// Edges carry an active flag reserved for a future confirmation flow; every
// edge is written unconfirmed and the flag is never read back.
type PostgresFriendshipRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFriendshipRepository(db *pgxpool.Pool) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// AddFriend records a one-way edge. Re-adding an existing friend is a no-op.
func (repository *PostgresFriendshipRepository) AddFriend(context context.Context, userID, friendID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (%s, %s) DO NOTHING;
	`,
		schema.Friendship.Table,
		schema.Friendship.UserID, schema.Friendship.FriendID, schema.Friendship.Active,
		schema.Friendship.UserID, schema.Friendship.FriendID,
	)

	_, err := repository.db.Exec(context, query, userID, friendID)
	return dberr.Wrap(err, "add_friend")
}

// DeleteFriend removes the edge if present; a missing edge is not an error.
func (repository *PostgresFriendshipRepository) DeleteFriend(context context.Context, userID, friendID int64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2;
	`,
		schema.Friendship.Table,
		schema.Friendship.UserID, schema.Friendship.FriendID,
	)

	_, err := repository.db.Exec(context, query, userID, friendID)
	return dberr.Wrap(err, "delete_friend")
}

func (repository *PostgresFriendshipRepository) ListFriends(context context.Context, userID int64) ([]*User, error) {
	query := fmt.Sprintf(`
		SELECT u.%s, u.%s, u.%s, u.%s, u.%s
		FROM %s u
		JOIN %s f ON u.%s = f.%s
		WHERE f.%s = $1
		ORDER BY u.%s ASC;
	`,
		schema.Users.ID, schema.Users.Email, schema.Users.Login,
		schema.Users.Name, schema.Users.Birthday,
		schema.Users.Table,
		schema.Friendship.Table, schema.Users.ID, schema.Friendship.FriendID,
		schema.Friendship.UserID,
		schema.Users.ID,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_friends")
	}
	defer rows.Close()

	return collectUsers(rows)
}

// ListCommonFriends intersects the friend sets of two users in one query.
func (repository *PostgresFriendshipRepository) ListCommonFriends(context context.Context, userID, otherID int64) ([]*User, error) {
	query := fmt.Sprintf(`
		SELECT u.%s, u.%s, u.%s, u.%s, u.%s
		FROM %s u
		JOIN %s mine ON u.%s = mine.%s AND mine.%s = $1
		JOIN %s theirs ON u.%s = theirs.%s AND theirs.%s = $2
		ORDER BY u.%s ASC;
	`,
		schema.Users.ID, schema.Users.Email, schema.Users.Login,
		schema.Users.Name, schema.Users.Birthday,
		schema.Users.Table,
		schema.Friendship.Table, schema.Users.ID, schema.Friendship.FriendID, schema.Friendship.UserID,
		schema.Friendship.Table, schema.Users.ID, schema.Friendship.FriendID, schema.Friendship.UserID,
		schema.Users.ID,
	)

	rows, err := repository.db.Query(context, query, userID, otherID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_common_friends")
	}
	defer rows.Close()

	return collectUsers(rows)
}
