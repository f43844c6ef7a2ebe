package user

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/internal/platform/validate"
)

type Service struct {
	repo        Repository
	friendships FriendshipRepository
	logger      *slog.Logger
}

func NewService(repo Repository, friendships FriendshipRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		friendships: friendships,
		logger:      logger,
	}
}

func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.repo.ListUsers(context)
}

func (service *Service) GetUser(context context.Context, id int64) (*User, error) {
	return service.repo.GetUserByID(context, id)
}

func (service *Service) CreateUser(context context.Context, user *User) (*User, error) {
	if err := Validate(user); err != nil {
		return nil, err
	}
	Normalize(user)

	if err := service.repo.CreateUser(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_created",
		slog.Int64("user_id", user.ID),
		slog.String("login", user.Login),
	)
	return user, nil
}

func (service *Service) UpdateUser(context context.Context, user *User) (*User, error) {
	if err := Validate(user); err != nil {
		return nil, err
	}
	Normalize(user)

	if err := service.repo.UpdateUser(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_updated", slog.Int64("user_id", user.ID))
	return user, nil
}

// # Friendship

func (service *Service) AddFriend(context context.Context, userID, friendID int64) error {
	if userID == friendID {
		return validate.RequiredError("friendId", "Cannot befriend yourself")
	}
	if err := service.ensureUsersExist(context, userID, friendID); err != nil {
		return err
	}

	if err := service.friendships.AddFriend(context, userID, friendID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "friend_added",
		slog.Int64("user_id", userID),
		slog.Int64("friend_id", friendID),
	)
	return nil
}

func (service *Service) DeleteFriend(context context.Context, userID, friendID int64) error {
	if userID == friendID {
		return validate.RequiredError("friendId", "Cannot befriend yourself")
	}
	if err := service.ensureUsersExist(context, userID, friendID); err != nil {
		return err
	}

	return service.friendships.DeleteFriend(context, userID, friendID)
}

func (service *Service) ListFriends(context context.Context, userID int64) ([]*User, error) {
	if err := service.ensureUsersExist(context, userID); err != nil {
		return nil, err
	}

	return service.friendships.ListFriends(context, userID)
}

func (service *Service) ListCommonFriends(context context.Context, userID, otherID int64) ([]*User, error) {
	if err := service.ensureUsersExist(context, userID, otherID); err != nil {
		return nil, err
	}

	return service.friendships.ListCommonFriends(context, userID, otherID)
}

// ensureUsersExist probes every id before an edge operation so that graph
// writes never point at missing rows.
func (service *Service) ensureUsersExist(context context.Context, ids ...int64) error {
	for _, id := range ids {
		exists, err := service.repo.UserExists(context, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("User")
		}
	}
	return nil
}
