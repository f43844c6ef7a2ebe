package user

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/kinotek/internal/platform/apperr"
)

// MemoryRepository keeps profiles in a map. It is used by tests as a
// stand-in for the Postgres store.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[int64]*User
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[int64]*User), nextID: 1}
}

func (repository *MemoryRepository) ListUsers(_ context.Context) ([]*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	users := make([]*User, 0, len(repository.users))
	for _, user := range repository.users {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (repository *MemoryRepository) GetUserByID(_ context.Context, id int64) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (repository *MemoryRepository) CreateUser(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user.ID = repository.nextID
	repository.nextID++

	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

func (repository *MemoryRepository) UpdateUser(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}

	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

func (repository *MemoryRepository) UserExists(_ context.Context, id int64) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.users[id]
	return ok, nil
}
