package user

import (
	"context"
	"sort"
	"sync"
)

// MemoryFriendshipRepository keeps directed edges in nested maps and
// hydrates friend lists from a [MemoryRepository].
type MemoryFriendshipRepository struct {
	mu    sync.RWMutex
	users *MemoryRepository
	edges map[int64]map[int64]bool
}

func NewMemoryFriendshipRepository(users *MemoryRepository) *MemoryFriendshipRepository {
	return &MemoryFriendshipRepository{
		users: users,
		edges: make(map[int64]map[int64]bool),
	}
}

func (repository *MemoryFriendshipRepository) AddFriend(_ context.Context, userID, friendID int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.edges[userID] == nil {
		repository.edges[userID] = make(map[int64]bool)
	}
	repository.edges[userID][friendID] = true
	return nil
}

func (repository *MemoryFriendshipRepository) DeleteFriend(_ context.Context, userID, friendID int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.edges[userID], friendID)
	return nil
}

func (repository *MemoryFriendshipRepository) ListFriends(context context.Context, userID int64) ([]*User, error) {
	repository.mu.RLock()
	ids := make([]int64, 0, len(repository.edges[userID]))
	for friendID := range repository.edges[userID] {
		ids = append(ids, friendID)
	}
	repository.mu.RUnlock()

	return repository.hydrate(context, ids)
}

func (repository *MemoryFriendshipRepository) ListCommonFriends(context context.Context, userID, otherID int64) ([]*User, error) {
	repository.mu.RLock()
	var ids []int64
	for friendID := range repository.edges[userID] {
		if repository.edges[otherID][friendID] {
			ids = append(ids, friendID)
		}
	}
	repository.mu.RUnlock()

	return repository.hydrate(context, ids)
}

func (repository *MemoryFriendshipRepository) hydrate(context context.Context, ids []int64) ([]*User, error) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*User, 0, len(ids))
	for _, id := range ids {
		user, err := repository.users.GetUserByID(context, id)
		if err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}
