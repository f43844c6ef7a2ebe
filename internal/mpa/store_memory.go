package mpa

import (
	"context"
	"sync"

	"github.com/taibuivan/kinotek/internal/platform/apperr"
)

// MemoryRepository keeps the rating catalogue in a map. It is used by
// tests as a stand-in for the Postgres store.
type MemoryRepository struct {
	mu      sync.RWMutex
	ratings map[int64]*MPA
	order   []int64
}

func NewMemoryRepository() *MemoryRepository {
	repository := &MemoryRepository{ratings: make(map[int64]*MPA)}
	for _, name := range []string{"G", "PG", "PG-13", "R", "NC-17"} {
		id := int64(len(repository.order) + 1)
		repository.ratings[id] = &MPA{ID: id, Name: name}
		repository.order = append(repository.order, id)
	}
	return repository
}

func (repository *MemoryRepository) ListRatings(_ context.Context) ([]*MPA, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	ratings := make([]*MPA, 0, len(repository.order))
	for _, id := range repository.order {
		copied := *repository.ratings[id]
		ratings = append(ratings, &copied)
	}
	return ratings, nil
}

func (repository *MemoryRepository) GetRatingByID(_ context.Context, id int64) (*MPA, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	rating, ok := repository.ratings[id]
	if !ok {
		return nil, apperr.NotFound("Mpa")
	}
	copied := *rating
	return &copied, nil
}
