package genre

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/kinotek/internal/platform/apperr"
)

// MemoryRepository keeps the genre catalogue and the film-to-genre edges in
// maps. It is used by tests as a stand-in for the Postgres store; the film
// memory store calls SyncFilm to mirror the shared junction table.
type MemoryRepository struct {
	mu         sync.RWMutex
	genres     map[int64]*Genre
	order      []int64
	filmGenres map[int64][]int64
}

func NewMemoryRepository() *MemoryRepository {
	repository := &MemoryRepository{
		genres:     make(map[int64]*Genre),
		filmGenres: make(map[int64][]int64),
	}
	for _, name := range []string{"Comedy", "Drama", "Cartoon", "Thriller", "Documentary", "Action"} {
		id := int64(len(repository.order) + 1)
		repository.genres[id] = &Genre{ID: id, Name: name}
		repository.order = append(repository.order, id)
	}
	return repository
}

func (repository *MemoryRepository) ListGenres(_ context.Context) ([]*Genre, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	genres := make([]*Genre, 0, len(repository.order))
	for _, id := range repository.order {
		copied := *repository.genres[id]
		genres = append(genres, &copied)
	}
	return genres, nil
}

func (repository *MemoryRepository) GetGenreByID(_ context.Context, id int64) (*Genre, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	genre, ok := repository.genres[id]
	if !ok {
		return nil, apperr.NotFound("Genre")
	}
	copied := *genre
	return &copied, nil
}

func (repository *MemoryRepository) FindByFilmID(context context.Context, filmID int64) ([]Genre, error) {
	byFilm, err := repository.FindByFilmIDs(context, []int64{filmID})
	if err != nil {
		return nil, err
	}
	return byFilm[filmID], nil
}

func (repository *MemoryRepository) FindByFilmIDs(_ context.Context, filmIDs []int64) (map[int64][]Genre, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	byFilm := make(map[int64][]Genre, len(filmIDs))
	for _, filmID := range filmIDs {
		for _, genreID := range repository.filmGenres[filmID] {
			if genre, ok := repository.genres[genreID]; ok {
				byFilm[filmID] = append(byFilm[filmID], *genre)
			}
		}
	}
	return byFilm, nil
}

// SyncFilm replaces the genre edges of a film, keeping them sorted by
// genre id the way the junction queries return them.
func (repository *MemoryRepository) SyncFilm(filmID int64, genreIDs []int64) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	edges := make([]int64, len(genreIDs))
	copy(edges, genreIDs)
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	repository.filmGenres[filmID] = edges
}
