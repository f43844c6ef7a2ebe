package film

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/kinotek/internal/genre"
	"github.com/taibuivan/kinotek/internal/mpa"
	"github.com/taibuivan/kinotek/internal/platform/apperr"
)

// MemoryRepository keeps films and their like edges in maps, implementing
// both [Repository] and [LikeRepository]. It mirrors the junction bookkeeping
// of the Postgres store by syncing genre edges into the genre memory store.
type MemoryRepository struct {
	mu      sync.RWMutex
	films   map[int64]*Film
	likes   map[int64]map[int64]bool
	nextID  int64
	genres  *genre.MemoryRepository
	ratings *mpa.MemoryRepository
}

func NewMemoryRepository(genres *genre.MemoryRepository, ratings *mpa.MemoryRepository) *MemoryRepository {
	return &MemoryRepository{
		films:   make(map[int64]*Film),
		likes:   make(map[int64]map[int64]bool),
		nextID:  1,
		genres:  genres,
		ratings: ratings,
	}
}

func (repository *MemoryRepository) ListFilms(_ context.Context) ([]*Film, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	films := make([]*Film, 0, len(repository.films))
	for _, film := range repository.films {
		films = append(films, repository.snapshot(film))
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (repository *MemoryRepository) GetFilmByID(_ context.Context, id int64) (*Film, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	film, ok := repository.films[id]
	if !ok {
		return nil, apperr.NotFound("Film")
	}
	return repository.snapshot(film), nil
}

func (repository *MemoryRepository) CreateFilm(context context.Context, film *Film) error {
	repository.mu.Lock()
	film.ID = repository.nextID
	repository.nextID++

	stored := repository.store(context, film)
	repository.films[film.ID] = stored
	repository.mu.Unlock()

	repository.genres.SyncFilm(film.ID, film.GenreIDs())
	return nil
}

func (repository *MemoryRepository) UpdateFilm(context context.Context, film *Film) error {
	repository.mu.Lock()
	if _, ok := repository.films[film.ID]; !ok {
		repository.mu.Unlock()
		return apperr.NotFound("Film")
	}

	stored := repository.store(context, film)
	repository.films[film.ID] = stored
	repository.mu.Unlock()

	repository.genres.SyncFilm(film.ID, film.GenreIDs())
	return nil
}

func (repository *MemoryRepository) ListPopular(_ context.Context, count int) ([]*Film, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	films := make([]*Film, 0, len(repository.films))
	for _, film := range repository.films {
		films = append(films, repository.snapshot(film))
	}

	sort.Slice(films, func(i, j int) bool {
		left, right := len(repository.likes[films[i].ID]), len(repository.likes[films[j].ID])
		if left != right {
			return left > right
		}
		return films[i].ID < films[j].ID
	})

	if count < len(films) {
		films = films[:count]
	}
	return films, nil
}

func (repository *MemoryRepository) FilmExists(_ context.Context, id int64) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.films[id]
	return ok, nil
}

// # LikeRepository

func (repository *MemoryRepository) AddLike(_ context.Context, filmID, userID int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.likes[filmID] == nil {
		repository.likes[filmID] = make(map[int64]bool)
	}
	repository.likes[filmID][userID] = true
	return nil
}

func (repository *MemoryRepository) DeleteLike(_ context.Context, filmID, userID int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.likes[filmID], userID)
	return nil
}

func (repository *MemoryRepository) ListLikes(_ context.Context, filmID int64) ([]int64, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var userIDs []int64
	for userID := range repository.likes[filmID] {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })
	return userIDs, nil
}

// store normalises a write payload into the row shape the Postgres store
// would persist: only the MPA id survives; genres live in the genre store.
func (repository *MemoryRepository) store(context context.Context, film *Film) *Film {
	stored := &Film{
		ID:          film.ID,
		Name:        film.Name,
		Description: film.Description,
		ReleaseDate: film.ReleaseDate,
		Duration:    film.Duration,
	}
	if film.MPA != nil {
		if rating, err := repository.ratings.GetRatingByID(context, film.MPA.ID); err == nil {
			stored.MPA = rating
		} else {
			stored.MPA = &mpa.MPA{ID: film.MPA.ID}
		}
	}
	return stored
}

// snapshot copies a row the way a SELECT would return it.
func (repository *MemoryRepository) snapshot(film *Film) *Film {
	copied := *film
	if film.MPA != nil {
		rating := *film.MPA
		copied.MPA = &rating
	}
	copied.Genres = nil
	copied.Likes = nil
	return &copied
}
