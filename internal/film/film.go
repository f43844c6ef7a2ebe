// Package film implements the film catalogue: CRUD, genre and MPA
// hydration, likes, and the popularity ranking.
package film

import (
	"github.com/taibuivan/kinotek/internal/genre"
	"github.com/taibuivan/kinotek/internal/mpa"
	"github.com/taibuivan/kinotek/pkg/date"
)

// Film is a single catalogue entry.
//
// Genres always marshals as an array (possibly empty), never null. Likes is
// hydrated on single-film reads only and is never accepted from write
// payloads.
type Film struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	ReleaseDate date.Date     `json:"releaseDate"`
	Duration    int           `json:"duration"`
	MPA         *mpa.MPA      `json:"mpa,omitempty"`
	Genres      []genre.Genre `json:"genres"`
	Likes       []int64       `json:"likes,omitempty"`
}

// GenreIDs returns the deduplicated genre ids of the write payload,
// preserving first-seen order.
func (film *Film) GenreIDs() []int64 {
	seen := make(map[int64]bool, len(film.Genres))
	ids := make([]int64, 0, len(film.Genres))
	for _, genre := range film.Genres {
		if !seen[genre.ID] {
			seen[genre.ID] = true
			ids = append(ids, genre.ID)
		}
	}
	return ids
}
