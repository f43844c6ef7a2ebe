// Package mpa holds the Motion Picture Association age-rating reference data.
//
// Ratings are read-only: they are seeded by migration and only ever embedded
// into films by id.
package mpa

// MPA is a single age rating (G, PG, PG-13, R, NC-17).
//
// Name is omitted from JSON when empty so that write payloads may carry a
// bare {"id": n} reference.
type MPA struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}
