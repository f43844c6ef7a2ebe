// Package genre holds the genre reference data and the film-to-genre
// junction queries used to hydrate film payloads.
package genre

// Genre is a single catalogue genre (Comedy, Drama, ...).
//
// Name is omitted from JSON when empty so that write payloads may carry a
// bare {"id": n} reference.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}
