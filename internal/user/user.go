// Package user implements the member catalogue: profiles plus the directed
// friendship graph between them.
package user

import "github.com/taibuivan/kinotek/pkg/date"

// User is a registered member of the catalogue.
type User struct {
	ID       int64     `json:"id"`
	Email    string    `json:"email"`
	Login    string    `json:"login"`
	Name     string    `json:"name"`
	Birthday date.Date `json:"birthday"`
}
