package user

import (
	"strings"

	"github.com/taibuivan/kinotek/internal/platform/validate"
	"github.com/taibuivan/kinotek/pkg/date"
)

// Validate checks the write-payload rules for a user. The id is ignored so
// the same rules cover create and update.
func Validate(user *User) error {
	v := &validate.Validator{}
	v.Required("email", user.Email).
		Email("email", user.Email).
		Required("login", user.Login).
		NoWhitespace("login", user.Login).
		DateRequired("birthday", user.Birthday).
		DateNotAfter("birthday", user.Birthday, date.Today())
	return v.Err()
}

// Normalize fills the display name from the login when it is blank.
// It must run after Validate so the login is known to be usable.
func Normalize(user *User) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
}
