package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table    string
	ID       string
	Email    string
	Login    string
	Name     string
	Birthday string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:    "users",
	ID:       "id",
	Email:    "email",
	Login:    "login",
	Name:     "name",
	Birthday: "birthday",
}

func (t UsersTable) Columns() []string {
	return []string{t.ID, t.Email, t.Login, t.Name, t.Birthday}
}
