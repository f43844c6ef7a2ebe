package schema

// FilmsTable represents the 'films' table
type FilmsTable struct {
	Table       string
	ID          string
	MpaID       string
	Name        string
	Description string
	ReleaseDate string
	Duration    string
}

// Films is the schema definition for films
var Films = FilmsTable{
	Table:       "films",
	ID:          "id",
	MpaID:       "mpa_id",
	Name:        "name",
	Description: "description",
	ReleaseDate: "release_date",
	Duration:    "duration",
}

func (t FilmsTable) Columns() []string {
	return []string{t.ID, t.MpaID, t.Name, t.Description, t.ReleaseDate, t.Duration}
}
