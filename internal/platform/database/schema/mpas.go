package schema

// MpasTable represents the 'mpas' reference table
type MpasTable struct {
	Table string
	ID    string
	Name  string
}

// Mpas is the schema definition for mpas
var Mpas = MpasTable{
	Table: "mpas",
	ID:    "id",
	Name:  "name",
}

func (t MpasTable) Columns() []string {
	return []string{t.ID, t.Name}
}
