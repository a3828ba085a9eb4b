package model

// Library holds the user's fixture templates, both the built-in defaults
// and any custom entries added from the CLI or an import file.
type Library struct {
	Fixtures []Fixture `json:"fixtures"`
}

// DefaultLibrary returns a library populated with common fixtures.
// Dimensions are typical retail/office sizes in millimeters.
func DefaultLibrary() Library {
	desk := NewFixture("Desk 1400x700", 1400, 700)
	desk.Group = "Workspace"
	desk.Color = "#2196f3"

	table := NewFixture("Table 1200x800", 1200, 800)
	table.Group = "Workspace"
	table.Color = "#4caf50"

	chair := NewFixture("Chair 500x500", 500, 500)
	chair.Group = "Seating"
	chair.Color = "#ff9800"

	sofa := NewFixture("Sofa 2000x900", 2000, 900)
	sofa.Group = "Seating"
	sofa.Color = "#9c27b0"

	shelf := NewFixture("Shelf 900x400", 900, 400)
	shelf.Group = "Storage"
	shelf.Color = "#795548"

	cabinet := NewFixture("Cabinet 800x600", 800, 600)
	cabinet.Group = "Storage"
	cabinet.Color = "#00bcd4"

	bed := NewFixture("Bed 2000x1500", 2000, 1500)
	bed.Group = "Bedroom"
	bed.Color = "#f44336"

	return Library{
		Fixtures: []Fixture{desk, table, chair, sofa, shelf, cabinet, bed},
	}
}

// FindByName returns the first fixture whose name matches, or false when no
// such fixture exists.
func (lib Library) FindByName(name string) (Fixture, bool) {
	for _, f := range lib.Fixtures {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}

// Groups returns the distinct group names in library order, with ungrouped
// fixtures contributing an empty string entry at most once.
func (lib Library) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, f := range lib.Fixtures {
		if !seen[f.Group] {
			seen[f.Group] = true
			groups = append(groups, f.Group)
		}
	}
	return groups
}

// ByGroup returns all fixtures belonging to the named group.
func (lib Library) ByGroup(group string) []Fixture {
	var out []Fixture
	for _, f := range lib.Fixtures {
		if f.Group == group {
			out = append(out, f)
		}
	}
	return out
}
