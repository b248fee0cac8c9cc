package position

import "strings"

// DefaultAbbreviation is used when a source record carries no position.
const DefaultAbbreviation = "DH"

// Position is a fielding position keyed by its abbreviation.
type Position struct {
	ID           int64
	Abbreviation string
	Name         string
}

var displayNames = map[string]string{
	"LF": "Left Field",
	"RF": "Right Field",
	"CF": "Center Field",
	"1B": "First Base",
	"2B": "Second Base",
	"3B": "Third Base",
	"SS": "Shortstop",
	"C":  "Catcher",
	"P":  "Pitcher",
	"DH": "Designated Hitter",
}

// DisplayName returns the full position name for an abbreviation, or the
// abbreviation itself when it is not a known position.
func DisplayName(abbreviation string) string {
	if name, ok := displayNames[abbreviation]; ok {
		return name
	}
	return abbreviation
}

// New builds an unsaved position for the abbreviation.
func New(abbreviation string) Position {
	if strings.TrimSpace(abbreviation) == "" {
		abbreviation = DefaultAbbreviation
	}
	return Position{
		Abbreviation: abbreviation,
		Name:         DisplayName(abbreviation),
	}
}
