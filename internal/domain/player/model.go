package player

import (
	"fmt"
	"strings"
)

// MaxNameLength bounds editable player names.
const MaxNameLength = 255

// Player is a baseball player identified by a unique name.
type Player struct {
	ID          int64
	Name        string
	Description *string
}

func (p Player) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("player name is required")
	}
	if len([]rune(name)) > MaxNameLength {
		return fmt.Errorf("player name must be at most %d characters", MaxNameLength)
	}

	return nil
}
