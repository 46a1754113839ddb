package editors

// Mode selects how key presses are interpreted.
type Mode int

const (
	// ModeNormal is the navigation/command mode the editor starts in.
	ModeNormal Mode = iota
	// ModeInsert enters literal characters at the cursor.
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}
