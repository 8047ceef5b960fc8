package domain

import "strings"

// Fixed board dimensions. They are not exposed to configuration.
const (
	DefaultRows  = 8
	DefaultCols  = 8
	DefaultMines = 10
)

// Status is the lifecycle state of a game session.
type Status int

const (
	Playing Status = iota
	Lost
	Won
)

// Terminal reports whether no further mutation is accepted.
func (s Status) Terminal() bool { return s == Lost || s == Won }

func (s Status) String() string {
	switch s {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "playing"
	}
}

// ParseStatus is the inverse of String. Unknown values map to Playing.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lost":
		return Lost
	case "won":
		return Won
	default:
		return Playing
	}
}

// InputMode decides what a primary action does.
type InputMode int

const (
	ModeReveal InputMode = iota // primary action reveals
	ModeFlag                    // primary action flips the flag
)

func (m InputMode) String() string {
	if m == ModeFlag {
		return "flag"
	}
	return "reveal"
}

// ParseInputMode accepts "reveal" or "flag"; anything else is reveal.
func ParseInputMode(s string) InputMode {
	if strings.EqualFold(strings.TrimSpace(s), "flag") {
		return ModeFlag
	}
	return ModeReveal
}

// ActionKind distinguishes the two pointer actions a cell receives.
type ActionKind int

const (
	Primary   ActionKind = iota // left click / enter
	Secondary                   // right click / f
)

func (k ActionKind) String() string {
	if k == Secondary {
		return "secondary"
	}
	return "primary"
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(b []byte) error {
	*s = ParseStatus(string(b))
	return nil
}
