/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mode.go
Description: Generation modes for the seed generator. Normal mode emits minimal
well-formed instances of each format, Simple mode emits truncated or header-only
instances that exercise parser error paths.
*/

package formats

import (
	"fmt"
	"strings"
)

// Mode selects which registry a generation run resolves identifiers against.
// A single mode applies to an entire run.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSimple
)

// ParseMode converts a mode name into a Mode. The empty string means normal.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return ModeNormal, nil
	case "simple":
		return ModeSimple, nil
	default:
		return ModeNormal, fmt.Errorf("unsupported generation mode: %q", s)
	}
}

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSimple:
		return "simple"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name so reports stay readable.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeNormal, ModeSimple:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("unsupported generation mode: %d", int(m))
	}
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
