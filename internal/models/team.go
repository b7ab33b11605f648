package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TeamMember is one entry of the project roster
type TeamMember struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Image string `json:"image,omitempty"`
}

// HasImage reports whether the member has an avatar reference
func (m *TeamMember) HasImage() bool {
	return strings.TrimSpace(m.Image) != ""
}

// Initials returns up to two uppercase initials taken from the first and
// last word of the name, or "?" when the name is blank.
func (m *TeamMember) Initials() string {
	words := strings.Fields(m.Name)
	if len(words) == 0 {
		return "?"
	}

	first := firstRune(words[0])
	if len(words) == 1 {
		return string(unicode.ToUpper(first))
	}
	last := firstRune(words[len(words)-1])
	return string([]rune{unicode.ToUpper(first), unicode.ToUpper(last)})
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
