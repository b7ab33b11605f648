package dashboard

import "github.com/MUA122/IOT-Project/internal/models"

// Breakpoint names a viewport width class
type Breakpoint string

const (
	BreakpointXS Breakpoint = "xs"
	BreakpointSM Breakpoint = "sm"
	BreakpointMD Breakpoint = "md"
)

// rosterSpans is the number of 12-column grid units each card spans
var rosterSpans = map[Breakpoint]int{
	BreakpointXS: 12,
	BreakpointSM: 6,
	BreakpointMD: 3,
}

// MemberCard is the view model of one roster entry
type MemberCard struct {
	Key      int
	Name     string
	Role     string
	Image    string
	Initials string
	Fallback bool
}

// RosterGrid is the view model of the team section
type RosterGrid struct {
	Title string
	Cards []MemberCard
}

// NewRosterGrid builds one card per member, preserving input order
func NewRosterGrid(members []models.TeamMember) RosterGrid {
	cards := make([]MemberCard, 0, len(members))
	for _, m := range members {
		card := MemberCard{
			Key:      m.ID,
			Name:     m.Name,
			Role:     m.Role,
			Initials: m.Initials(),
			Fallback: !m.HasImage(),
		}
		if !card.Fallback {
			card.Image = m.Image
		}
		cards = append(cards, card)
	}
	return RosterGrid{Title: "Team Members", Cards: cards}
}

// Columns returns how many cards share a row at the given breakpoint.
// Unknown breakpoints get a single column.
func (RosterGrid) Columns(bp Breakpoint) int {
	span, ok := rosterSpans[bp]
	if !ok {
		return 1
	}
	return 12 / span
}
