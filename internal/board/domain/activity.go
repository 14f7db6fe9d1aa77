package domain

import (
	"sort"
	"strings"
)

// Activity describes a single sign-up activity as reported by the backend.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityCatalog maps activity names to their details. It is rebuilt whole on
// every fetch and has no identity across polls.
type ActivityCatalog map[string]Activity

// SpotsLeft computes the remaining capacity. It is derived on every render,
// never stored.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// RosterEntry is one rendered line of an activity's participant list.
type RosterEntry struct {
	Email       string `json:"email"`
	Initials    string `json:"initials"`
	Placeholder bool   `json:"placeholder"`
}

// PlaceholderText is rendered instead of an empty participant list.
const PlaceholderText = "No participants yet"

// Roster returns the render entries for the participant list, in server order.
// An activity without participants yields exactly one placeholder entry with
// no removal control.
func (a Activity) Roster() []RosterEntry {
	if len(a.Participants) == 0 {
		return []RosterEntry{{Email: PlaceholderText, Placeholder: true}}
	}
	entries := make([]RosterEntry, 0, len(a.Participants))
	for _, email := range a.Participants {
		entries = append(entries, RosterEntry{Email: email, Initials: Initials(email)})
	}
	return entries
}

// Initials derives the two-character badge for a participant email: the first
// two characters, upper-cased regardless of input case.
func Initials(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ""
	}
	runes := []rune(trimmed)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// Names returns the activity names in a stable sorted order for the selector.
func (c ActivityCatalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
