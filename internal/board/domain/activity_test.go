package domain

import "testing"

func TestSpotsLeft(t *testing.T) {
	activity := Activity{
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}
	if got := activity.SpotsLeft(); got != 10 {
		t.Fatalf("expected 10 spots left, got %d", got)
	}

	empty := Activity{MaxParticipants: 5}
	if got := empty.SpotsLeft(); got != 5 {
		t.Fatalf("expected full capacity for empty roster, got %d", got)
	}
}

func TestInitials(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"ab@x.com", "AB"},
		{"AB@x.com", "AB"},
		{"michael@mergington.edu", "MI"},
		{"  emma@mergington.edu  ", "EM"},
		{"a", "A"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Initials(tc.email); got != tc.want {
			t.Fatalf("Initials(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}

func TestRosterWithParticipants(t *testing.T) {
	activity := Activity{
		MaxParticipants: 10,
		Participants:    []string{"james@mergington.edu", "ava@mergington.edu"},
	}

	roster := activity.Roster()
	if len(roster) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(roster))
	}
	if roster[0].Email != "james@mergington.edu" || roster[0].Initials != "JA" {
		t.Fatalf("unexpected first entry: %+v", roster[0])
	}
	if roster[1].Initials != "AV" {
		t.Fatalf("unexpected second entry initials: %q", roster[1].Initials)
	}
	for _, entry := range roster {
		if entry.Placeholder {
			t.Fatalf("non-empty roster must not contain placeholder entries")
		}
	}
}

func TestRosterEmptyRendersSinglePlaceholder(t *testing.T) {
	roster := Activity{MaxParticipants: 10}.Roster()
	if len(roster) != 1 {
		t.Fatalf("expected exactly one placeholder entry, got %d", len(roster))
	}
	if !roster[0].Placeholder {
		t.Fatalf("expected placeholder entry, got %+v", roster[0])
	}
	if roster[0].Email != PlaceholderText {
		t.Fatalf("unexpected placeholder text: %q", roster[0].Email)
	}
}

func TestCatalogNamesSorted(t *testing.T) {
	catalog := ActivityCatalog{
		"Tennis Club": {},
		"Art Studio":  {},
		"Chess Club":  {},
	}
	names := catalog.Names()
	want := []string{"Art Studio", "Chess Club", "Tennis Club"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected names[%d]=%q, got %q", i, name, names[i])
		}
	}
}
