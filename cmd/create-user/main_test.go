package main

import (
	"io"
	"strings"
	"testing"
	"time"

	"lg/nutrition-api/goals"
)

var now = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func answers(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestReadProfile_Valid(t *testing.T) {
	in := answers("Ana", "Ana@Example.com", "s3cretpass", "maintain", "female", "1996-06-15", "165.5", "60", "2")
	p, err := readProfile(in, io.Discard, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != "ana@example.com" {
		t.Errorf("email = %q, want lowercased", p.Email)
	}
	want := goals.Input{
		Goal:          goals.Maintain,
		Gender:        goals.Female,
		BirthDate:     time.Date(1996, 6, 15, 0, 0, 0, 0, time.UTC),
		HeightCM:      165.5,
		WeightKG:      60,
		ActivityLevel: 2,
	}
	if !p.Input.BirthDate.Equal(want.BirthDate) {
		t.Errorf("birth date = %v, want %v", p.Input.BirthDate, want.BirthDate)
	}
	want.BirthDate = p.Input.BirthDate
	if p.Input != want {
		t.Errorf("input = %+v, want %+v", p.Input, want)
	}
}

func TestReadProfile_Rejects(t *testing.T) {
	base := []string{"Ana", "ana@example.com", "s3cretpass", "maintain", "female", "1996-06-15", "165", "60", "2"}
	cases := []struct {
		name  string
		index int
		value string
	}{
		{"empty name", 0, ""},
		{"bad email", 1, "ana"},
		{"short password", 2, "short"},
		{"unknown goal", 3, "bulk"},
		{"unknown gender", 4, "other"},
		{"bad date", 5, "15/06/1996"},
		{"future birth date", 5, "2027-01-01"},
		{"zero height", 6, "0"},
		{"non-numeric weight", 7, "heavy"},
		{"activity out of range", 8, "6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := append([]string(nil), base...)
			lines[tc.index] = tc.value
			if _, err := readProfile(answers(lines...), io.Discard, now); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}
