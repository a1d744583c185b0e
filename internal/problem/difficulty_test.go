package problem

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"EASY", Easy, false},
		{"Medium", Medium, false},
		{"hArD", Hard, false},
		{" hard ", "", true},
		{"", "", true},
		{"expert", "", true},
		{"easy-ish", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDifficulty) {
					t.Fatalf("ParseDifficulty(%q) error = %v, want ErrInvalidDifficulty", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDifficultyLabelAndDir(t *testing.T) {
	tests := []struct {
		d     Difficulty
		label string
		dir   string
	}{
		{Easy, "Easy", "easy"},
		{Medium, "Medium", "medium"},
		{Hard, "Hard", "hard"},
	}

	for _, tt := range tests {
		if got := tt.d.Label(); got != tt.label {
			t.Errorf("%s.Label() = %q, want %q", tt.d, got, tt.label)
		}
		if got := tt.d.Dir(); got != tt.dir {
			t.Errorf("%s.Dir() = %q, want %q", tt.d, got, tt.dir)
		}
	}
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range Difficulties {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Difficulty("Easy").Valid() {
		t.Error("Valid() must not fold case; ParseDifficulty does that")
	}
}
