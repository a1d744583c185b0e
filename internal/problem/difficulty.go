package problem

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidDifficulty is returned by ParseDifficulty for anything outside
// easy, medium and hard.
var ErrInvalidDifficulty = errors.New("invalid difficulty level, choose 'easy', 'medium', or 'hard'")

// Difficulty is a LeetCode difficulty tier. Its string value doubles as the
// directory name holding solutions of that tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every tier in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty matches s case-insensitively against the known tiers.
// Surrounding whitespace is not trimmed.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(s))
	if !d.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidDifficulty)
	}
	return d, nil
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// Dir returns the directory name, relative to the repository root, that holds
// both the solution files and the index of this tier.
func (d Difficulty) Dir() string { return string(d) }

// Label returns the capitalized tier name used in headings ("Easy").
// A Caser keeps state, so one is built per call.
func (d Difficulty) Label() string {
	return cases.Title(language.English).String(string(d))
}

func (d Difficulty) String() string { return string(d) }
