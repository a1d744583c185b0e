package problem

import (
	"strings"
	"time"
)

// DateLayout formats the solved date everywhere it is written.
const DateLayout = "2006-01-02"

// Entry is a solved problem as given on the command line, stamped with the
// date it was recorded.
type Entry struct {
	Name       string
	URL        string
	Difficulty Difficulty
	Solved     time.Time
}

// NewEntry builds an Entry stamped with the calendar date of now.
func NewEntry(d Difficulty, name, url string, now time.Time) Entry {
	return Entry{
		Name:       name,
		URL:        url,
		Difficulty: d,
		Solved:     now,
	}
}

// Date returns the solved date as YYYY-MM-DD.
func (e Entry) Date() string { return e.Solved.Format(DateLayout) }

// Slug returns the file-system name of the solution, without extension.
func (e Entry) Slug() string { return Slug(e.Name) }

// ClassName returns the identifier used for the generated class.
func (e Entry) ClassName() string { return ClassName(e.Name) }

// Slug lower-cases name and replaces every space with an underscore.
// Nothing else is rewritten.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// ClassName drops every space from name and keeps the rest as typed.
func ClassName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}
