package index

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/agentx-labs/leetadd/internal/problem"
)

// FileName is the index file kept in every difficulty directory.
const FileName = "README.md"

const filePerm os.FileMode = 0644

// The URL is free text, so the match anchors on the fixed suffix.
var linePattern = regexp.MustCompile(`^- \[(.+)\]\((.*)\) - Solved on (\S+)$`)

// Record is one parsed index line.
type Record struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Solved string `json:"solved"`
}

// Path returns the index file location for a tier under root.
func Path(root string, d problem.Difficulty) string {
	return filepath.Join(root, d.Dir(), FileName)
}

// Header returns the heading written when an index file is first created.
func Header(d problem.Difficulty) string {
	return fmt.Sprintf("# %s LeetCode Problems", d.Label())
}

// Line formats the list item recorded for e.
func Line(e problem.Entry) string {
	return fmt.Sprintf("- [%s](%s) - Solved on %s", e.Name, e.URL, e.Date())
}

// Append adds e to the index at path, writing the tier header first when the
// file does not exist yet. It reports whether the file was created.
func Append(path string, e problem.Entry) (bool, error) {
	created := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(Header(e.Difficulty)+"\n\n"), filePerm); err != nil {
			return false, fmt.Errorf("creating index %s: %w", path, err)
		}
		created = true
	} else if err != nil {
		return false, fmt.Errorf("checking index %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		return created, fmt.Errorf("opening index %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, Line(e)); err != nil {
		return created, fmt.Errorf("appending to index %s: %w", path, err)
	}
	return created, f.Close()
}

// Parse reads index lines from r in order. Lines that are not entries, such
// as the header, are skipped.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := linePattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		records = append(records, Record{Name: m[1], URL: m[2], Solved: m[3]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	return records, nil
}

// ReadFile parses the index at path. A missing file yields no records.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening index %s: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
