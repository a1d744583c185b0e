package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/agentx-labs/leetadd/internal/index"
	"github.com/agentx-labs/leetadd/internal/problem"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Scaffolder writes solution files and index entries under Root.
type Scaffolder struct {
	Root     string
	Language Language
	Now      func() time.Time
	Out      io.Writer
	Logger   *zap.Logger
}

// Result holds the outcome of scaffolding one problem.
type Result struct {
	Entry        problem.Entry
	SolutionPath string
	IndexPath    string
	IndexCreated bool
}

// New creates a Scaffolder for the named language. Unknown languages are
// rejected here, before any file is touched.
func New(root, language string, out io.Writer, logger *zap.Logger) (*Scaffolder, error) {
	lang, err := LookupLanguage(language)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scaffolder{
		Root:     root,
		Language: lang,
		Now:      time.Now,
		Out:      out,
		Logger:   logger,
	}, nil
}

// CreateProblemFile validates the difficulty, writes the rendered solution to
// <root>/<difficulty>/<slug>.<ext> (replacing any previous file) and then
// records the problem in the tier's index. An invalid difficulty returns an
// error wrapping problem.ErrInvalidDifficulty and leaves the tree untouched.
func (s *Scaffolder) CreateProblemFile(difficulty, name, url string) (*Result, error) {
	d, err := problem.ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	entry := problem.NewEntry(d, name, url, s.Now())
	content, err := Render(s.Language, entry)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.Root, d.Dir())
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, s.Language.FileName(entry))
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	s.Logger.Debug("wrote solution file",
		zap.String("path", path),
		zap.String("language", s.Language.Name))
	fmt.Fprintf(s.Out, "Created new problem file: %s\n", path)

	indexPath, created, err := s.UpdateReadme(entry)
	if err != nil {
		return nil, err
	}

	return &Result{
		Entry:        entry,
		SolutionPath: path,
		IndexPath:    indexPath,
		IndexCreated: created,
	}, nil
}

// UpdateReadme appends entry to <root>/<difficulty>/README.md, creating the
// file with its header first if needed. Prior entries are never rewritten.
func (s *Scaffolder) UpdateReadme(entry problem.Entry) (string, bool, error) {
	path := index.Path(s.Root, entry.Difficulty)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return path, false, fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	created, err := index.Append(path, entry)
	if err != nil {
		return path, created, err
	}
	s.Logger.Debug("appended index entry",
		zap.String("path", path),
		zap.Bool("created", created))
	fmt.Fprintf(s.Out, "Updated README in %s/\n", entry.Difficulty.Dir())
	return path, created, nil
}
