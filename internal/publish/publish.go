package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"text/template"

	"go.uber.org/zap"
)

// DefaultCommitMessage is the commit message template used when none is
// configured. It receives a value with a Name field.
const DefaultCommitMessage = "Added solution: {{.Name}}"

// Publisher makes local changes available upstream.
type Publisher interface {
	Stage(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// Step is the outcome of one publishing step.
type Step struct {
	Name string
	Err  error
}

// Report collects the outcome of every step PushChanges ran.
type Report struct {
	Steps []Step
}

// Failed returns the steps that returned an error.
func (r *Report) Failed() []Step {
	var failed []Step
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Err joins every step failure, or returns nil if all steps succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, s := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", s.Name, s.Err))
	}
	return errors.Join(errs...)
}

// CommitMessage renders tmpl for the problem name. An empty tmpl falls back
// to DefaultCommitMessage.
func CommitMessage(tmpl, name string) (string, error) {
	if tmpl == "" {
		tmpl = DefaultCommitMessage
	}
	t, err := template.New("commit").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parsing commit message template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, struct{ Name string }{name}); err != nil {
		return "", fmt.Errorf("executing commit message template: %w", err)
	}
	return buf.String(), nil
}

// PushChanges stages, commits and pushes through p. A failing step does not
// stop the next one; failures are logged as warnings and returned in the
// Report. The confirmation line is written to out regardless of outcome.
func PushChanges(ctx context.Context, p Publisher, message string, out io.Writer, logger *zap.Logger) *Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"stage", p.Stage},
		{"commit", func(ctx context.Context) error { return p.Commit(ctx, message) }},
		{"push", p.Push},
	}

	report := &Report{}
	for _, s := range steps {
		err := s.fn(ctx)
		if err != nil {
			logger.Warn("publish step failed", zap.String("step", s.name), zap.Error(err))
		} else {
			logger.Debug("publish step done", zap.String("step", s.name))
		}
		report.Steps = append(report.Steps, Step{Name: s.name, Err: err})
	}

	fmt.Fprintln(out, "Changes pushed to GitHub!")
	return report
}
