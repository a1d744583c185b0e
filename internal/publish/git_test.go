package publish

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recordingRunner captures every git invocation and fails the ones listed in
// fail, keyed by subcommand.
type recordingRunner struct {
	calls [][]string
	dirs  []string
	fail  map[string]string
}

func (r *recordingRunner) Run(_ context.Context, dir string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, args)
	r.dirs = append(r.dirs, dir)
	if out, ok := r.fail[args[0]]; ok {
		return []byte(out), errors.New("exit status 1")
	}
	return nil, nil
}

func TestGitCommands(t *testing.T) {
	runner := &recordingRunner{}
	g := &Git{Dir: "/repo", Runner: runner}
	ctx := context.Background()

	if err := g.Stage(ctx); err != nil {
		t.Fatalf("Stage() error: %v", err)
	}
	if err := g.Commit(ctx, "Added solution: Two Sum"); err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
	if err := g.Push(ctx); err != nil {
		t.Fatalf("Push() error: %v", err)
	}

	want := [][]string{
		{"add", "."},
		{"commit", "-m", "Added solution: Two Sum"},
		{"push"},
	}
	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Errorf("git calls mismatch (-want +got):\n%s", diff)
	}
	for i, dir := range runner.dirs {
		if dir != "/repo" {
			t.Errorf("call %d ran in %q, want /repo", i, dir)
		}
	}
}

func TestGitPushArgs(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		branch string
		want   []string
	}{
		{"upstream", "", "", []string{"push"}},
		{"remote only", "upstream", "", []string{"push", "upstream"}},
		{"remote and branch", "origin", "main", []string{"push", "origin", "main"}},
		{"branch defaults remote", "", "main", []string{"push", "origin", "main"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Git{Remote: tt.remote, Branch: tt.branch}
			if diff := cmp.Diff(tt.want, g.pushArgs()); diff != "" {
				t.Errorf("pushArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGitErrorIncludesOutput(t *testing.T) {
	runner := &recordingRunner{fail: map[string]string{"commit": "nothing to commit, working tree clean\n"}}
	g := &Git{Dir: ".", Runner: runner}

	err := g.Commit(context.Background(), "msg")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "git commit") {
		t.Errorf("error should name the subcommand, got: %v", err)
	}
	if !strings.Contains(err.Error(), "nothing to commit") {
		t.Errorf("error should carry git output, got: %v", err)
	}
}
