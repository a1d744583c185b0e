package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/agentx-labs/leetadd/internal/config"
	"github.com/agentx-labs/leetadd/internal/publish"
)

// MinGitVersion is the oldest git release known to work.
const MinGitVersion = "2.0.0"

var gitVersionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Status classifies a check outcome.
type Status int

const (
	StatusOK Status = iota
	StatusInfo
	StatusWarn
	StatusFail
)

// String returns the fixed-width tag printed before each check.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusInfo:
		return "[INFO]"
	case StatusWarn:
		return "[WARN]"
	default:
		return "[FAIL]"
	}
}

// Check is the outcome of one diagnostic.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Options selects what Run inspects.
type Options struct {
	Root       string
	Remote     string
	ConfigFile string
	Runner     publish.Runner
}

// Run executes every check, prints one line per check to w and returns the
// checks in order.
func Run(ctx context.Context, w io.Writer, opts Options) []Check {
	if opts.Runner == nil {
		opts.Runner = publish.ExecRunner{}
	}

	checks := []Check{CheckGit(ctx, opts.Runner)}
	if checks[0].Status != StatusFail {
		checks = append(checks,
			CheckRepo(ctx, opts.Runner, opts.Root),
			CheckRemote(ctx, opts.Runner, opts.Root, opts.Remote),
		)
	}
	checks = append(checks, CheckConfig(opts.ConfigFile))

	for _, c := range checks {
		fmt.Fprintf(w, "  %s %s: %s\n", c.Status, c.Name, c.Detail)
	}
	return checks
}

// Failed counts checks with StatusFail.
func Failed(checks []Check) int {
	n := 0
	for _, c := range checks {
		if c.Status == StatusFail {
			n++
		}
	}
	return n
}

// ParseGitVersion extracts the release number from `git version` output,
// tolerating vendor suffixes such as "2.39.3 (Apple Git-145)" or
// "2.45.1.windows.1".
func ParseGitVersion(output string) (*semver.Version, error) {
	m := gitVersionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("no version in %q", strings.TrimSpace(output))
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	return semver.NewVersion(fmt.Sprintf("%s.%s.%s", m[1], m[2], patch))
}

// CheckGit verifies git runs and meets MinGitVersion.
func CheckGit(ctx context.Context, r publish.Runner) Check {
	c := Check{Name: "git"}
	out, err := r.Run(ctx, "", "version")
	if err != nil {
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("git not runnable: %v", err)
		return c
	}

	v, err := ParseGitVersion(string(out))
	if err != nil {
		c.Status = StatusWarn
		c.Detail = err.Error()
		return c
	}

	constraint, err := semver.NewConstraint(">= " + MinGitVersion)
	if err != nil {
		c.Status = StatusFail
		c.Detail = err.Error()
		return c
	}
	if !constraint.Check(v) {
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("version %s is older than %s", v, MinGitVersion)
		return c
	}

	c.Status = StatusOK
	c.Detail = "version " + v.String()
	return c
}

// CheckRepo verifies root is inside a git work tree.
func CheckRepo(ctx context.Context, r publish.Runner, root string) Check {
	c := Check{Name: "repository"}
	out, err := r.Run(ctx, root, "rev-parse", "--is-inside-work-tree")
	if err != nil || strings.TrimSpace(string(out)) != "true" {
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("%s is not a git work tree", root)
		return c
	}
	c.Status = StatusOK
	c.Detail = root + " is a git work tree"
	return c
}

// CheckRemote verifies the configured remote exists. An empty remote only
// requires that some remote is configured.
func CheckRemote(ctx context.Context, r publish.Runner, root, remote string) Check {
	c := Check{Name: "remote"}
	out, err := r.Run(ctx, root, "remote")
	if err != nil {
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("cannot list remotes: %v", err)
		return c
	}

	remotes := strings.Fields(string(out))
	switch {
	case len(remotes) == 0:
		c.Status = StatusWarn
		c.Detail = "no remote configured; pushes will fail"
	case remote == "":
		c.Status = StatusOK
		c.Detail = "pushing to the branch upstream (" + strings.Join(remotes, ", ") + ")"
	case contains(remotes, remote):
		c.Status = StatusOK
		c.Detail = remote + " configured"
	default:
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("remote %q not found (have: %s)", remote, strings.Join(remotes, ", "))
	}
	return c
}

// CheckConfig validates the config file at path against the schema. A
// missing file is reported as informational.
func CheckConfig(path string) Check {
	c := Check{Name: "config"}
	if path == "" {
		path = config.FilePath()
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		c.Status = StatusInfo
		c.Detail = path + " not present, using defaults"
		return c
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		c.Status = StatusFail
		c.Detail = err.Error()
		return c
	}
	if !result.Valid {
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("%s: %s", path, result)
		return c
	}
	c.Status = StatusOK
	c.Detail = path + " is valid"
	return c
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
