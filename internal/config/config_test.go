package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

// isolate points the config directory at a temp dir and clears global Viper
// state so tests do not leak settings into each other.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LEETADD_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDirOverride(t *testing.T) {
	dir := isolate(t)
	if Dir() != dir {
		t.Errorf("Dir() = %q, want %q", Dir(), dir)
	}
	if FilePath() != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", FilePath())
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	if err := Load(""); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Settings{
		Root:          ".",
		Language:      "java",
		CommitMessage: "Added solution: {{.Name}}",
		Publish:       PublishSettings{Enabled: true},
		LeetCode: LeetCodeSettings{
			Endpoint: "https://leetcode.com/graphql",
			Timeout:  10 * time.Second,
		},
	}
	if diff := cmp.Diff(want, Current()); diff != "" {
		t.Errorf("Current() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	content := `language: python
remote: upstream
branch: trunk
publish:
  strict: true
leetcode:
  timeout: 3s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEETADD_PUBLISH_ENABLED", "false")
	t.Setenv("LEETADD_ROOT", "/solutions")

	if err := Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	s := Current()
	if s.Language != "python" || s.Remote != "upstream" || s.Branch != "trunk" {
		t.Errorf("file values not applied: %+v", s)
	}
	if !s.Publish.Strict {
		t.Error("publish.strict should come from the file")
	}
	if s.Publish.Enabled {
		t.Error("LEETADD_PUBLISH_ENABLED=false should disable publishing")
	}
	if s.Root != "/solutions" {
		t.Errorf("Root = %q, want env override", s.Root)
	}
	if s.LeetCode.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", s.LeetCode.Timeout)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("language: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Load(""); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSetAndGet(t *testing.T) {
	dir := isolate(t)
	if err := Load(""); err != nil {
		t.Fatal(err)
	}

	if err := Set("", "language", "go"); err != nil {
		t.Fatalf("Set(language) error: %v", err)
	}
	if err := Set("", "publish.enabled", "false"); err != nil {
		t.Fatalf("Set(publish.enabled) error: %v", err)
	}

	if Get("language") != "go" {
		t.Errorf("Get(language) = %q, want go", Get("language"))
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "language: go") {
		t.Errorf("config file missing language:\n%s", content)
	}
	if !strings.Contains(content, "enabled: false") {
		t.Errorf("config file missing publish.enabled:\n%s", content)
	}
	if strings.Contains(content, "leetcode") {
		t.Errorf("defaults must not be persisted:\n%s", content)
	}

	result, err := ValidateFile(filepath.Join(dir, "config.yaml"))
	if err != nil || !result.Valid {
		t.Errorf("written file should validate: %v %+v", err, result)
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"language", "cobol"},
		{"publish.strict", "sometimes"},
		{"leetcode.endpoint", "ftp://example.com"},
		{"leetcode.timeout", "soon"},
		{"branch", "two words"},
		{"no_such_key", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			dir := isolate(t)
			if err := Set("", tt.key, tt.value); err == nil {
				t.Fatalf("Set(%q, %q) should fail", tt.key, tt.value)
			}
			if _, err := os.Stat(filepath.Join(dir, "config.yaml")); !os.IsNotExist(err) {
				t.Error("nothing should be written for an invalid value")
			}
		})
	}
}
