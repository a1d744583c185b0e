package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agentx-labs/leetadd/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRoot             = "root"
	KeyLanguage         = "language"
	KeyRemote           = "remote"
	KeyBranch           = "branch"
	KeyCommitMessage    = "commit_message"
	KeyPublishEnabled   = "publish.enabled"
	KeyPublishStrict    = "publish.strict"
	KeyLeetCodeEndpoint = "leetcode.endpoint"
	KeyLeetCodeTimeout  = "leetcode.timeout"
)

var boolKeys = map[string]bool{
	KeyPublishEnabled: true,
	KeyPublishStrict:  true,
}

// Settings is the typed view of the merged configuration.
type Settings struct {
	Root          string
	Language      string
	Remote        string
	Branch        string
	CommitMessage string
	Publish       PublishSettings
	LeetCode      LeetCodeSettings
}

// PublishSettings controls the git step after scaffolding.
type PublishSettings struct {
	Enabled bool
	// Strict turns publish failures into a non-zero exit.
	Strict bool
}

// LeetCodeSettings configures the metadata lookup client.
type LeetCodeSettings struct {
	Endpoint string
	Timeout  time.Duration
}

// Dir returns the config directory. LEETADD_HOME overrides ~/.leetadd/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.leetadd/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyLanguage, "java")
	v.SetDefault(KeyRemote, "")
	v.SetDefault(KeyBranch, "")
	v.SetDefault(KeyCommitMessage, "Added solution: {{.Name}}")
	v.SetDefault(KeyPublishEnabled, true)
	v.SetDefault(KeyPublishStrict, false)
	v.SetDefault(KeyLeetCodeEndpoint, "https://leetcode.com/graphql")
	v.SetDefault(KeyLeetCodeTimeout, "10s")
}

// Load initializes Viper to read from the config file and environment. An
// empty configFile selects FilePath(). A missing file is not an error.
func Load(configFile string) error {
	if configFile == "" {
		configFile = FilePath()
	}

	setDefaults(viper.GetViper())
	viper.SetConfigFile(configFile)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current materializes the merged settings (defaults, file, environment and
// bound flags).
func Current() Settings {
	return Settings{
		Root:          viper.GetString(KeyRoot),
		Language:      viper.GetString(KeyLanguage),
		Remote:        viper.GetString(KeyRemote),
		Branch:        viper.GetString(KeyBranch),
		CommitMessage: viper.GetString(KeyCommitMessage),
		Publish: PublishSettings{
			Enabled: viper.GetBool(KeyPublishEnabled),
			Strict:  viper.GetBool(KeyPublishStrict),
		},
		LeetCode: LeetCodeSettings{
			Endpoint: viper.GetString(KeyLeetCodeEndpoint),
			Timeout:  viper.GetDuration(KeyLeetCodeTimeout),
		},
	}
}

// Set writes a config key-value pair to configFile (FilePath() if empty).
// Only the file's own contents plus the new value are written; defaults and
// environment overrides are not persisted. The result must pass schema
// validation or nothing is written.
func Set(configFile, key, value string) error {
	if configFile == "" {
		if err := EnsureDir(); err != nil {
			return err
		}
		configFile = FilePath()
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	typed, err := coerce(key, value)
	if err != nil {
		return err
	}
	v.Set(key, typed)

	result, err := Validate(v.AllSettings())
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid value for %q: %s", key, result)
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	// Keep the process-wide view in sync with what was written.
	viper.Set(key, typed)
	return nil
}

func coerce(key, value string) (any, error) {
	if boolKeys[key] {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		return b, nil
	}
	return value, nil
}
