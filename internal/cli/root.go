package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agentx-labs/leetadd/internal/branding"
	"github.com/agentx-labs/leetadd/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose    bool
	configFile string
	rootDir    string
	logger     = zap.NewNop()
)

// errUsage marks a wrong positional argument count on the root command.
var errUsage = errors.New("wrong number of arguments")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <difficulty> <problem_name> <leetcode_url>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` writes a solution template for a solved LeetCode problem into
<difficulty>/<problem_name>.<ext>, records it in <difficulty>/README.md and
commits and pushes the change with git.

Example:
  ` + branding.CLIName() + ` easy "Two Sum" https://leetcode.com/problems/two-sum`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errUsage
		}
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		if err := config.Load(configFile); err != nil {
			return err
		}
		if f := cmd.Flags().Lookup("root"); f != nil {
			if err := viper.BindPFlag(config.KeyRoot, f); err != nil {
				return fmt.Errorf("binding --root: %w", err)
			}
		}
		return nil
	},
	RunE: runAdd,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/"+branding.HomeDir()+"/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Repository root holding the difficulty directories (default: config 'root' or .)")
}

// newLogger builds the diagnostics logger. Warnings and errors go to stderr;
// --verbose adds debug output.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func usageLine() string {
	return fmt.Sprintf("Usage: %s <difficulty> <problem_name> <leetcode_url>", branding.CLIName())
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx)
}

// run executes the command tree and reports failures on the command's error
// writer. The logger is flushed on every path, including failed ones.
func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Sync()

	stderr := rootCmd.ErrOrStderr()
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, usageLine())
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}
