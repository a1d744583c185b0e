package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/agentx-labs/leetadd/internal/config"
	"github.com/agentx-labs/leetadd/internal/problem"
	"github.com/agentx-labs/leetadd/internal/publish"
	"github.com/agentx-labs/leetadd/internal/scaffold"
)

const invalidDifficultyMessage = "Error: Invalid difficulty level. Choose 'easy', 'medium', or 'hard'."

var (
	addLanguage string
	addNoPush   bool
)

// Seams for tests.
var (
	now          = time.Now
	newPublisher = func(s config.Settings) publish.Publisher {
		return publish.NewGit(s.Root, s.Remote, s.Branch)
	}
)

func init() {
	rootCmd.Flags().StringVar(&addLanguage, "lang", "", "Solution language: cpp, go, java or python (default: config 'language' or java)")
	rootCmd.Flags().BoolVar(&addNoPush, "no-push", false, "Write files only; skip git add, commit and push")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if f := cmd.Flags().Lookup("lang"); f != nil {
		if err := viper.BindPFlag(config.KeyLanguage, f); err != nil {
			return fmt.Errorf("binding --lang: %w", err)
		}
	}
	settings := config.Current()
	out := cmd.OutOrStdout()
	name, url := args[1], args[2]

	// The tier is checked before any setting so a bad tier always gets the
	// rejection message.
	difficulty, err := problem.ParseDifficulty(args[0])
	if err != nil {
		fmt.Fprintln(out, invalidDifficultyMessage)
		return nil
	}

	publishing := settings.Publish.Enabled && !addNoPush
	var message string
	if publishing {
		var err error
		message, err = publish.CommitMessage(settings.CommitMessage, name)
		if err != nil {
			return err
		}
	}

	s, err := scaffold.New(settings.Root, settings.Language, out, logger)
	if err != nil {
		return err
	}
	s.Now = now

	result, err := s.CreateProblemFile(difficulty.String(), name, url)
	if err != nil {
		return err
	}

	if !publishing {
		logger.Debug("publishing skipped", zap.String("solution", result.SolutionPath))
		return nil
	}

	if err := publish.EnsureGit(); err != nil {
		logger.Warn("publishing will fail", zap.Error(err))
	}
	report := publish.PushChanges(cmd.Context(), newPublisher(settings), message, out, logger)
	if settings.Publish.Strict {
		if err := report.Err(); err != nil {
			return fmt.Errorf("publishing changes: %w", err)
		}
	}
	return nil
}
