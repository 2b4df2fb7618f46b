package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/FyefoxxM/diff-explainer/common"
	"github.com/FyefoxxM/diff-explainer/diff"
	"github.com/FyefoxxM/diff-explainer/llm"
	"github.com/FyefoxxM/diff-explainer/logger"
	"github.com/FyefoxxM/diff-explainer/prompt"
	"github.com/FyefoxxM/diff-explainer/ui"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel  string
	filePath  string
	modelName string
	maxLines  int
)

var rootCmd = &cobra.Command{
	Use:   "diff-explainer",
	Short: "Explain git diffs in plain English using AI",
	Long: `diff-explainer reads a git diff and streams back a plain-English
explanation of what changed, why, and what to watch out for.

Examples:
  git diff | diff-explainer
  git show abc123 | diff-explainer
  diff-explainer --file my_diff.txt

Get a free API key at: https://openrouter.ai/keys`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)
	},
	RunE: runExplain,
}

// Execute runs the root command and handles errors
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.Errorf("Error: %v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Set the logging level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to file containing the git diff (default: stdin)")
	rootCmd.Flags().StringVarP(&modelName, "model", "m", common.DefaultModel, "OpenRouter model to use")
	rootCmd.Flags().IntVar(&maxLines, "max-lines", common.DefaultMaxLines, "Maximum diff lines sent to the model")
}

func runExplain(cmd *cobra.Command, args []string) error {
	// A .env file is optional; the environment may already carry the key.
	_ = godotenv.Load()

	settings := common.WithYamlFile()
	model := settings.Model
	if cmd.Flags().Changed("model") {
		model = modelName
	}
	lineCap := settings.MaxLines
	if cmd.Flags().Changed("max-lines") {
		lineCap = maxLines
	}

	apiKey, err := llm.APIKey()
	if err != nil {
		ui.Hint("1. Get a free API key from https://openrouter.ai/keys")
		ui.Hint("2. Create .env file with: OPENROUTER_API_KEY=your_key_here")
		return err
	}

	input, err := diff.ReadInput(filePath, os.Stdin, isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		if errors.Is(err, diff.ErrNoInput) {
			ui.Hint("\nUsage:")
			ui.Hint("  git diff | diff-explainer")
			ui.Hint("  diff-explainer --file diff.txt")
		}
		return err
	}

	cleaned := diff.Sanitize(input, lineCap)
	if strings.TrimSpace(cleaned) == "" {
		return errors.New("empty or invalid diff provided")
	}

	lineCount := len(strings.Split(cleaned, "\n"))
	ui.Infof("Analyzing diff (%d lines)...", lineCount)

	client, err := llm.NewOpenRouter(apiKey,
		llm.WithModel(model),
		llm.WithAPITimeout(settings.APITimeoutSeconds),
		llm.WithReferer("https://github.com/FyefoxxM/diff-explainer"),
		llm.WithTitle("Git Diff Explainer"),
	)
	if err != nil {
		return err
	}

	// An interrupt mid-stream is a clean exit, not a failure.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stream, err := client.StreamExplanation(ctx, prompt.Explain(cleaned))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			ui.Warnf("Interrupted by user")
			return nil
		}
		return err
	}
	defer stream.Close()

	ui.Header("AI Explanation:")
	for {
		fragment, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				fmt.Println()
				ui.Warnf("Interrupted by user")
				return nil
			}
			return err
		}
		// Print fragments as they arrive; no buffering.
		fmt.Print(fragment)
	}
	fmt.Println()
	ui.Footer()

	return nil
}
