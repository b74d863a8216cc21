package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tdewit/opbarst/pkg/config"
	"github.com/tdewit/opbarst/pkg/output"
	"github.com/tdewit/opbarst/pkg/safety"
	"github.com/tdewit/opbarst/pkg/tui"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Check flags
	format string

	logger = logrus.New()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "opbarst",
	Short: "Uplift safety check for piezometric head measurements",
	Long: `opbarst derives the safety factor against hydraulic uplift from an
actual and a critical piezometric head, classifies the margin into a
risk tier and reports the matching advice.

Run without arguments to start the interactive form.`,
	Version: "0.3.1",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(logrus.WarnLevel)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := newEvaluator()
		if err != nil {
			return err
		}
		return tui.Run(ev)
	},
}

// checkCmd evaluates a single head pair without the interactive form
var checkCmd = &cobra.Command{
	Use:   "check <actueel> <kritiek>",
	Short: "Evaluate one head pair and exit with the tier code",
	Long: `Evaluates a single pair of head values without the interactive form.

Exit codes: 0 safe, 1 warning, 2 danger, 3 invalid input.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the limits config file")

	// Check flags
	checkCmd.Flags().StringVarP(&format, "format", "f", string(output.FormatText), "Output format: text or json")

	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEvaluator loads the limits config and builds the evaluator.
func newEvaluator() (*safety.Evaluator, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return safety.NewEvaluator(cfg.EvaluationLimits(), logger), nil
}

// runCheck evaluates the two positional head values.
func runCheck(cmd *cobra.Command, args []string) error {
	ev, err := newEvaluator()
	if err != nil {
		return err
	}

	eval, err := ev.EvaluateStrings(args[0], args[1])
	if err != nil {
		var verr *safety.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, verr.Message)
			os.Exit(3) // Invalid input
		}
		return err
	}

	f := output.NewFormatter(output.Format(format), os.Stdout)
	if err := f.Render(eval); err != nil {
		return err
	}

	if code := safety.ExitCode(eval.Tier); code != 0 {
		os.Exit(code)
	}
	return nil
}
