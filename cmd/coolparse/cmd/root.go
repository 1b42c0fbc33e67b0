package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pattyshack/coolparse/config"
)

var (
	cfgFile string
	verbose bool
)

// Returned after diagnostics were printed; the caller only sets the exit
// status.
var ErrHalted = errors.New("Compilation halted due to lex and parse errors")

var rootCmd = &cobra.Command{
	Use:   "coolparse",
	Short: "COOL syntactic front end",
	Long: `coolparse parses COOL (Classroom Object Oriented Language) source
files into abstract syntax trees.

Commands:
  tree    - parse files and print their syntax trees
  tokens  - print the token stream of files`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace parser error recovery")
}

// loadConfig loads the configuration file and builds the stderr logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}
