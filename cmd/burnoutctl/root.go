package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"burnout-check/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "burnoutctl",
	Short:         "Burnout risk check from the terminal",
	Long:          "burnoutctl runs a burnout risk assessment and manages the mood log using the same configuration as the API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("mood-store", "", "Mood store backend: file, sqlite or postgres (overrides MOOD_STORE)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log debug output to stderr")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(moodCmd)
}

// loadConfig lee el entorno y aplica los flags globales.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if store, _ := cmd.Flags().GetString("mood-store"); store != "" {
		cfg.MoodStore = store
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return zap.NewExample()
	}
	return zap.NewNop()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
