// Package main is the entry point for the pokerole command line tool
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

var (
	// Global flags
	envFile   string
	redisURL  string
	userID    string
	logLevel  string
	logFormat string
	output    string

	// Built in PersistentPreRunE for every command that talks to storage
	svc *app
)

var rootCmd = &cobra.Command{
	Use:   "pokerole",
	Short: "Pokerole trainer and creature manager",
	Long: `pokerole keeps a trainer sheet, a party of six and twenty PC boxes,
browses the Pokerole reference data and rolls Pokerole dice checks.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "env file to load before reading the environment")
	flags.StringVar(&redisURL, "redis", "", "Redis URL (overrides POKEROLE_REDIS_URL)")
	flags.StringVar(&userID, "user", "", "user whose roster to use (overrides POKEROLE_USER_ID)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json")
	flags.StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(trainerCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(output); err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), &appOptions{
		EnvFile:   envFile,
		RedisURL:  redisURL,
		UserID:    userID,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	})
	if err != nil {
		return err
	}
	svc = a
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if svc == nil {
		return nil
	}
	return svc.Close()
}

// reportError prints the error and one line per invalid field
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	fields := errors.GetValidationErrors(err)
	if len(fields) == 0 {
		return
	}
	ve := &errors.ValidationError{Fields: fields}
	for _, field := range ve.FieldNames() {
		for _, msg := range fields[field] {
			fmt.Fprintf(w, "  %s %s\n", field, msg)
		}
	}
}
