package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perftool/internal/config"
	"perftool/internal/telemetry"
)

var exit = os.Exit

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "perftool",
	Short: "Benchmark sampling harness for commit-keyed CSV datasets",
	Long: `perftool builds a CLI binary at a given commit, invokes its bench
functions with sampled parameters, parses the printed timings, and appends
{parameter, timing} rows to per-commit CSV datasets under ./data.

Bench functions and their dataset columns are declared in config.json in
the working directory.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig wires environment variables and harness defaults.
func initConfig() {
	if err := godotenv.Load(); err != nil {
		// .env is optional
	}

	viper.SetEnvPrefix("PERFTOOL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults()

	if err := telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}
