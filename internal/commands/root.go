package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"evalgo.org/maritime/internal/config"
	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/internal/version"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "maritime",
	Short: "Maritime records for ships, ports and voyages",
	Long: `Maritime keeps records of ships, ports and the voyages between them.

It serves a REST API and a web UI over a relational store, refuses to
delete ports that voyages still use, and reports fleet statistics such as
speed bands, ports per country and the countries visited in the last year.`,
	Version: version.Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (json, console)")
	rootCmd.PersistentFlags().String("dsn", "", "database DSN")
	rootCmd.PersistentFlags().String("driver", "", "database driver (sqlite, postgres)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "%s" .Version}}
`)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides()
}

// applyFlagOverrides copies explicitly set persistent flags over the
// loaded configuration.
func applyFlagOverrides() {
	flags := rootCmd.PersistentFlags()
	set := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	set("log-level", &cfg.Logging.Level)
	set("log-format", &cfg.Logging.Format)
	set("dsn", &cfg.Database.DSN)
	set("driver", &cfg.Database.Driver)
}

// newLogger builds the process logger from the logging section.
func newLogger() (*logging.Logger, error) {
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Println(info.String())

		if cmd.Flag("verbose").Changed {
			fmt.Printf("\nDetails:\n")
			fmt.Printf("  Version:    %s\n", info.Version)
			fmt.Printf("  Git Commit: %s\n", info.GitCommit)
			fmt.Printf("  Built:      %s\n", info.BuildTime)
			fmt.Printf("  Go Version: %s\n", info.GoVersion)
			fmt.Printf("  Platform:   %s\n", info.Platform)
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "verbose version output")
}
