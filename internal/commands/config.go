package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"evalgo.org/maritime/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runShowConfig,
}

var initConfigCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	RunE:  runInitConfig,
}

var (
	initConfigPath  string
	initConfigForce bool
)

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(initConfigCmd)

	initConfigCmd.Flags().StringVar(&initConfigPath, "path", "config.yaml", "file to write")
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "overwrite an existing file")
}

func runShowConfig(cmd *cobra.Command, args []string) error {
	shown := *cfg
	shown.Database.DSN = logging.RedactDSN(shown.Database.DSN)

	data, err := yaml.Marshal(&shown)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

const defaultConfig = `# Maritime Configuration

server:
  host: 0.0.0.0
  port: 8080
  read_timeout: 30s
  write_timeout: 30s
  shutdown_timeout: 10s
  debug: false

database:
  # sqlite or postgres
  driver: sqlite
  dsn: file:maritime.db?_foreign_keys=on
  # dsn: host=localhost user=maritime password=secret dbname=maritime port=5432 sslmode=disable
  max_open_conns: 10
  max_idle_conns: 5
  conn_max_lifetime: 30m
  auto_migrate: true
  seed: false
  slow_threshold: 1s
  log_level: warn

logging:
  level: info
  format: json

security:
  rate_limit: 100
  allowed_origins:
    - http://localhost:4200
    - https://localhost:4200

metrics:
  enabled: true
  path: /metrics
`

func runInitConfig(cmd *cobra.Command, args []string) error {
	if !initConfigForce {
		if _, err := os.Stat(initConfigPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initConfigPath)
		}
	}

	if err := os.WriteFile(initConfigPath, []byte(defaultConfig), 0644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", initConfigPath)
	return nil
}
