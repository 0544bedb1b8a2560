package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tracklight-io/redmine-mcp/internal/client"
	"github.com/tracklight-io/redmine-mcp/internal/config"
	"github.com/tracklight-io/redmine-mcp/internal/mcpserver"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// NewServeCommand creates the serve command, the server's main entry point.
func NewServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdin/stdout",
		Long: `Connect to the configured Redmine instance and serve MCP tools over
stdin/stdout until the stream closes. Configuration comes from the
environment (REDMINE_URL, REDMINE_API_KEY, REDMINE_TIMEOUT,
REDMINE_DEBUG) and optionally a YAML config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")

			cfg, fieldErrs := config.Load(cfgFile)
			if len(fieldErrs) > 0 {
				msgs := make([]string, 0, len(fieldErrs))
				for _, fe := range fieldErrs {
					msgs = append(msgs, fe.Error())
				}

				return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
			}

			logger := NewStderrLogger(cfg.Debug)

			redmineClient, err := client.New(&redmine.Config{
				BaseURL: cfg.URL,
				APIKey:  cfg.APIKey,
				Timeout: cfg.Timeout,
				Logger:  logger,
				Debug:   cfg.Debug,
			})
			if err != nil {
				return fmt.Errorf("creating Redmine client: %w", err)
			}

			srv := mcpserver.New(redmineClient, version)

			// stdout belongs to the protocol; the startup notice goes to stderr.
			fmt.Fprintf(os.Stderr, "redmine-mcp %s serving %s on stdio\n", version, cfg.URL)

			return srv.ServeStdio()
		},
	}
}
