package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracklight-io/redmine-mcp/cmd/redmine-mcp/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "redmine-mcp",
	Short: "Redmine MCP server",
	Long: `An MCP (Model Context Protocol) server exposing a Redmine instance
as a set of tools: projects, issues, time entries, users, memberships
and the enumerations needed to work with them.

The server speaks MCP over stdin/stdout; all diagnostics go to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (YAML; environment variables take precedence)")

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewServeCommand(version))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
