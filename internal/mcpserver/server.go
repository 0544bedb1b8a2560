// Package mcpserver exposes the Redmine client as MCP tools. Tool
// registration is a data table looked up once at startup, and every handler
// result — success or failure — is converted into a tool-result envelope at
// exactly one place; no error crosses the protocol boundary as a Go error.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tracklight-io/redmine-mcp/internal/client"
)

// Server wires the Redmine client into an MCP server.
type Server struct {
	mcpServer *server.MCPServer
	client    *client.Client
}

// toolHandler is the internal handler contract: a plain result value or an
// error, converted into the protocol envelope by wrapHandler.
type toolHandler func(ctx context.Context, req mcp.CallToolRequest) (interface{}, error)

// toolDefinition pairs a tool's schema with its handler. Adding a tool is a
// pure data addition to the definitions table.
type toolDefinition struct {
	tool    mcp.Tool
	handler toolHandler
}

// New creates the MCP server and registers all tools.
func New(redmineClient *client.Client, version string) *Server {
	mcpServer := server.NewMCPServer(
		"redmine-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	srv := &Server{
		mcpServer: mcpServer,
		client:    redmineClient,
	}

	for _, def := range srv.toolDefinitions() {
		mcpServer.AddTool(def.tool, wrapHandler(def.handler))
	}

	return srv
}

// ServeStdio serves MCP over stdin/stdout until the stream closes.
func (s *Server) ServeStdio() error {
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("serving MCP on stdio: %w", err)
	}

	return nil
}

// MCPServer exposes the underlying server, mainly for tests.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// wrapHandler converts a handler outcome into the uniform envelope: the
// JSON-rendered result as a text content item on success, the error message
// with IsError set on failure. This is the only place errors become data.
func wrapHandler(handler toolHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := handler(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(data)), nil
	}
}
