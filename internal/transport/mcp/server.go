package mcp

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/pkg/log"
)

const runCommandTool = "run_command"

// Server exposes the interpreter as a single MCP tool over stdio.
// Each call carries one command line; calls are applied one at a time.
type Server struct {
	mcp    *server.MCPServer
	router core.CmdRouter
	in     io.Reader
	out    io.Writer
	mu     sync.Mutex
}

func NewServer(router core.CmdRouter) *Server {
	return newServer(router, os.Stdin, os.Stdout)
}

func newServer(router core.CmdRouter, in io.Reader, out io.Writer) *Server {
	s := &Server{
		mcp:    server.NewMCPServer(core.RosterName, core.RosterVersion, server.WithToolCapabilities(false)),
		router: router,
		in:     in,
		out:    out,
	}

	tool := mcpproto.NewTool(runCommandTool,
		mcpproto.WithDescription("Run one Roster command line. "+
			"Accepted forms: 'Add <employee> to <department>', "+
			"'Show employees from <department>', 'Show all employees'."),
		mcpproto.WithString("line",
			mcpproto.Required(),
			mcpproto.Description("The command line, e.g. 'Add Alice to Engineering'"),
		),
	)
	s.mcp.AddTool(tool, s.handleRunCommand)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("serving roster over MCP stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, s.in, s.out)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) handleRunCommand(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	line, err := req.RequireString("line")
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}
	line = strings.TrimSpace(line)

	s.mu.Lock()
	reply := s.router.Execute(ctx, line)
	s.mu.Unlock()

	if reply.Failed {
		return mcpproto.NewToolResultError(reply.Markdown), nil
	}
	return mcpproto.NewToolResultText(reply.Markdown), nil
}
