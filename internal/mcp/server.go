package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/recruitflow/recruitflow/internal/api"
)

const serverInstructions = `Recruitment tracking over MCP. Tools cover the candidate roster
(create, update, stage moves, notes, search and filtering), open positions, the interview
calendar (scheduling, rescheduling, participants, notes), and derived dashboard views
(overview, stage metrics, pipeline board, tasks, activity, available slots). All state is
process-local and resets on restart. IDs for candidates, positions, and interviews are
integers assigned in creation order.`

// Config contains server configuration.
type Config struct {
	Handler *api.Handler
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and
// middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "recruitflow",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Handler)

	return server
}
