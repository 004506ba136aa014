package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/curriculum/internal/domain/curriculum"
)

// CurriculumService defines the curriculum reads needed by MCP.
type CurriculumService interface {
	Journeys(ctx context.Context) ([]curriculum.Journey, error)
	JourneyBySlug(ctx context.Context, slug string) (*curriculum.Journey, error)
	Tree(ctx context.Context) (*curriculum.Index, error)
}

// Config contains server configuration.
type Config struct {
	Curriculum CurriculumService
	Logger     *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "curriculum",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Curriculum)

	return server
}
