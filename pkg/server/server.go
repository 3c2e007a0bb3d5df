// Package server exposes skill discovery and installation to calling agents
// over the Model Context Protocol. It is a thin shim: request framing and
// tool registration live here, all semantics live in catalog and installer.
package server

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/eliyastein/skills/pkg/catalog"
	"github.com/eliyastein/skills/pkg/config"
	"github.com/eliyastein/skills/pkg/installer"
	"github.com/eliyastein/skills/pkg/telemetry"
	"github.com/eliyastein/skills/pkg/version"
)

// SkillServer wires the catalog builder and installer behind MCP tools.
type SkillServer struct {
	builder    *catalog.Builder
	installer  *installer.Installer
	sourceRoot string
}

// New creates a SkillServer from resolved configuration.
func New(cfg config.Config) (*SkillServer, error) {
	builder, err := catalog.NewBuilder(catalog.WithIgnorePatterns(cfg.Ignore...))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog builder")
	}
	return &SkillServer{
		builder:    builder,
		installer:  installer.New(builder, cfg.InstallRoot),
		sourceRoot: cfg.SourceRoot,
	}, nil
}

// MCPServer builds the MCP server with both tools registered.
func (s *SkillServer) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(
		"skills",
		version.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	srv.AddTool(mcp.NewTool("list_skills",
		mcp.WithDescription("List the skills available for installation, with a short description of each."),
	), s.handleListSkills)

	srv.AddTool(mcp.NewTool("install_skill",
		mcp.WithDescription("Install a skill by name into the local skills directory. Installing an already-installed skill is a no-op."),
		mcp.WithString("skill_name",
			mcp.Required(),
			mcp.Description("Name of the skill to install, as shown by list_skills."),
		),
	), s.handleInstallSkill)

	return srv
}

// Serve runs the server on stdio until the context is canceled or stdin closes.
func (s *SkillServer) Serve(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	stdio := server.NewStdioServer(s.MCPServer())
	return stdio.Listen(ctx, stdin, stdout)
}

func (s *SkillServer) handleListSkills(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var entries []catalog.Entry
	_ = telemetry.WithSpan(ctx, "catalog.scan", func(ctx context.Context) error {
		entries = s.builder.Scan(ctx, s.sourceRoot)
		return nil
	}, attribute.String("source_root", s.sourceRoot))

	return mcp.NewToolResultText(catalog.Render(entries)), nil
}

func (s *SkillServer) handleInstallSkill(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// A missing skill_name is a malformed request, surfaced to the transport
	// rather than reported as an install outcome.
	name, err := req.RequireString("skill_name")
	if err != nil {
		return nil, errors.Wrap(err, "skill_name is required")
	}

	var result installer.Result
	_ = telemetry.WithSpan(ctx, "installer.install", func(ctx context.Context) error {
		result = s.installer.Install(ctx, s.sourceRoot, name)
		telemetry.SetAttributes(ctx, attribute.Int("install.status", int(result.Status)))
		return result.Err
	}, attribute.String("skill_name", name))

	return mcp.NewToolResultText(result.Message()), nil
}
