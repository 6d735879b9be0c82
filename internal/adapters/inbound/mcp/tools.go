package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nbstyle/nbstyle/internal/adapters/outbound/config"
	"github.com/nbstyle/nbstyle/internal/adapters/outbound/flake8"
	"github.com/nbstyle/nbstyle/internal/adapters/outbound/gitinfo"
	"github.com/nbstyle/nbstyle/internal/adapters/outbound/notebook"
	"github.com/nbstyle/nbstyle/internal/application"
	"github.com/nbstyle/nbstyle/internal/domain"
)

// registerTools registers the nbstyle MCP tools on the given server.
func registerTools(s *server.MCPServer, magicPath string) {
	// 1. nbstyle_check
	s.AddTool(
		mcplib.NewTool("nbstyle_check",
			mcplib.WithDescription("Run a PEP8 style check over a notebook's code cells and return the warnings mapped to their cells as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the .ipynb notebook to check"),
			),
		),
		handleCheck(magicPath),
	)

	// 2. nbstyle_cells
	s.AddTool(
		mcplib.NewTool("nbstyle_cells",
			mcplib.WithDescription("List the code cells a style check would extract from a notebook"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the .ipynb notebook to inspect"),
			),
		),
		handleCells(magicPath),
	)
}

// newService creates the standard set of outbound adapters and the service.
func newService(magicPath string) (*application.CheckService, error) {
	settings, err := config.New().Load(".")
	if err != nil {
		return nil, err
	}
	if magicPath != "" {
		settings.MagicFile = magicPath
	}

	return application.NewCheckService(
		notebook.New(),
		flake8.New(settings.Checker),
		config.NewMagicLoader(),
		gitinfo.New(),
		settings,
	), nil
}

func handleCheck(magicPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if filepath.Ext(file) != domain.NotebookExt {
			return errorResult(fmt.Sprintf("file extension must be %s", domain.NotebookExt)), nil
		}

		svc, err := newService(magicPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.Run(file, false)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleCells(magicPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if filepath.Ext(file) != domain.NotebookExt {
			return errorResult(fmt.Sprintf("file extension must be %s", domain.NotebookExt)), nil
		}

		svc, err := newService(magicPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		nb, codeCells, err := svc.ListCells(file)
		if err != nil {
			return errorResult(fmt.Sprintf("listing cells failed: %v", err)), nil
		}

		type cellInfo struct {
			Sequence     int    `json:"sequence"`
			NotebookCell int    `json:"notebook_cell"`
			Lines        int    `json:"lines"`
			FirstLine    string `json:"first_line,omitempty"`
		}

		cells := nb.Cells()
		infos := make([]cellInfo, 0, len(codeCells))
		for seq, idx := range codeCells {
			source := cells[idx].SourceLines()
			first := ""
			if len(source) > 0 {
				first = source[0]
			}
			infos = append(infos, cellInfo{
				Sequence:     seq + 1,
				NotebookCell: idx,
				Lines:        len(source),
				FirstLine:    first,
			})
		}

		return jsonResult(infos)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
