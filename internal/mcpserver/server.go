// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes svgcase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/svgcase"
)

const serverInstructions = `svgcase MCP server: renames SVG tags to an upper-case first letter and kebab-case attribute keys to camelCase.

Configuration: defaults come from SVGCASE_* environment variables set in your MCP client config.

Key settings:
- SVGCASE_RULES_FILE (default: svgcase.yaml in the working directory, if present): YAML with preserve_attributes and tag_overrides
- SVGCASE_STRICT (default: false): fail on attribute collisions instead of keeping the last value
- SVGCASE_MAX_FILE_SIZE (default: 64MiB): maximum input size
- SVGCASE_MCP_MAX_INLINE_SIZE (default: 10MiB): maximum inline content size

Use rename_names to preview how individual tags and attributes map before converting a whole document.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "svgcase", Version: svgcase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename",
		Description: "Rename the tags and attribute keys of an SVG document. Tags get an upper-case first letter (tspan becomes TSpan), kebab-case attribute keys become camelCase, and preserved keys such as font-family are kept. Provide exactly one of file or content. Use output to write to a file instead of returning the document inline. Attribute collisions are reported as warnings, or fail the call with strict=true.",
	}, handleRename)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_names",
		Description: "Map individual tag names and attribute keys through the active rename rules without converting a document. Useful to check tag overrides and preserved attributes.",
	}, handleRenameNames)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
