package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/internal/fileutil"
	"github.com/erraggy/svgcase/renamer"
)

type renameInput struct {
	File        string `json:"file,omitempty"         jsonschema:"Path to an SVG file on disk"`
	Content     string `json:"content,omitempty"      jsonschema:"Inline SVG document content"`
	Output      string `json:"output,omitempty"       jsonschema:"File path to write the renamed document. If omitted the document is returned inline."`
	Strict      *bool  `json:"strict,omitempty"       jsonschema:"Fail when a renamed attribute key collides with an existing key. Defaults to SVGCASE_STRICT."`
	IncludeInfo bool   `json:"include_info,omitempty" jsonschema:"Also report attributes kept verbatim by the preserve list"`
}

type renameIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
}

type renameStats struct {
	Elements            int `json:"elements"`
	TagsRenamed         int `json:"tags_renamed"`
	AttributesRenamed   int `json:"attributes_renamed"`
	AttributesPreserved int `json:"attributes_preserved"`
	Collisions          int `json:"collisions"`
}

type renameOutput struct {
	Success    bool          `json:"success"`
	Stats      renameStats   `json:"stats"`
	IssueCount int           `json:"issue_count"`
	Issues     []renameIssue `json:"issues,omitempty"`
	WrittenTo  string        `json:"written_to,omitempty"`
	Document   string        `json:"document,omitempty"`
}

func handleRename(_ context.Context, _ *mcp.CallToolRequest, input renameInput) (*mcp.CallToolResult, renameOutput, error) {
	opts, err := buildRenameOptions(input)
	if err != nil {
		return errResult(err), renameOutput{}, nil
	}

	result, err := renamer.RenameWithOptions(opts...)
	if err != nil {
		// Strict-mode collisions also land here; nothing is written.
		return errResult(err), renameOutput{}, nil
	}

	output := renameOutput{
		Success: result.Success,
		Stats: renameStats{
			Elements:            result.Stats.ElementsVisited,
			TagsRenamed:         result.Stats.TagsRenamed,
			AttributesRenamed:   result.Stats.AttributesRenamed,
			AttributesPreserved: result.Stats.AttributesPreserved,
			Collisions:          result.Stats.Collisions,
		},
		IssueCount: len(result.Issues),
	}

	output.Issues = makeSlice[renameIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, renameIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Context:  issue.Context,
		})
	}

	if input.Output != "" {
		if err := document.WriteFile(result.Document, input.Output, fileutil.ReadableByAll); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), renameOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}

	data, err := document.Marshal(result.Document)
	if err != nil {
		return errResult(err), renameOutput{}, nil
	}
	output.Document = string(data)
	return nil, output, nil
}

// buildRenameOptions translates the MCP input into renamer options,
// handling the two input modes (file, content) and the active rules.
func buildRenameOptions(input renameInput) ([]renamer.Option, error) {
	var opts []renamer.Option

	switch {
	case input.File != "" && input.Content != "":
		return nil, errors.New("exactly one of file or content must be provided (got 2)")
	case input.File != "":
		if input.Output != "" && fileutil.SamePath(input.File, input.Output) {
			return nil, fmt.Errorf("output %s would overwrite the input", input.Output)
		}
		opts = append(opts, renamer.WithFilePath(input.File))
	case input.Content != "":
		if int64(len(input.Content)) > cfg.MCPMaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SVGCASE_MCP_MAX_INLINE_SIZE to increase",
				len(input.Content), cfg.MCPMaxInlineSize)
		}
		opts = append(opts, renamer.WithBytes([]byte(input.Content)))
	default:
		return nil, errors.New("exactly one of file or content must be provided (got 0)")
	}

	r, err := newRenamer(input.Strict, input.IncludeInfo)
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		renamer.WithRules(r.Rules),
		renamer.WithStrictMode(r.StrictMode),
		renamer.WithIncludeInfo(r.IncludeInfo),
		renamer.WithMaxFileSize(r.MaxFileSize),
	)
	return opts, nil
}
