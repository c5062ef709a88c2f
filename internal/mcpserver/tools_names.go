package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type renameNamesInput struct {
	Tags       []string `json:"tags,omitempty"       jsonschema:"Tag names to map, e.g. tspan or svg:g"`
	Attributes []string `json:"attributes,omitempty" jsonschema:"Attribute keys to map, e.g. stroke-width"`
}

type nameMapping struct {
	Name      string `json:"name"`
	Renamed   string `json:"renamed"`
	Changed   bool   `json:"changed"`
	Preserved bool   `json:"preserved,omitempty"`
}

type renameNamesOutput struct {
	Tags       []nameMapping `json:"tags,omitempty"`
	Attributes []nameMapping `json:"attributes,omitempty"`
}

func handleRenameNames(_ context.Context, _ *mcp.CallToolRequest, input renameNamesInput) (*mcp.CallToolResult, renameNamesOutput, error) {
	if len(input.Tags) == 0 && len(input.Attributes) == 0 {
		return errResult(errors.New("at least one tag or attribute must be provided")), renameNamesOutput{}, nil
	}

	r, err := newRenamer(nil, false)
	if err != nil {
		return errResult(err), renameNamesOutput{}, nil
	}

	var output renameNamesOutput
	output.Tags = makeSlice[nameMapping](len(input.Tags))
	for _, tag := range input.Tags {
		renamed := r.RenameTag(tag)
		output.Tags = append(output.Tags, nameMapping{Name: tag, Renamed: renamed, Changed: renamed != tag})
	}

	output.Attributes = makeSlice[nameMapping](len(input.Attributes))
	for _, key := range input.Attributes {
		if r.Rules.IsPreserved(key) {
			output.Attributes = append(output.Attributes, nameMapping{Name: key, Renamed: key, Preserved: true})
			continue
		}
		renamed := r.RenameKey(key)
		output.Attributes = append(output.Attributes, nameMapping{Name: key, Renamed: renamed, Changed: renamed != key})
	}

	return nil, output, nil
}
