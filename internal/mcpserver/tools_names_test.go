package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameNamesTool(t *testing.T) {
	isolate(t)

	input := renameNamesInput{
		Tags:       []string{"tspan", "svg:tspan", "g", "Rect"},
		Attributes: []string{"stroke-width", "font-family", "viewBox", "xlink:href"},
	}
	res, output, err := handleRenameNames(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, res)

	assert.Equal(t, []nameMapping{
		{Name: "tspan", Renamed: "TSpan", Changed: true},
		{Name: "svg:tspan", Renamed: "Svg:tspan", Changed: true},
		{Name: "g", Renamed: "G", Changed: true},
		{Name: "Rect", Renamed: "Rect"},
	}, output.Tags)
	assert.Equal(t, []nameMapping{
		{Name: "stroke-width", Renamed: "strokeWidth", Changed: true},
		{Name: "font-family", Renamed: "font-family", Preserved: true},
		{Name: "viewBox", Renamed: "viewBox"},
		{Name: "xlink:href", Renamed: "xlink:href"},
	}, output.Attributes)
}

func TestRenameNamesTool_Empty(t *testing.T) {
	isolate(t)

	res, _, err := handleRenameNames(context.Background(), &mcp.CallToolRequest{}, renameNamesInput{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
