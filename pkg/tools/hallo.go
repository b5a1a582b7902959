package tools

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
)

type HalloTool struct{}

func NewHalloTool() *mcp.Tool {
	tool := mcp.NewTool(
		"hallo",
		mcp.WithDescription("Returns a hallo world message"),
	)

	return &tool
}

func (ht *HalloTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	log.Info("hallo executing")

	return mcp.NewToolResultText("hallo world"), nil
}
