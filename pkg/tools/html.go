package tools

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// FetchHTMLTool returns the rendered markup of any page, untouched.
type FetchHTMLTool struct {
	Navigator Navigator
}

func NewFetchHTMLTool() *mcp.Tool {
	tool := mcp.NewTool(
		"fetch_html",
		mcp.WithDescription("Opens a web page in a headless browser, waits for it to finish rendering and returns the raw HTML."),
		mcp.WithString("url",
			mcp.Description("Absolute http/https URL to navigate to"),
			mcp.Required(),
		),
	)

	return &tool
}

func (ft *FetchHTMLTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	url, ok := requireURL(req)
	if !ok {
		return mcp.NewToolResultError(errURLRequired), nil
	}

	id := uuid.NewString()
	log.Info("fetch_html executing", "request", id, "url", url)

	html, err := ft.Navigator.Navigate(ctx, url)
	if err != nil {
		log.Error("navigation failed", "request", id, "url", url, "error", err)
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	return mcp.NewToolResultText(html), nil
}
