package tools

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/theapemachine/yamap-mcp/pkg/plans"
)

/*
PlanTool renders a YAMAP plan page and reports its overview, plan data and
travel plan as plain text.
*/
type PlanTool struct {
	Navigator Navigator
	Extractor *plans.Extractor
}

func NewPlanTool() *mcp.Tool {
	tool := mcp.NewTool(
		"yamap_plan",
		mcp.WithDescription("Reads a YAMAP mountain plan and returns its overview, plan data (distance, difficulty, pace) and per-day checkpoint schedule as text."),
		mcp.WithString("url",
			mcp.Description("Plan URL, https://yamap.com/plans/code/<code> or the same URL ending in /printing"),
			mcp.Required(),
		),
		mcp.WithBoolean("include_html",
			mcp.Description("Append the rendered HTML after the report"),
		),
	)

	return &tool
}

func (pt *PlanTool) Handle(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	raw, ok := requireURL(req)
	if !ok {
		return mcp.NewToolResultError(errURLRequired), nil
	}

	id := uuid.NewString()

	planURL, err := plans.Normalize(raw)
	if err != nil {
		log.Warn("rejected plan url", "request", id, "url", raw)
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Info("yamap_plan executing", "request", id, "url", planURL)

	html, err := pt.Navigator.Navigate(ctx, planURL)
	if err != nil {
		log.Error("navigation failed", "request", id, "url", planURL, "error", err)
		return nil, fmt.Errorf("failed to fetch %s: %w", planURL, err)
	}

	report := pt.Extractor.Report(html)

	if includeHTML, _ := req.GetArguments()["include_html"].(bool); includeHTML {
		report += "\n\n" + html
	}

	return mcp.NewToolResultText(report), nil
}
