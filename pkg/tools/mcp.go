package tools

import (
	"fmt"

	"github.com/theapemachine/yamap-mcp/pkg/plans"
	"github.com/theapemachine/yamap-mcp/pkg/registry"
)

/*
Register builds every tool and adds it to reg. The URL bound tools share nav
for rendering pages and the plan tool reads them with extractor.
*/
func Register(reg *registry.Registry, nav Navigator, extractor *plans.Extractor) {
	for _, id := range []string{"hallo", "fetch_html", "yamap_plan"} {
		def, err := Acquire(id, nav, extractor)
		if err != nil {
			panic(err)
		}

		reg.RegisterTool(def)
	}
}

// Acquire returns the definition of a single tool by name.
func Acquire(id string, nav Navigator, extractor *plans.Extractor) (registry.ToolDefinition, error) {
	switch id {
	case "hallo":
		halloTool := &HalloTool{}
		return registry.ToolDefinition{Tool: *NewHalloTool(), Handler: halloTool.Handle}, nil
	case "fetch_html", "web-browsing", "browser":
		fetchTool := &FetchHTMLTool{Navigator: nav}
		return registry.ToolDefinition{Tool: *NewFetchHTMLTool(), Handler: fetchTool.Handle}, nil
	case "yamap_plan", "plan":
		planTool := &PlanTool{Navigator: nav, Extractor: extractor}
		return registry.ToolDefinition{Tool: *NewPlanTool(), Handler: planTool.Handle}, nil
	}

	return registry.ToolDefinition{}, fmt.Errorf("tool not found: %s", id)
}
