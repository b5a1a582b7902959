package registry

import (
	"sort"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolDefinition links an MCP tool declaration to the handler that serves it.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// Name is the tool name presented to the calling agent.
func (def ToolDefinition) Name() string {
	return def.Tool.Name
}

/*
Registry holds tool definitions keyed by tool name. It is filled once at
startup and read by both the MCP server and the tools command.
*/
type Registry struct {
	mu    sync.RWMutex
	tools map[string]ToolDefinition
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]ToolDefinition)}
}

// RegisterTool adds or replaces a tool definition.
func (r *Registry) RegisterTool(def ToolDefinition) {
	r.mu.Lock()
	r.tools[def.Name()] = def
	r.mu.Unlock()
}

// GetToolDefinition returns the definition registered under name.
func (r *Registry) GetToolDefinition(name string) (ToolDefinition, bool) {
	r.mu.RLock()
	def, found := r.tools[name]
	r.mu.RUnlock()
	return def, found
}

// List returns every definition sorted by tool name.
func (r *Registry) List() []ToolDefinition {
	r.mu.RLock()
	defs := make([]ToolDefinition, 0, len(r.tools))
	for _, def := range r.tools {
		defs = append(defs, def)
	}
	r.mu.RUnlock()

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name() < defs[j].Name()
	})

	return defs
}
