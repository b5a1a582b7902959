package metrics

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolStats holds the counters of a single tool.
type ToolStats struct {
	Calls    int64
	Failed   int64
	Duration time.Duration
}

// ToolMetrics tracks call counts, failures and time spent per tool.
type ToolMetrics struct {
	mu    sync.RWMutex
	tools map[string]*ToolStats
}

// NewToolMetrics creates a new ToolMetrics instance
func NewToolMetrics() *ToolMetrics {
	return &ToolMetrics{tools: make(map[string]*ToolStats)}
}

/*
RecordCall records one invocation of tool. A call counts as failed when the
handler returned an error or an error-flagged result.
*/
func (m *ToolMetrics) RecordCall(tool string, failed bool, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats, ok := m.tools[tool]
	if !ok {
		stats = &ToolStats{}
		m.tools[tool] = stats
	}

	stats.Calls++
	if failed {
		stats.Failed++
	}
	stats.Duration += duration
}

// Instrument wraps handler so every call is recorded under tool.
func (m *ToolMetrics) Instrument(tool string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := handler(ctx, req)
		m.RecordCall(tool, err != nil || (res != nil && res.IsError), time.Since(start))
		return res, err
	}
}

// Get returns a copy of the counters for tool.
func (m *ToolMetrics) Get(tool string) ToolStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if stats, ok := m.tools[tool]; ok {
		return *stats
	}

	return ToolStats{}
}

// GetMetrics returns a snapshot of the current metrics as log friendly key/value pairs.
func (m *ToolMetrics) GetMetrics() []any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.tools))
	for name := range m.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	kv := make([]any, 0, len(names)*4)
	for _, name := range names {
		stats := m.tools[name]
		kv = append(kv,
			name+".calls", stats.Calls,
			name+".failed", stats.Failed,
		)
	}

	return kv
}

// Reset clears every counter.
func (m *ToolMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tools = make(map[string]*ToolStats)
}
