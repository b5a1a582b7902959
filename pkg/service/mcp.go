package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/theapemachine/yamap-mcp/pkg/metrics"
	"github.com/theapemachine/yamap-mcp/pkg/registry"
)

// MCPConfig names the server and tells it how to listen when using SSE.
type MCPConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Addr    string `mapstructure:"addr"`
	BaseURL string `mapstructure:"baseURL"`
}

/*
MCPBroker owns the MCP server and exposes it over stdio or SSE. Tools are
taken from a registry when the broker is built.
*/
type MCPBroker struct {
	cfg     MCPConfig
	srv     *server.MCPServer
	sse     *server.SSEServer
	metrics *metrics.ToolMetrics
}

func NewMCPBroker(cfg MCPConfig, reg *registry.Registry) *MCPBroker {
	mcpSrv := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithLogging(),
		server.WithRecovery(),
		server.WithToolCapabilities(true),
	)

	toolMetrics := metrics.NewToolMetrics()

	for _, def := range reg.List() {
		mcpSrv.AddTool(def.Tool, toolMetrics.Instrument(def.Name(), def.Handler))
	}

	var opts []server.SSEOption
	if cfg.BaseURL != "" {
		opts = append(opts, server.WithBaseURL(cfg.BaseURL))
	}

	return &MCPBroker{
		cfg:     cfg,
		srv:     mcpSrv,
		sse:     server.NewSSEServer(mcpSrv, opts...),
		metrics: toolMetrics,
	}
}

// MCPServer returns the underlying server, mostly for in-process clients.
func (b *MCPBroker) MCPServer() *server.MCPServer {
	return b.srv
}

// Metrics returns the per tool counters of this broker.
func (b *MCPBroker) Metrics() *metrics.ToolMetrics {
	return b.metrics
}

// ServeStdio blocks serving requests on stdin and stdout.
func (b *MCPBroker) ServeStdio() error {
	log.Info("YAMAP MCP Server running on stdio")
	defer b.logMetrics()

	return server.ServeStdio(b.srv, server.WithErrorLogger(log.StandardLog(log.StandardLogOptions{
		ForceLevel: log.ErrorLevel,
	})))
}

/*
ServeSSE serves the SSE transport on the configured address until ctx is
done, then shuts the listener down.
*/
func (b *MCPBroker) ServeSSE(ctx context.Context) error {
	errCh := make(chan error, 1)
	defer b.logMetrics()

	go func() {
		log.Info("YAMAP MCP Server running on sse", "addr", b.cfg.Addr)
		errCh <- b.sse.Start(b.cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down sse server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return b.sse.Shutdown(shutdownCtx)
	}
}

func (b *MCPBroker) Server() http.Handler {
	return b.sse
}

func (b *MCPBroker) logMetrics() {
	log.Info("tool usage", b.metrics.GetMetrics()...)
}
