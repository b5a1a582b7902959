package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/theapemachine/yamap-mcp/pkg/plans"
	"github.com/theapemachine/yamap-mcp/pkg/registry"
	"github.com/theapemachine/yamap-mcp/pkg/service"
	"github.com/theapemachine/yamap-mcp/pkg/tools"
	"github.com/theapemachine/yamap-mcp/pkg/tools/browser"
)

func loadBrowser() (*browser.Browser, error) {
	cfg := browser.DefaultConfig()

	if err := viper.UnmarshalKey("browser", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read browser config: %w", err)
	}

	return browser.NewBrowser(cfg), nil
}

func loadExtractor() (*plans.Extractor, error) {
	sel := plans.DefaultSelectors()

	if err := viper.UnmarshalKey("yamap.selectors", &sel); err != nil {
		return nil, fmt.Errorf("failed to read selector config: %w", err)
	}

	return plans.NewExtractor(sel), nil
}

func loadRegistry() (*registry.Registry, error) {
	nav, err := loadBrowser()
	if err != nil {
		return nil, err
	}

	extractor, err := loadExtractor()
	if err != nil {
		return nil, err
	}

	reg := registry.NewRegistry()
	tools.Register(reg, nav, extractor)

	return reg, nil
}

func loadMCPConfig() (service.MCPConfig, error) {
	cfg := service.MCPConfig{
		Name:    "yamap-mcp-for-lineai",
		Version: "1.0.0",
		Addr:    "0.0.0.0:3210",
	}

	if err := viper.UnmarshalKey("server", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read server config: %w", err)
	}

	return cfg, nil
}
