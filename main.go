package main

import (
	"os"

	"github.com/theapemachine/yamap-mcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
