/*
Package cmd implements the command-line interface for yamap-mcp.
It serves the MCP tools and offers a few commands for working with plan pages
directly from a terminal.
*/
package cmd

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theapemachine/yamap-mcp/pkg/logging"
)

/*
Embed a mini filesystem into the binary to hold the default config file.
This will be written to the home directory of the user running the service,
which allows a developer to easily override the config file.
*/
//go:embed cfg/*
var embedded embed.FS

/*
rootCmd represents the base command when called without any subcommands
*/
var (
	projectName  = "yamap-mcp"
	cfgFile      string
	logLevelFlag string

	rootCmd = &cobra.Command{
		Use:   "yamap-mcp",
		Short: "MCP server that reads YAMAP mountain plans with a headless browser",
		Long:  longRoot,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var cfg logging.Config

			if err := viper.UnmarshalKey("log", &cfg); err != nil {
				return fmt.Errorf("failed to read log config: %w", err)
			}

			if logLevelFlag != "" {
				cfg.Level = logLevelFlag
			}

			return logging.Init(cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Close()
		},
	}
)

/*
Execute is the main entry point for the CLI. It initializes the root command
and executes it.
*/
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yml",
		"config file (default is $HOME/."+projectName+"/config.yml)",
	)

	rootCmd.PersistentFlags().StringVar(
		&logLevelFlag,
		"log-level",
		"",
		"override log.level (debug, info, warn, error)",
	)
}

/*
initConfig reads the file given with --config when it exists. Otherwise it
writes the default config file to the user's home directory if it doesn't
exist, and then reads the config file from there.
*/
func initConfig() {
	var err error

	if CheckFileExists(cfgFile) && cfgFile != "config.yml" {
		viper.SetConfigFile(cfgFile)
	} else {
		if err = writeConfig(); err != nil {
			log.Fatal(err)
		}

		viper.SetConfigName("config")
		viper.SetConfigType("yml")
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(home + "/." + projectName)
	}

	if err = viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

/*
writeConfig writes the default config file to the user's home directory.
*/
func writeConfig() (err error) {
	var (
		home, _ = os.UserHomeDir()
		fh      fs.File
		buf     bytes.Buffer
	)

	configDir := home + "/." + projectName
	if !CheckFileExists(configDir) {
		if err = os.MkdirAll(configDir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	for _, file := range []string{cfgFile} {
		fullPath := configDir + "/" + file

		if CheckFileExists(fullPath) {
			continue
		}

		if fh, err = embedded.Open("cfg/" + file); err != nil {
			return fmt.Errorf("failed to open embedded config file: %w", err)
		}

		if _, err = io.Copy(&buf, fh); err != nil {
			fh.Close()
			return fmt.Errorf("failed to read embedded config file: %w", err)
		}

		if err = os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			fh.Close()
			return fmt.Errorf("failed to write config file: %w", err)
		}

		log.Info("wrote config file", "path", fullPath)
		buf.Reset()
		fh.Close()
	}

	return nil
}

func CheckFileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !errors.Is(err, os.ErrNotExist)
}

/*
longRoot contains the detailed help text for the root command.
*/
var longRoot = `
yamap-mcp exposes tools over the Model Context Protocol that open YAMAP plan
pages in a headless browser and turn them into plain text an agent can read.
`
