package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Config selects the level, destination and caller reporting of the default logger.
type Config struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Caller bool   `mapstructure:"caller"`
}

var logFile *os.File

/*
Init configures the default charmbracelet logger. Output goes to stderr
unless a file is given, in which case it is appended to. stdout is left
alone so the stdio transport can own it.
*/
func Init(cfg Config) error {
	var out io.Writer = os.Stderr

	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	if cfg.File != "" {
		fh, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}

		Close()
		logFile = fh
		out = fh
	}

	log.SetOutput(out)
	log.SetLevel(level)
	log.SetReportCaller(cfg.Caller)
	log.SetReportTimestamp(true)

	log.Debug("logging initialized", "level", level, "file", cfg.File)
	return nil
}

// Close closes the log file opened by Init, if any.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
