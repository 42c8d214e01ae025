// Package cli parses command-line arguments for the pebble tool.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the parsed command-line configuration.
type Config struct {
	// DataPath is a YAML/JSON document providing the root variables.
	DataPath string
	// InlineData is the document given directly on the command line.
	InlineData string
	Strict     bool
	LogLevel   string
	LogFormat  string
	// Paths are the attribute paths to resolve. Empty means interactive.
	Paths []string
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("pebble", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pebble - resolve attribute paths against a data document.

Usage:
  pebble [options] [PATH ...]

Arguments:
  PATH
    An attribute path such as 'server.ports[0].name'. With no paths,
    pebble starts an interactive prompt.

Options:
`)
		flagSet.PrintDefaults()
	}

	dataFlag := flagSet.String("data", "", "Path to a YAML or JSON data document.")
	inlineFlag := flagSet.String("inline", "", "Data document given inline instead of a file.")
	strictFlag := flagSet.Bool("strict", false, "Fail on missing attributes instead of yielding null.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *dataFlag != "" && *inlineFlag != "" {
		return nil, false, &ExitError{Code: 2, Message: "use either -data or -inline, not both"}
	}

	return &Config{
		DataPath:   *dataFlag,
		InlineData: *inlineFlag,
		Strict:     *strictFlag,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		Paths:      flagSet.Args(),
	}, false, nil
}
