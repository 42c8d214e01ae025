package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"gopkg.in/yaml.v3"

	"github.com/jaspeen/pebble/eval"
	"github.com/jaspeen/pebble/hclpath"
	"github.com/jaspeen/pebble/internal/cli"
	"github.com/jaspeen/pebble/internal/ctxlog"
	"github.com/jaspeen/pebble/loader"
)

const historyFile = ".pebble_history"

// main is the entrypoint for the pebble path-resolution tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	vars, err := loadData(ctx, cfg)
	if err != nil {
		return err
	}

	evalCtx := eval.NewContext(vars,
		eval.WithStrictVariables(cfg.Strict),
		eval.WithLogger(logger),
	)

	if len(cfg.Paths) == 0 {
		return repl(outW, cfg, evalCtx)
	}

	for _, path := range cfg.Paths {
		if err := resolvePath(outW, cfg, evalCtx, path); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(cfg *cli.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// loadData reads the root variables from the configured document, via the
// loader abstraction: a FileLoader for -data, a StringLoader for -inline.
func loadData(ctx context.Context, cfg *cli.Config) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)

	var (
		src  loader.Loader
		name string
	)
	switch {
	case cfg.InlineData != "":
		src, name = loader.StringLoader{}, cfg.InlineData
	case cfg.DataPath != "":
		src, name = loader.FileLoader{Root: filepath.Dir(cfg.DataPath)}, filepath.Base(cfg.DataPath)
	default:
		logger.Debug("No data document configured, starting with empty variables.")
		return map[string]any{}, nil
	}

	r, err := src.Reader(name)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	var vars map[string]any
	if err := yaml.NewDecoder(r).Decode(&vars); err != nil {
		if err == io.EOF {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("decoding data document: %w", err)
	}
	logger.Debug("Data document loaded.", "variables", len(vars))
	return vars, nil
}

func resolvePath(outW io.Writer, cfg *cli.Config, evalCtx *eval.Context, path string) error {
	node, err := hclpath.Parse(path, cfg.DataPath)
	if err != nil {
		return err
	}
	v, err := node.Evaluate(evalCtx)
	if err != nil {
		return err
	}
	printValue(outW, path, v)
	return nil
}

func printValue(outW io.Writer, path string, v any) {
	switch v.(type) {
	case map[string]any, []any:
		// Structured values render as a YAML document for readability.
		out, err := yaml.Marshal(v)
		if err != nil {
			fmt.Fprintf(outW, "%s = %v\n", path, v)
			return
		}
		fmt.Fprintf(outW, "%s =\n%s", path, out)
	default:
		fmt.Fprintf(outW, "%s = %v\n", path, v)
	}
}

// repl runs the interactive prompt: one attribute path per line, resolved
// against the loaded document. Errors are printed, not fatal.
func repl(outW io.Writer, cfg *cli.Config, evalCtx *eval.Context) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("pebble> ")
		if err != nil {
			// Ctrl-C, Ctrl-D or a closed terminal all end the session.
			fmt.Fprintln(outW)
			return nil
		}
		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}
		if path == ":quit" || path == ":q" {
			return nil
		}
		if err := resolvePath(outW, cfg, evalCtx, path); err != nil {
			fmt.Fprintln(outW, err)
			continue
		}
		ln.AppendHistory(path)
	}
}
