package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/engine"
	"github.com/t14raptor/jsparse/internal/config"
	"github.com/t14raptor/jsparse/internal/source"
	"github.com/t14raptor/jsparse/outline"
	"github.com/t14raptor/jsparse/parser"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	strict    bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jsparse",
	Short: "Parse and outline JavaScript sources",
	Long: `jsparse checks JavaScript files for syntax errors, extracts outlines of
their functions and library declarations, and serves both to editors.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml or .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text or json)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject legacy syntax")
}

// setup loads the configuration and applies the global flags over it.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if cmd.Flags().Changed("strict") {
		cfg.Parser.Strict = strict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func parseFile(path string) (*ast.Program, error) {
	src, err := source.Read(path)
	if err != nil {
		return nil, err
	}
	return parser.ParseFile(src, parser.WithFilename(path), parser.WithStrict(cfg.Parser.Strict))
}

func extract(path string) (*outline.Info, error) {
	prog, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	return outline.Extract(prog, cfg.Patterns), nil
}

func newPool() *engine.Pool {
	resolver := engine.NewResolver()
	resolver.Register(engine.NewJavaScript(cfg.Patterns, cfg.Parser.Strict), engine.DefaultFileType)
	return engine.NewPool(resolver,
		engine.WithWorkers(cfg.Engine.Workers),
		engine.WithQueue(cfg.Engine.Queue),
		engine.WithLogger(logger))
}

// outlineOf unwraps the outline of an outline task response.
func outlineOf(resp engine.Response) (*outline.Info, error) {
	if resp.IsError {
		return nil, fmt.Errorf("line %d: %s", resp.Line, resp.Message)
	}
	res, ok := resp.Value.(engine.Result)
	if !ok {
		return nil, fmt.Errorf("unexpected response value %T", resp.Value)
	}
	for _, msg := range res.Messages {
		if msg.Type == engine.TypeError {
			return nil, fmt.Errorf("line %d: %s", msg.Line, msg.Message)
		}
	}
	return res.Outline, nil
}
