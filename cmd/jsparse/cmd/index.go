package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/t14raptor/jsparse/engine"
	"github.com/t14raptor/jsparse/internal/source"
	"github.com/t14raptor/jsparse/internal/store"
)

var indexDB string

var indexCmd = &cobra.Command{
	Use:   "index <dir>...",
	Short: "Index the symbols of every script under a directory",
	Long: `Walks the directories, outlines every file with a watched extension and
stores the named symbols in the SQLite index. Files with syntax errors are
reported and skipped.

Examples:
  jsparse index ./frontend
  jsparse index --db /tmp/symbols.db ./lib ./plugins`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Find a symbol in the index",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)

	indexCmd.Flags().StringVar(&indexDB, "db", "", "index database (default from config)")
	lookupCmd.Flags().StringVar(&indexDB, "db", "", "index database (default from config)")
}

func openStore() (*store.Store, error) {
	path := cfg.Store.Path
	if indexDB != "" {
		path = indexDB
	}
	return store.Open(path)
}

func runIndex(cmd *cobra.Command, args []string) error {
	var files []string
	for _, dir := range args {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && slices.Contains(cfg.Watch.Extensions, strings.ToLower(filepath.Ext(path))) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", dir, err)
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	pool := newPool()
	defer pool.Close()

	var (
		mu      sync.Mutex
		skipped int
	)
	out := cmd.OutOrStdout()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Engine.Workers + cfg.Engine.Queue)
	for _, path := range files {
		path := path
		g.Go(func() error {
			src, err := source.Read(path)
			if err != nil {
				return err
			}
			resp, err := pool.Submit(ctx, engine.Request{Source: src, Task: engine.TaskOutline})
			if err != nil {
				return err
			}
			info, err := outlineOf(resp)
			if err != nil {
				logger.Warn("Skipping file", "file", path, "error", err)
				mu.Lock()
				fmt.Fprintf(out, "%s: %v\n", path, err)
				skipped++
				mu.Unlock()
				return nil
			}
			return st.Replace(ctx, path, info.Outline)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to index: %w", err)
	}

	indexed := len(files) - skipped
	logger.Info("Index updated", "files", indexed, "skipped", skipped)
	fmt.Fprintf(out, "indexed %d files, skipped %d\n", indexed, skipped)
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.Find(context.Background(), args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%s is not in the index", args[0])
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s %s\n", e.File, e.Line, e.Type, e.Name)
	}
	return nil
}
