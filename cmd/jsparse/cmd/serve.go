package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/t14raptor/jsparse/internal/server"
	"github.com/t14raptor/jsparse/internal/watch"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve parse requests over a websocket",
	Long: `Starts the websocket endpoint /parse. Each message is a JSON request
{"id", "task", "source", "args"} with task parse, outline or findFunction.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var watchCmd = &cobra.Command{
	Use:   "watch <path>...",
	Short: "Print outlines of files as they change",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext()
	defer stop()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	pool := newPool()
	defer pool.Close()
	return server.New(pool, logger).ListenAndServe(ctx, addr)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	pool := newPool()
	defer pool.Close()

	out := cmd.OutOrStdout()
	w, err := watch.New(pool, func(res watch.Result) {
		if res.Err != nil {
			fmt.Fprintln(out, errorStyle.Render(res.Err.Error()))
			return
		}
		info, err := outlineOf(res.Response)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("%s: %v", res.Path, err)))
			return
		}
		fmt.Fprintln(out, titleStyle.Render(res.Path))
		printOutline(out, info, cfg.Patterns)
	}, watch.Options{
		Debounce:   cfg.Watch.Debounce.Duration,
		Extensions: cfg.Watch.Extensions,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	for _, path := range args {
		if err := w.Add(path); err != nil {
			return err
		}
	}
	return w.Run(ctx)
}
