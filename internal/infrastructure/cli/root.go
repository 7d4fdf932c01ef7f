// Package cli wires the cobra command surface: a root command that runs
// either the GUI backend (default) or the interactive console.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"jarvis/internal/app"
	"jarvis/internal/infrastructure/gui"
)

const shutdownGrace = 10 * time.Second

// NewRootCmd builds the dependency graph and the root command. Flags:
// --gui (default) serves the local backend, --console runs the
// interactive read-eval loop.
func NewRootCmd(ctx context.Context) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx)
	if err != nil {
		return nil, err
	}

	var (
		guiMode     bool
		consoleMode bool
	)

	root := &cobra.Command{
		Use:   "jarvis",
		Short: "JARVIS - personal desktop assistant",
		Long:  "JARVIS answers natural-language commands, executes system actions and learns from usage.",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.Start()
			defer container.Stop()

			if consoleMode {
				return runConsole(cmd.Context(), container, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return runGUI(cmd.Context(), container)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVar(&guiMode, "gui", true, "Serve the local GUI backend")
	root.Flags().BoolVar(&consoleMode, "console", false, "Run the interactive console instead of the GUI backend")
	return root, nil
}

// runGUI serves the backend until a termination signal arrives, then
// drains with a bounded grace period.
func runGUI(ctx context.Context, container *app.Container) error {
	server := gui.NewServer(container)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Run() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
