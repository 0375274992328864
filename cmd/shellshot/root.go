package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lhenry-dev/shellshot-go/internal/builder"
	"github.com/lhenry-dev/shellshot-go/internal/dimension"
	"github.com/lhenry-dev/shellshot-go/internal/ptyio"
	"github.com/lhenry-dev/shellshot-go/internal/render"
	"github.com/lhenry-dev/shellshot-go/internal/shellshoterr"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func newRootCommand() *cobra.Command {
	cfg := config{Width: dimension.Auto, Height: dimension.Auto}
	var decorationFlag string
	var noDecoration bool
	var timeoutSeconds int

	cmd := &cobra.Command{
		Use:           "shellshot -- <command> [args...]",
		Short:         "Run a command under a pty and render its terminal output to an image",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Command = args
			cfg.Decoration = decorationKind(decorationFlag)
			if noDecoration {
				cfg.Decoration = decorationNone
			}
			if timeoutSeconds > 0 {
				cfg.Timeout = time.Duration(timeoutSeconds) * time.Second
			}
			return runShellshot(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress logging")
	flags.StringVar(&decorationFlag, "decoration", string(decorationClassic), "window decoration: classic or none")
	flags.BoolVar(&noDecoration, "no-decoration", false, "render without window decoration (same as --decoration none)")
	flags.StringVar(&cfg.Output, "output", "", "output image path (.png or raw RGBA)")
	flags.BoolVar(&cfg.Clipboard, "clipboard", false, "copy the rendered image to the clipboard instead of saving")
	flags.Var(&cfg.Width, "width", "terminal width in columns (or \"auto\")")
	flags.Var(&cfg.Height, "height", "terminal height in rows (or \"auto\")")
	flags.IntVar(&timeoutSeconds, "timeout", 0, "kill the command after this many seconds (0 = no timeout)")

	return cmd
}

// runShellshot is the orchestration spine: validate input, drive the
// command under a pty, build the final screen, rasterize it, and hand
// the image off to whichever sink the user picked. A timed-out command
// still yields a screen (whatever was captured before the kill), so a
// timeout renders a partial image rather than aborting.
func runShellshot(ctx context.Context, cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Quiet)
	runID := uuid.NewString()
	logger.Info("starting run", "run_id", runID, "command", cfg.Command)

	cols := cfg.Width.Resolve(250)
	rows := cfg.Height.Resolve(500)

	pair, err := ptyio.Open(cols, rows)
	if err != nil {
		return err
	}

	child, err := ptyio.Spawn(pair, cfg.Command)
	if err != nil {
		_ = pair.Close()
		return err
	}

	b := builder.Builder{Cols: cfg.Width, Rows: cfg.Height}

	var screen *termscreen.Screen
	var screenErr error
	runErr := ptyio.RunWithTimeout(ctx, child, cfg.Timeout, func(context.Context) error {
		screen, screenErr = b.Run(child.Reader, child.Writer)
		return screenErr
	})

	if _, waitErr := child.Wait(); waitErr != nil {
		logger.Warn("waiting for child failed", "error", waitErr)
	}
	if err := ptyio.Shutdown(pair, child); err != nil {
		logger.Warn("shutdown cleanup failed", "error", err)
	}

	timedOut := runErr != nil && shellshoterr.IsInformational(runErr)
	if runErr != nil && !timedOut {
		return runErr
	}
	if timedOut {
		logger.Info("command timed out, rendering partial output", "run_id", runID, "error", runErr)
	}
	if screen == nil {
		if screenErr != nil {
			return screenErr
		}
		return shellshoterr.New(shellshoterr.ErrTerminalBuilder, "no screen produced")
	}

	logger.Info("rendering image", "run_id", runID)
	return finishRender(cfg, screen, logger)
}

func finishRender(cfg config, screen *termscreen.Screen, logger *slog.Logger) error {
	decoration := render.Decoration(render.None{})
	if cfg.Decoration == decorationClassic {
		decoration = render.Classic{Command: cfg.Command}
	}

	img, err := render.Render(screen, render.Config{
		ShowCursor: true,
		Decoration: decoration,
	})
	if err != nil {
		return err
	}

	if cfg.Clipboard {
		if err := saveToClipboard(img); err != nil {
			return err
		}
		logger.Info("copied image to clipboard")
		return nil
	}

	if err := saveToFile(img, cfg.Output); err != nil {
		return err
	}
	logger.Info("wrote image", "path", cfg.Output)
	return nil
}

func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		logger = logger.With("tty", false)
	}
	return logger
}
