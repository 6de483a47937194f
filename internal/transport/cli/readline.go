package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/internal/service/ui"
	"github.com/sandevgo/roster/pkg/conv"
	"github.com/sandevgo/roster/pkg/log"
)

var ErrTooManyReadFailures = errors.New("too many consecutive read failures")

type lineReader interface {
	Readline() (string, error)
	Close() error
}

type ReadLine struct {
	router      core.CmdRouter
	rl          lineReader
	out         io.Writer
	maxFailures int
}

func NewReadLine(router core.CmdRouter, cfg core.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.GetPrompt(),
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return newReadLine(router, rl, rl.Stdout(), cfg.GetMaxReadFailures()), nil
}

func newReadLine(router core.CmdRouter, rl lineReader, out io.Writer, maxFailures int) *ReadLine {
	return &ReadLine{
		router:      router,
		rl:          rl,
		out:         out,
		maxFailures: maxFailures,
	}
}

// Start reads lines until end of input, "exit", Ctrl+C on an empty line,
// context cancellation or too many consecutive read failures.
func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("roster console started. Type 'exit' to quit.")

	failures := 0
	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}

			failures++
			logger.Error().Err(err).Int("failures", failures).Msg("failed to read line")
			fmt.Fprintln(r.out, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
			if failures >= r.maxFailures {
				return fmt.Errorf("%w: %w", ErrTooManyReadFailures, err)
			}
			continue
		}
		failures = 0

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		reply := r.router.Execute(ctx, line)
		text := conv.MarkdownToText([]byte(reply.Markdown))
		if reply.Failed {
			text = ui.ErrorStyle.Render(text)
		}
		fmt.Fprintln(r.out, text)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
