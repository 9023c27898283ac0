package output

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// Swapped in tests.
var (
	isTTY      = IsTTY
	runSpinner = func(ctx context.Context, title string, wait func()) error {
		return spinner.New().
			Title(title).
			Context(ctx).
			Action(wait).
			Run()
	}
)

// RunWithSpinner executes an action with a spinner and returns the action's
// error. Without a terminal the action runs directly. It always waits for the
// action to return; when ctx is done and the action reported no error,
// ctx.Err() is returned.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !isTTY() {
		return action()
	}

	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		errCh <- action()
		close(done)
	}()

	spinnerErr := runSpinner(ctx, cfg.title, func() { <-done })
	err := <-errCh

	if ctxErr := ctx.Err(); ctxErr != nil {
		if err != nil {
			return err
		}
		return ctxErr
	}
	if spinnerErr != nil {
		Debug("spinner stopped early", "err", spinnerErr)
	}
	return err
}
