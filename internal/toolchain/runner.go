// Package toolchain runs the external npm, cargo and wasm-pack tools.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	oerrors "github.com/Diomede5/init-web-app/internal/errors"
)

const waitDelay = 2 * time.Second

// Tool is the logical name of an external toolchain.
type Tool string

const (
	Npm      Tool = "npm"
	Cargo    Tool = "cargo"
	WasmPack Tool = "wasm-pack"
)

// Tools lists the known tools in invocation order.
func Tools() []Tool {
	return []Tool{Npm, Cargo, WasmPack}
}

// Invocation is one tool run.
type Invocation struct {
	Tool Tool     `json:"tool"`
	Args []string `json:"args"`
	Dir  string   `json:"dir,omitempty"`
}

// String renders the invocation as a command line.
func (i Invocation) String() string {
	return strings.TrimSpace(string(i.Tool) + " " + strings.Join(i.Args, " "))
}

// Result holds a finished run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs an invocation to completion. A tool that cannot be started
// is an error wrapping ErrToolLaunch; a non-zero exit is reported through
// Result.ExitCode with a nil error.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (*Result, error)
}

// ExecRunner runs tools as subprocesses.
type ExecRunner struct {
	// Executables maps a tool to the executable to start. Unmapped tools
	// are looked up on PATH by name.
	Executables map[Tool]string

	// Timeout bounds each run. Zero means no bound.
	Timeout time.Duration

	// Stdout and Stderr, when set, receive the tool output as it runs.
	Stdout io.Writer
	Stderr io.Writer
}

// Executable returns the executable used for tool.
func (r *ExecRunner) Executable(tool Tool) string {
	if exe, ok := r.Executables[tool]; ok && exe != "" {
		return exe
	}
	return string(tool)
}

// Run starts the tool and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	runCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, r.Executable(inv.Tool), inv.Args...)
	cmd.Dir = inv.Dir
	// Children of a killed tool may keep the output pipes open.
	cmd.WaitDelay = waitDelay

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(r.Stdout, &stdoutBuf)
	cmd.Stderr = tee(r.Stderr, &stderrBuf)

	err := cmd.Run()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	switch {
	case ctx.Err() != nil:
		return result, fmt.Errorf("%s: %w", inv.Tool, oerrors.ErrCancelled)
	case runCtx.Err() != nil:
		result.ExitCode = -1
		return result, fmt.Errorf("%s timed out after %s: %w", inv.Tool, r.Timeout, oerrors.ErrToolExit)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("starting %s: %w: %w", inv.Tool, oerrors.ErrToolLaunch, err)
	}

	return result, nil
}

func tee(w io.Writer, buf *bytes.Buffer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}
