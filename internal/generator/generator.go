package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Diomede5/init-web-app/internal/archetype"
	"github.com/Diomede5/init-web-app/internal/assets"
	oerrors "github.com/Diomede5/init-web-app/internal/errors"
	"github.com/Diomede5/init-web-app/internal/manifest"
	"github.com/Diomede5/init-web-app/internal/output"
	"github.com/Diomede5/init-web-app/internal/templates"
	"github.com/Diomede5/init-web-app/internal/toolchain"
)

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// BaseDir is the directory the project root is created in. Default ".".
	BaseDir string

	// Runner executes npm, cargo and wasm-pack.
	Runner toolchain.Runner

	// CheckExit aborts generation when a tool exits non-zero.
	CheckExit bool

	// Minify minifies html, css and js written under pkg/.
	Minify bool

	// Spinner shows a spinner while a tool runs.
	Spinner bool

	// ReportEdits logs a structural diff of the package.json edit at debug level.
	ReportEdits bool
}

// GenerateResult contains the result of generation.
type GenerateResult struct {
	// Root is the project root directory.
	Root string

	// Files maps paths relative to Root to a short description, for every
	// file written or edited by the plan.
	Files map[string]string

	// Steps is the number of steps executed.
	Steps int
}

// Generator executes archetype plans.
type Generator struct {
	opts     GenerateOptions
	minifier *assets.Minifier
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	g := &Generator{opts: opts}
	if opts.Minify {
		g.minifier = assets.NewMinifier()
	}
	return g
}

// Generate creates project name from archetype a. It stops at the first
// failing step and leaves whatever was written on disk.
func (g *Generator) Generate(ctx context.Context, name string, a archetype.Archetype) (*GenerateResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, oerrors.NewValidationError("project name is empty", "--name", "")
	}
	if !a.Valid() {
		return nil, oerrors.NewValidationError(fmt.Sprintf("unknown archetype: %d", int(a)), "--archetype", "choose 1-6")
	}
	if g.opts.Runner == nil {
		return nil, errors.New("generator: no tool runner configured")
	}

	root := filepath.Join(g.opts.BaseDir, name)

	// Not atomic with the create below. Accepted for a single-user tool.
	if _, err := os.Stat(root); err == nil {
		return nil, errPathExists(root)
	} else if !errors.Is(err, fs.ErrNotExist) {
		output.Debug("stat project root", "path", root, "err", err)
	}

	steps := Plan(a, name)
	logger := output.ProjectLogger(name)
	logger.Info("starting generation", "archetype", a.String(), "steps", len(steps))

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, stepErr(i, step, oerrors.ErrCancelled, err)
		}

		if step.Kind == KindRunProcess {
			logger.Info(step.String())
		} else {
			logger.Debug(step.String())
		}

		if err := g.execute(ctx, i, step); err != nil {
			return nil, err
		}
	}

	logger.Info("done")

	return &GenerateResult{
		Root:  root,
		Files: Files(steps, name),
		Steps: len(steps),
	}, nil
}

func (g *Generator) abs(rel string) string {
	return filepath.Join(g.opts.BaseDir, filepath.FromSlash(rel))
}

func (g *Generator) execute(ctx context.Context, i int, step Step) error {
	switch step.Kind {
	case KindCreateDirectory:
		if err := os.MkdirAll(g.abs(step.Path), 0o755); err != nil {
			return stepErr(i, step, oerrors.ErrDirectoryCreate, err)
		}
		return nil

	case KindWriteFile:
		data := g.maybeMinify(step)
		if err := os.WriteFile(g.abs(step.Path), data, 0o644); err != nil {
			return stepErr(i, step, oerrors.ErrFileWrite, err)
		}
		return nil

	case KindAppendFile:
		return g.appendFile(i, step)

	case KindInjectManifest:
		return g.injectManifest(i, step)

	case KindRunProcess:
		return g.runProcess(ctx, i, step)
	}

	return fmt.Errorf("unknown step kind %q", step.Kind)
}

func (g *Generator) maybeMinify(step Step) []byte {
	data := []byte(step.Content)
	if g.minifier == nil || !isServable(step.Path) || !g.minifier.Supports(step.Path) {
		return data
	}

	out, err := g.minifier.Minify(step.Path, data)
	if err != nil {
		output.Warn("minify failed, writing original", "path", step.Path, "err", err)
		return data
	}
	return out
}

// isServable reports whether a plan path lies in <root>/pkg/.
func isServable(p string) bool {
	parts := strings.Split(p, "/")
	return len(parts) == 3 && parts[1] == "pkg"
}

// appendFile appends to an existing file. The file is not created: it is
// expected from the tool run before.
func (g *Generator) appendFile(i int, step Step) error {
	path := g.abs(step.Path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return stepErr(i, step, oerrors.ErrFileWrite, err)
	}
	if _, err := f.WriteString(step.Content); err != nil {
		f.Close()
		return stepErr(i, step, oerrors.ErrFileWrite, err)
	}
	if err := f.Close(); err != nil {
		return stepErr(i, step, oerrors.ErrFileWrite, err)
	}

	if step.Artifact == templates.NativeManifest {
		data, err := os.ReadFile(path)
		if err != nil {
			return stepErr(i, step, oerrors.ErrManifestRead, err)
		}
		if err := manifest.ValidateCargo(data); err != nil {
			return stepErr(i, step, oerrors.ErrManifestInvalid, err)
		}
	}

	return nil
}

// injectManifest edits package.json in place. The edited text is checked
// before it is written, so an invalid result leaves the original file.
func (g *Generator) injectManifest(i int, step Step) error {
	path := g.abs(step.Path)

	before, err := os.ReadFile(path)
	if err != nil {
		return stepErr(i, step, oerrors.ErrManifestRead, err)
	}

	after := []byte(manifest.InjectAfterFirstLine(string(before), step.Content))

	if err := manifest.ValidatePackage(after); err != nil {
		return stepErr(i, step, oerrors.ErrManifestInvalid, err)
	}

	if g.opts.ReportEdits {
		report, err := manifest.Diff(before, after, output.IsTTY())
		if err != nil {
			output.Debug("could not diff manifest", "err", err)
		} else if report != "" {
			output.Debug("package.json edit\n" + report)
		}
	}

	if err := os.WriteFile(path, after, 0o644); err != nil {
		return stepErr(i, step, oerrors.ErrManifestWrite, err)
	}
	return nil
}

func (g *Generator) runProcess(ctx context.Context, i int, step Step) error {
	inv := *step.Run
	inv.Dir = g.abs(inv.Dir)

	var res *toolchain.Result
	run := func() error {
		var runErr error
		res, runErr = g.opts.Runner.Run(ctx, inv)
		return runErr
	}

	var err error
	if g.opts.Spinner {
		err = output.RunWithSpinner(ctx, run, output.WithTitle(step.String()))
	} else {
		err = run()
	}

	if err != nil {
		switch {
		case ctx.Err() != nil, errors.Is(err, oerrors.ErrCancelled):
			return stepErr(i, step, oerrors.ErrCancelled, err)
		case errors.Is(err, oerrors.ErrToolExit):
			return stepErr(i, step, oerrors.ErrToolExit, err)
		default:
			return stepErr(i, step, oerrors.ErrToolLaunch, err)
		}
	}

	if res.ExitCode == 0 {
		return nil
	}

	output.Debug("tool output", "tool", inv.Tool, "stderr", strings.TrimSpace(res.Stderr))

	if !g.opts.CheckExit {
		output.Warn("tool exited with non-zero status, continuing", "tool", inv.Tool, "code", res.ExitCode)
		return nil
	}

	se := stepErr(i, step, oerrors.ErrToolExit, fmt.Errorf("exit status %d", res.ExitCode))
	se.ExitCode = res.ExitCode
	return se
}
