package toolchain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Status is the outcome of a tool check.
type Status string

const (
	StatusOK       Status = "ok"
	StatusOutdated Status = "outdated"
	StatusMissing  Status = "missing"
	StatusUnknown  Status = "unknown"
)

// Minimum versions the generated projects are known to build with.
var minimums = map[Tool]string{
	Npm:      "7.0.0",
	Cargo:    "1.56.0",
	WasmPack: "0.10.0",
}

// Minimum returns the minimum supported version of tool.
func Minimum(tool Tool) string {
	return minimums[tool]
}

var versionRe = regexp.MustCompile(`\d+\.\d+(\.\d+)?([-+][0-9A-Za-z.-]+)?`)

// Check is the doctor report for one tool.
type Check struct {
	Tool    Tool
	Version string
	Minimum string
	Status  Status
	Detail  string
}

// Doctor runs `<tool> --version` for every tool and compares the result to
// the minimum supported version.
func Doctor(ctx context.Context, runner Runner) []Check {
	checks := make([]Check, 0, len(minimums))
	for _, tool := range Tools() {
		checks = append(checks, checkTool(ctx, runner, tool))
	}
	return checks
}

func checkTool(ctx context.Context, runner Runner, tool Tool) Check {
	check := Check{
		Tool:    tool,
		Minimum: Minimum(tool),
	}

	res, err := runner.Run(ctx, Invocation{Tool: tool, Args: []string{"--version"}})
	if err != nil {
		check.Status = StatusMissing
		check.Detail = err.Error()
		return check
	}
	if res.ExitCode != 0 {
		check.Status = StatusUnknown
		check.Detail = fmt.Sprintf("--version exited %d", res.ExitCode)
		return check
	}

	version, err := ParseVersion(res.Stdout)
	if err != nil {
		check.Status = StatusUnknown
		check.Detail = err.Error()
		return check
	}
	check.Version = version.String()

	ok, err := AtLeast(version, check.Minimum)
	if err != nil {
		check.Status = StatusUnknown
		check.Detail = err.Error()
		return check
	}

	if ok {
		check.Status = StatusOK
	} else {
		check.Status = StatusOutdated
		check.Detail = fmt.Sprintf("requires >= %s", check.Minimum)
	}
	return check
}

// ParseVersion extracts the first version number from tool output such as
// "cargo 1.75.0 (1d8b05cdd 2023-11-20)" or "wasm-pack 0.12.1".
func ParseVersion(output string) (*semver.Version, error) {
	match := versionRe.FindString(strings.TrimSpace(output))
	if match == "" {
		return nil, errors.New("no version in output")
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", match, err)
	}
	return v, nil
}

// AtLeast reports whether v satisfies the minimum version.
func AtLeast(v *semver.Version, minimum string) (bool, error) {
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum %q: %w", minimum, err)
	}
	return c.Check(v), nil
}
