package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	oerrors "github.com/Diomede5/init-web-app/internal/errors"
	"github.com/Diomede5/init-web-app/internal/toolchain"
)

const npmInstallManifest = `{
  "dependencies": {
    "@babel/cli": "^7.24.1",
    "@babel/core": "^7.24.3",
    "@babel/node": "^7.23.9",
    "@babel/preset-env": "^7.24.3",
    "@babel/preset-react": "^7.24.1"
  }
}
`

const cargoInitManifest = `[package]
name = "%s"
version = "0.1.0"
edition = "2021"

[dependencies]
`

// fakeRunner simulates npm, cargo and wasm-pack by writing the files they
// would produce.
type fakeRunner struct {
	mu    sync.Mutex
	calls []toolchain.Invocation

	// exitCodes makes a tool exit non-zero without side effects.
	exitCodes map[toolchain.Tool]int
	// unlaunchable tools fail to start.
	unlaunchable map[toolchain.Tool]bool
	// packageJSON overrides what npm install writes; "-" writes nothing.
	packageJSON string
}

func (f *fakeRunner) Run(_ context.Context, inv toolchain.Invocation) (*toolchain.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, inv)
	f.mu.Unlock()

	if f.unlaunchable[inv.Tool] {
		return nil, fmt.Errorf("starting %s: %w: executable file not found in $PATH", inv.Tool, oerrors.ErrToolLaunch)
	}
	if code := f.exitCodes[inv.Tool]; code != 0 {
		return &toolchain.Result{ExitCode: code, Stderr: "simulated failure\n"}, nil
	}

	var err error
	switch inv.Tool {
	case toolchain.Npm:
		err = f.npm(inv)
	case toolchain.Cargo:
		err = f.cargo(inv)
	case toolchain.WasmPack:
		err = f.wasmPack(inv)
	}
	if err != nil {
		return nil, err
	}
	return &toolchain.Result{}, nil
}

func (f *fakeRunner) npm(inv toolchain.Invocation) error {
	name := filepath.Base(inv.Dir)
	switch inv.Args[0] {
	case "install":
		switch f.packageJSON {
		case "-":
			return nil
		case "":
			return os.WriteFile(filepath.Join(inv.Dir, "package.json"), []byte(npmInstallManifest), 0o644)
		default:
			return os.WriteFile(filepath.Join(inv.Dir, "package.json"), []byte(f.packageJSON), 0o644)
		}
	case "run":
		src, err := os.ReadFile(filepath.Join(inv.Dir, name+".jsx"))
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(inv.Dir, "pkg", name+".js"), src, 0o644)
	}
	return nil
}

// cargo handles `cargo init <root> --name <crate> --lib`.
func (f *fakeRunner) cargo(inv toolchain.Invocation) error {
	root := filepath.Join(inv.Dir, inv.Args[1])
	crate := inv.Args[3]
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(fmt.Sprintf(cargoInitManifest, crate)), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, "src", "lib.rs"), []byte("pub fn add(left: u64, right: u64) -> u64 {\n    left + right\n}\n"), 0o644)
}

func (f *fakeRunner) wasmPack(inv toolchain.Invocation) error {
	crate := filepath.Base(inv.Dir) + "_wasm"
	pkg := filepath.Join(inv.Dir, "pkg")
	if err := os.WriteFile(filepath.Join(pkg, crate+".js"), []byte("// glue\n"), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(pkg, crate+"_bg.wasm"), []byte{0x00, 0x61, 0x73, 0x6d}, 0o644)
}

func (f *fakeRunner) invocations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.String()
	}
	return out
}

func (f *fakeRunner) call(tool toolchain.Tool) (toolchain.Invocation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.Tool == tool {
			return c, true
		}
	}
	return toolchain.Invocation{}, false
}
