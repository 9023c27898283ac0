// Package generator builds and executes the step plan that turns an
// archetype into a project tree.
package generator

import (
	"path"
	"strings"

	"github.com/Diomede5/init-web-app/internal/archetype"
	"github.com/Diomede5/init-web-app/internal/templates"
	"github.com/Diomede5/init-web-app/internal/toolchain"
)

// Kind is the type of a generation step.
type Kind string

const (
	KindCreateDirectory Kind = "create-directory"
	KindWriteFile       Kind = "write-file"
	KindAppendFile      Kind = "append-file"
	KindInjectManifest  Kind = "inject-manifest"
	KindRunProcess      Kind = "run-process"
)

// Step is one action of a plan. Paths are slash-separated and relative to
// the base directory the project root is created in.
type Step struct {
	Kind     Kind                  `json:"kind"`
	Path     string                `json:"path,omitempty"`
	Artifact templates.Artifact    `json:"artifact,omitempty"`
	Run      *toolchain.Invocation `json:"run,omitempty"`

	// Content is the rendered artifact for file steps and the fragment
	// for manifest injection.
	Content string `json:"-"`
}

// String describes the step for logs and error messages.
func (s Step) String() string {
	switch s.Kind {
	case KindCreateDirectory:
		return "creating " + s.Path + "/"
	case KindWriteFile:
		return "writing " + s.Path
	case KindAppendFile:
		return "appending to " + s.Path
	case KindInjectManifest:
		return "injecting build scripts into " + s.Path
	case KindRunProcess:
		if s.Run != nil {
			return "running " + s.Run.String()
		}
	}
	return string(s.Kind)
}

// Plan returns the ordered steps that generate archetype a as project name.
// The plan is plain data; nothing touches the filesystem.
func Plan(a archetype.Archetype, name string) []Step {
	root := name
	pkg := path.Join(root, "pkg")

	p := &planner{name: name}

	p.mkdir(root)
	p.mkdir(pkg)

	p.write(path.Join(pkg, name+".html"), a.Page())
	p.write(path.Join(pkg, name+"_styles.css"), templates.Stylesheet)
	if script := a.Script(); script != "" {
		p.write(path.Join(pkg, name+".js"), script)
	}
	if source := a.ComponentSource(); source != "" {
		p.write(path.Join(root, name+".jsx"), source)
	}
	if a.UsesWorker() {
		p.write(path.Join(pkg, name+"_worker.js"), templates.WorkerScript)
	}

	if a.UsesComponents() {
		p.run(toolchain.Npm, root, append([]string{"install"}, templates.BabelDependencies...)...)
		p.write(path.Join(root, "babel.config.json"), templates.BabelConfig)
		p.inject(path.Join(root, "package.json"), a.BuildScripts())
		p.run(toolchain.Npm, root, "run", "build")
	}

	if a.UsesNative() {
		p.run(toolchain.Cargo, "", "init", root, "--name", name+"_wasm", "--lib")
		p.append(path.Join(root, "Cargo.toml"), templates.NativeManifest)
		p.write(path.Join(root, "src", "lib.rs"), templates.NativeSource)
		p.run(toolchain.WasmPack, root, "build", "--target", a.BundlerTarget(), "--no-typescript", "--no-pack")
	}

	p.write(path.Join(root, "readme.txt"), a.Readme())

	return p.steps
}

type planner struct {
	name  string
	steps []Step
}

func (p *planner) mkdir(dir string) {
	p.steps = append(p.steps, Step{Kind: KindCreateDirectory, Path: dir})
}

func (p *planner) write(file string, a templates.Artifact) {
	p.steps = append(p.steps, Step{
		Kind:     KindWriteFile,
		Path:     file,
		Artifact: a,
		Content:  templates.Render(a, p.name),
	})
}

func (p *planner) append(file string, a templates.Artifact) {
	p.steps = append(p.steps, Step{
		Kind:     KindAppendFile,
		Path:     file,
		Artifact: a,
		Content:  templates.Render(a, p.name),
	})
}

func (p *planner) inject(file string, a templates.Artifact) {
	p.steps = append(p.steps, Step{
		Kind:     KindInjectManifest,
		Path:     file,
		Artifact: a,
		Content:  templates.Render(a, p.name),
	})
}

func (p *planner) run(tool toolchain.Tool, dir string, args ...string) {
	p.steps = append(p.steps, Step{
		Kind: KindRunProcess,
		Run: &toolchain.Invocation{
			Tool: tool,
			Args: args,
			Dir:  dir,
		},
	})
}

// Files returns the files written directly by the plan, keyed by path
// relative to the project root, with a short description of each.
func Files(steps []Step, name string) map[string]string {
	files := make(map[string]string)
	for _, s := range steps {
		switch s.Kind {
		case KindWriteFile, KindAppendFile, KindInjectManifest:
			files[strings.TrimPrefix(s.Path, name+"/")] = describe(s.Artifact)
		}
	}
	return files
}

func describe(a templates.Artifact) string {
	switch a {
	case templates.PagePlain, templates.PageComponent:
		return "Page"
	case templates.Stylesheet:
		return "Stylesheet"
	case templates.ScriptAlert, templates.ScriptNative, templates.ScriptWorkerMain:
		return "Main script"
	case templates.WorkerScript:
		return "Worker script"
	case templates.ComponentPlain, templates.ComponentNative, templates.ComponentWorker:
		return "Component source"
	case templates.ScriptsPlain, templates.ScriptsNative, templates.ScriptsNativeWorker:
		return "Package manifest"
	case templates.BabelConfig:
		return "Transpiler config"
	case templates.NativeManifest:
		return "Native manifest"
	case templates.NativeSource:
		return "Native source"
	}
	if strings.HasPrefix(string(a), "readme") {
		return "Build instructions"
	}
	return string(a)
}
