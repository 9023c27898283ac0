// Package templates renders the text of every generated artifact.
//
// Templates are embedded text/template files parsed once at init. Rendering
// takes only the project name, has no side effects, and returns the same
// bytes for the same input.
package templates

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

//go:embed files/*.tmpl
var filesFS embed.FS

// Artifact names a renderable template.
type Artifact string

const (
	PagePlain     Artifact = "page_plain.html"
	PageComponent Artifact = "page_component.html"

	Stylesheet Artifact = "styles.css"

	ScriptAlert      Artifact = "script_alert.js"
	ScriptNative     Artifact = "script_native.js"
	ScriptWorkerMain Artifact = "script_worker_main.js"

	WorkerScript Artifact = "worker.js"

	ComponentPlain  Artifact = "component_plain.jsx"
	ComponentNative Artifact = "component_native.jsx"
	ComponentWorker Artifact = "component_worker.jsx"

	// Build-script fragments injected into package.json.
	ScriptsPlain        Artifact = "scripts_plain.json"
	ScriptsNative       Artifact = "scripts_native.json"
	ScriptsNativeWorker Artifact = "scripts_native_worker.json"

	BabelConfig Artifact = "babel.config.json"

	// NativeManifest is appended to the Cargo.toml written by cargo init.
	NativeManifest Artifact = "cargo_append.toml"
	NativeSource   Artifact = "lib.rs"

	ReadmePlain                 Artifact = "readme_plain.txt"
	ReadmePlainNative           Artifact = "readme_plain_native.txt"
	ReadmePlainNativeWorker     Artifact = "readme_plain_native_worker.txt"
	ReadmeComponent             Artifact = "readme_component.txt"
	ReadmeComponentNative       Artifact = "readme_component_native.txt"
	ReadmeComponentNativeWorker Artifact = "readme_component_native_worker.txt"
)

// BabelDependencies is the fixed list installed for component archetypes.
var BabelDependencies = []string{
	"@babel/cli",
	"@babel/core",
	"@babel/node",
	"@babel/preset-env",
	"@babel/preset-react",
}

// Data is the input to every template.
type Data struct {
	ProjectName string
}

var parsed = template.Must(
	template.New("").Option("missingkey=error").ParseFS(filesFS, "files/*.tmpl"),
)

// Artifacts returns every known artifact, sorted.
func Artifacts() []Artifact {
	var out []Artifact
	for _, t := range parsed.Templates() {
		name := strings.TrimSuffix(t.Name(), ".tmpl")
		if name == "" {
			continue
		}
		out = append(out, Artifact(name))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Render returns the text of artifact a for the given project name.
//
// Every template only references Data.ProjectName, so execution cannot fail
// for a known artifact. An unknown artifact is a programming error and panics.
func Render(a Artifact, projectName string) string {
	t := parsed.Lookup(string(a) + ".tmpl")
	if t == nil {
		panic(fmt.Sprintf("templates: unknown artifact %q", a))
	}

	var sb strings.Builder
	if err := t.Execute(&sb, Data{ProjectName: projectName}); err != nil {
		panic(fmt.Sprintf("templates: executing %s: %v", a, err))
	}
	return sb.String()
}
