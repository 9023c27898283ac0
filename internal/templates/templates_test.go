package templates

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifacts(t *testing.T) {
	all := Artifacts()
	assert.Len(t, all, 22)
	assert.Contains(t, all, PagePlain)
	assert.Contains(t, all, ReadmeComponentNativeWorker)
}

func TestRender_AllArtifacts(t *testing.T) {
	for _, a := range Artifacts() {
		t.Run(string(a), func(t *testing.T) {
			out := Render(a, "demo")
			assert.NotEmpty(t, out)
			assert.NotContains(t, out, "{{")
			assert.NotContains(t, out, "<no value>")
		})
	}
}

func TestRender_UnknownArtifactPanics(t *testing.T) {
	assert.Panics(t, func() { Render(Artifact("nope.txt"), "demo") })
}

func TestRender_Content(t *testing.T) {
	tests := []struct {
		artifact Artifact
		contains []string
		excludes []string
	}{
		{
			artifact: PagePlain,
			contains: []string{"<title>demo</title>", `href="demo_styles.css"`, `src="demo.js"`},
			excludes: []string{"react"},
		},
		{
			artifact: PageComponent,
			contains: []string{"react@18", "react-dom@18", `src="demo.js"`},
		},
		{
			artifact: ScriptAlert,
			contains: []string{`alert("Hello demo from JS!");`},
		},
		{
			artifact: ScriptNative,
			contains: []string{`from "./demo_wasm.js"`, "await init();"},
		},
		{
			artifact: ScriptWorkerMain,
			contains: []string{`new Worker("demo_worker.js")`, "postMessage"},
			excludes: []string{"import "},
		},
		{
			artifact: WorkerScript,
			contains: []string{`importScripts("demo_wasm.js")`, `wasm_bindgen("demo_wasm_bg.wasm")`},
			excludes: []string{"import "},
		},
		{
			artifact: ComponentNative,
			contains: []string{`from "./demo_wasm.js"`, "ReactDOM.render"},
		},
		{
			artifact: ComponentWorker,
			contains: []string{`new Worker("demo_worker.js")`, "ReactDOM.render"},
		},
		{
			artifact: ScriptsPlain,
			contains: []string{`"build": "babel demo.jsx -d pkg"`},
			excludes: []string{"wasm-pack"},
		},
		{
			artifact: ScriptsNative,
			contains: []string{"--target web"},
		},
		{
			artifact: ScriptsNativeWorker,
			contains: []string{"--target no-modules"},
		},
		{
			artifact: NativeManifest,
			contains: []string{`wasm-bindgen = "0.2"`, "[lib]", `crate-type = ["cdylib"]`},
		},
		{
			artifact: NativeSource,
			contains: []string{"#[wasm_bindgen]", "pub fn hello_wasm"},
		},
		{
			artifact: ReadmeComponentNativeWorker,
			contains: []string{"npm run wasm", "babel demo.jsx -d pkg", "--target no-modules"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.artifact), func(t *testing.T) {
			out := Render(tt.artifact, "demo")
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRender_NameIsVerbatim(t *testing.T) {
	out := Render(PagePlain, `a<b>&"c"`)
	assert.Contains(t, out, `<title>a<b>&"c"</title>`)
}

func TestRender_Purity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	artifacts := Artifacts()

	properties.Property("same input renders identical bytes", prop.ForAll(
		func(idx int, name string) bool {
			a := artifacts[idx]
			return Render(a, name) == Render(a, name)
		},
		gen.IntRange(0, len(artifacts)-1),
		gen.AnyString(),
	))

	properties.Property("name-bearing templates embed the name", prop.ForAll(
		func(name string) bool {
			return strings.Contains(Render(ScriptAlert, name), name) &&
				strings.Contains(Render(WorkerScript, name), name+"_wasm_bg.wasm")
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

func TestBabelDependencies(t *testing.T) {
	require.Len(t, BabelDependencies, 5)
	assert.Equal(t, "@babel/cli", BabelDependencies[0])
	assert.Equal(t, "@babel/preset-react", BabelDependencies[4])
}
