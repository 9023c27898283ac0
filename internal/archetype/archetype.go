// Package archetype defines the six project recipes.
package archetype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Diomede5/init-web-app/internal/templates"
)

// Archetype is one of six fixed project recipes.
type Archetype int

const (
	Plain Archetype = iota + 1
	PlainNative
	PlainNativeWorker
	Component
	ComponentNative
	ComponentNativeWorker
)

// Bundler targets passed to wasm-pack.
const (
	TargetWeb       = "web"
	TargetNoModules = "no-modules"
)

type info struct {
	name        string
	description string
	components  bool
	native      bool
	worker      bool
}

var table = map[Archetype]info{
	Plain:                 {"plain", "vanilla js", false, false, false},
	PlainNative:           {"plain-native", "vanilla js with wasm", false, true, false},
	PlainNativeWorker:     {"plain-native-worker", "vanilla js with wasm worker", false, true, true},
	Component:             {"component", "react", true, false, false},
	ComponentNative:       {"component-native", "react with wasm", true, true, false},
	ComponentNativeWorker: {"component-native-worker", "react with wasm worker", true, true, true},
}

// All returns the archetypes in menu order.
func All() []Archetype {
	return []Archetype{Plain, PlainNative, PlainNativeWorker, Component, ComponentNative, ComponentNativeWorker}
}

// Parse accepts a menu digit (1-6) or an archetype name.
func Parse(s string) (Archetype, error) {
	s = strings.TrimSpace(s)

	// Menu digits match exactly; "01" and "+1" are not choices.
	for _, a := range All() {
		if s == strconv.Itoa(a.Number()) || strings.EqualFold(table[a].name, s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown archetype %q", s)
}

// Valid reports whether a is one of the six archetypes.
func (a Archetype) Valid() bool {
	_, ok := table[a]
	return ok
}

// String returns the archetype name, e.g. "component-native".
func (a Archetype) String() string {
	if i, ok := table[a]; ok {
		return i.name
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// Description is the menu label.
func (a Archetype) Description() string {
	return table[a].description
}

// Number is the menu digit.
func (a Archetype) Number() int { return int(a) }

// UsesComponents reports whether the archetype is built on the component framework.
func (a Archetype) UsesComponents() bool { return table[a].components }

// UsesNative reports whether the archetype compiles a native module.
func (a Archetype) UsesNative() bool { return table[a].native }

// UsesWorker reports whether the archetype runs the native module in a worker.
func (a Archetype) UsesWorker() bool { return table[a].worker }

// BundlerTarget returns the wasm-pack target, or "" for non-native archetypes.
// Worker scripts bind the module through the global wasm_bindgen, which only
// the no-modules target provides.
func (a Archetype) BundlerTarget() string {
	switch {
	case !a.UsesNative():
		return ""
	case a.UsesWorker():
		return TargetNoModules
	default:
		return TargetWeb
	}
}

// Page returns the page template.
func (a Archetype) Page() templates.Artifact {
	if a.UsesComponents() {
		return templates.PageComponent
	}
	return templates.PagePlain
}

// Script returns the template written to pkg/<name>.js, or "" when the
// script is transpiled from component source instead.
func (a Archetype) Script() templates.Artifact {
	switch a {
	case Plain:
		return templates.ScriptAlert
	case PlainNative:
		return templates.ScriptNative
	case PlainNativeWorker:
		return templates.ScriptWorkerMain
	}
	return ""
}

// ComponentSource returns the .jsx template, or "" for plain archetypes.
func (a Archetype) ComponentSource() templates.Artifact {
	switch a {
	case Component:
		return templates.ComponentPlain
	case ComponentNative:
		return templates.ComponentNative
	case ComponentNativeWorker:
		return templates.ComponentWorker
	}
	return ""
}

// BuildScripts returns the package.json scripts fragment, or "" for plain archetypes.
func (a Archetype) BuildScripts() templates.Artifact {
	switch a {
	case Component:
		return templates.ScriptsPlain
	case ComponentNative:
		return templates.ScriptsNative
	case ComponentNativeWorker:
		return templates.ScriptsNativeWorker
	}
	return ""
}

// Readme returns the readme template.
func (a Archetype) Readme() templates.Artifact {
	switch a {
	case PlainNative:
		return templates.ReadmePlainNative
	case PlainNativeWorker:
		return templates.ReadmePlainNativeWorker
	case Component:
		return templates.ReadmeComponent
	case ComponentNative:
		return templates.ReadmeComponentNative
	case ComponentNativeWorker:
		return templates.ReadmeComponentNativeWorker
	}
	return templates.ReadmePlain
}

// Names returns all archetype names in menu order.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, a := range All() {
		names = append(names, a.String())
	}
	return names
}
