package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("demo", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("demo", map[string]string{
		"readme.txt":          "Build instructions",
		"pkg/demo.html":       "Page",
		"pkg/demo.js":         "Script",
		"pkg/demo_styles.css": "Stylesheet",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "demo/")
	assert.Contains(t, lines[1], "├── pkg/")
	assert.Contains(t, lines[2], "│   ├── demo.html")
	assert.Contains(t, lines[2], "Page")
	assert.Contains(t, lines[4], "│   └── demo_styles.css")
	assert.Contains(t, lines[5], "└── readme.txt")
}

func TestRenderFileTree_Nested(t *testing.T) {
	out := RenderFileTree("demo", map[string]string{
		"src/lib.rs": "",
	})
	assert.Contains(t, out, "└── src/")
	assert.Contains(t, out, "    └── lib.rs")
}
