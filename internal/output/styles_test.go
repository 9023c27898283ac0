package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusStyle_RendersText(t *testing.T) {
	for _, status := range []string{StatusOK, StatusOutdated, StatusMissing, StatusUnknown, "other"} {
		t.Run(status, func(t *testing.T) {
			assert.Contains(t, StatusStyle(status).Render(status), status)
		})
	}
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Done!")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Done!")
}
