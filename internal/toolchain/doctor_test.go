package toolchain

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/Diomede5/init-web-app/internal/errors"
)

// versionRunner answers --version from a fixed table.
type versionRunner map[Tool]*Result

func (v versionRunner) Run(_ context.Context, inv Invocation) (*Result, error) {
	res, ok := v[inv.Tool]
	if !ok {
		return nil, fmt.Errorf("starting %s: %w", inv.Tool, oerrors.ErrToolLaunch)
	}
	return res, nil
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{output: "10.2.4\n", want: "10.2.4"},
		{output: "cargo 1.75.0 (1d8b05cdd 2023-11-20)", want: "1.75.0"},
		{output: "wasm-pack 0.12.1", want: "0.12.1"},
		{output: "cargo 1.77.0-nightly (abc 2024-01-01)", want: "1.77.0-nightly"},
		{output: "v20.1", want: "20.1.0"},
		{output: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			v, err := ParseVersion(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestDoctor(t *testing.T) {
	runner := versionRunner{
		Npm:   {Stdout: "10.2.4\n"},
		Cargo: {Stdout: "cargo 1.50.0 (abc 2021-01-01)\n"},
	}

	checks := Doctor(context.Background(), runner)
	require.Len(t, checks, 3)

	assert.Equal(t, Npm, checks[0].Tool)
	assert.Equal(t, StatusOK, checks[0].Status)
	assert.Equal(t, "10.2.4", checks[0].Version)

	assert.Equal(t, Cargo, checks[1].Tool)
	assert.Equal(t, StatusOutdated, checks[1].Status)
	assert.Contains(t, checks[1].Detail, ">= 1.56.0")

	assert.Equal(t, WasmPack, checks[2].Tool)
	assert.Equal(t, StatusMissing, checks[2].Status)
}

func TestDoctor_Unknown(t *testing.T) {
	runner := versionRunner{
		Npm:      {ExitCode: 1},
		Cargo:    {Stdout: "no digits here"},
		WasmPack: {Stdout: "wasm-pack 0.13.0"},
	}

	checks := Doctor(context.Background(), runner)
	assert.Equal(t, StatusUnknown, checks[0].Status)
	assert.Equal(t, StatusUnknown, checks[1].Status)
	assert.Equal(t, StatusOK, checks[2].Status)
}
