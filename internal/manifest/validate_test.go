package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/Diomede5/init-web-app/internal/errors"
	"github.com/Diomede5/init-web-app/internal/templates"
)

func TestValidatePackage(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid", data: `{"name":"x","scripts":{"build":"babel x.jsx -d pkg"}}`},
		{name: "extra scripts", data: `{"scripts":{"build":"b","wasm":"w"},"dependencies":{"a":"1"}}`},
		{name: "not json", data: `{"name":`, wantErr: true},
		{name: "trailing comma", data: `{"scripts":{"build":"b"},}`, wantErr: true},
		{name: "missing scripts", data: `{"name":"x"}`, wantErr: true},
		{name: "missing build", data: `{"scripts":{"wasm":"w"}}`, wantErr: true},
		{name: "non-string script", data: `{"scripts":{"build":1}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackage([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrManifestInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

const cargoInit = `[package]
name = "demo_wasm"
version = "0.1.0"
edition = "2021"

[dependencies]
`

func TestValidateCargo(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "appended", data: cargoInit + templates.Render(templates.NativeManifest, "demo")},
		{name: "not appended", data: cargoInit, wantErr: true},
		{name: "no crate type", data: cargoInit + "wasm-bindgen = \"0.2\"\n", wantErr: true},
		{name: "invalid toml", data: "[package\nname = ", wantErr: true},
		{name: "appended twice", data: cargoInit + templates.Render(templates.NativeManifest, "demo") + templates.Render(templates.NativeManifest, "demo"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCargo([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrManifestInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}
