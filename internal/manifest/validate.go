package manifest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/Diomede5/init-web-app/internal/errors"
)

//go:embed package.cue
var packageSchemaCUE []byte

var (
	schemaOnce sync.Once
	cueCtx     *cue.Context
	pkgSchema  cue.Value
	schemaErr  error
)

func loadSchema() (*cue.Context, cue.Value, error) {
	schemaOnce.Do(func() {
		cueCtx = cuecontext.New()
		root := cueCtx.CompileBytes(packageSchemaCUE)
		if root.Err() != nil {
			schemaErr = fmt.Errorf("compiling package schema: %w", root.Err())
			return
		}
		pkgSchema = root.LookupPath(cue.ParsePath("#Package"))
		schemaErr = pkgSchema.Err()
	})
	return cueCtx, pkgSchema, schemaErr
}

// ValidatePackage checks that data is strict JSON and carries a scripts
// map with a build entry. Failures wrap ErrManifestInvalid.
func ValidatePackage(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("package.json: %w: not valid JSON", oerrors.ErrManifestInvalid)
	}

	ctx, schema, err := loadSchema()
	if err != nil {
		return err
	}

	expr, err := cuejson.Extract("package.json", data)
	if err != nil {
		return fmt.Errorf("package.json: %w: %w", oerrors.ErrManifestInvalid, err)
	}

	value := ctx.BuildExpr(expr)
	if value.Err() != nil {
		return fmt.Errorf("package.json: %w: %w", oerrors.ErrManifestInvalid, value.Err())
	}

	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("package.json: %w: %w", oerrors.ErrManifestInvalid, err)
	}

	return nil
}

// cargoManifest holds the parts of Cargo.toml the native build relies on.
type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
	Lib          struct {
		CrateType []string `toml:"crate-type"`
	} `toml:"lib"`
}

// ValidateCargo checks that data is valid TOML with the wasm-bindgen
// dependency and a cdylib crate type. Failures wrap ErrManifestInvalid.
func ValidateCargo(data []byte) error {
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("Cargo.toml: %w: %w", oerrors.ErrManifestInvalid, err)
	}

	if _, ok := m.Dependencies["wasm-bindgen"]; !ok {
		return fmt.Errorf("Cargo.toml: %w: missing wasm-bindgen dependency", oerrors.ErrManifestInvalid)
	}

	if !slices.Contains(m.Lib.CrateType, "cdylib") {
		return fmt.Errorf("Cargo.toml: %w: lib crate-type must include cdylib", oerrors.ErrManifestInvalid)
	}

	return nil
}
