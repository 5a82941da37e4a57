package generate

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"

	"github.com/tegimeki/dbc-data/internal/dbc"
)

// CheckSchemaVersion enforces the selection config's min_schema_version
// constraint against the DBC file's `SchemaVersion` attribute, using the
// same semver-range gate a package resolver applies to a dependency
// constraint. A config with no constraint is not gated; a constraint set
// against a DBC file with no SchemaVersion attribute is an error.
func CheckSchemaVersion(db *dbc.Database, constraint string) error {
	if constraint == "" {
		return nil
	}
	if db.SchemaVersion == "" {
		return fmt.Errorf("generate: min_schema_version %q set but the DBC file carries no SchemaVersion attribute", constraint)
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("generate: invalid min_schema_version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(db.SchemaVersion)
	if err != nil {
		return fmt.Errorf("generate: DBC SchemaVersion %q is not valid semver: %w", db.SchemaVersion, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("generate: DBC SchemaVersion %s does not satisfy %s", v, constraint)
	}
	return nil
}
