// Package generate orchestrates the DBC schema, the selection frontend and
// the emitter into one end-to-end run, plus the ambient concerns around
// that run: schema version gating and filesystem watching.
package generate

import (
	"fmt"
	"os"

	"github.com/tegimeki/dbc-data/internal/dbc"
	"github.com/tegimeki/dbc-data/internal/diagnostic"
	"github.com/tegimeki/dbc-data/internal/emitter"
	"github.com/tegimeki/dbc-data/internal/selection"
)

// Result is the outcome of one generation run.
type Result struct {
	Source      []byte
	Diagnostics []diagnostic.Diagnostic
}

// Run reads the DBC file named by cfg.DBCFile, resolves cfg's message
// selections against it, and renders the generated source. A
// Schema-unreadable condition (the DBC file cannot be opened or scanned)
// or a failed schema version gate aborts the run; every other problem
// becomes a diagnostic and the run continues with whatever did resolve.
func Run(cfg *selection.Config) (*Result, error) {
	f, err := os.Open(cfg.DBCFile)
	if err != nil {
		return nil, fmt.Errorf("generate: cannot read DBC file: %w", err)
	}
	defer f.Close()

	var diags diagnostic.Bag
	db, err := dbc.Parse(f, &diags)
	if err != nil {
		return nil, fmt.Errorf("generate: cannot parse DBC file: %w", err)
	}

	if err := CheckSchemaVersion(db, cfg.MinSchemaVersion); err != nil {
		return nil, err
	}

	resolved := selection.Resolve(db, cfg, &diags)

	messages := make([]emitter.Message, 0, len(resolved))
	for _, r := range resolved {
		messages = append(messages, emitter.BuildMessage(r))
	}

	src, err := emitter.Render(cfg.Package, messages)
	if err != nil {
		return nil, fmt.Errorf("generate: failed to render output: %w", err)
	}

	return &Result{Source: src, Diagnostics: diags.Items()}, nil
}
