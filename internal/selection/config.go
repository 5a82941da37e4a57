// Package selection loads the user's message selection (which DBC
// messages to generate types for, and which signals to include) and
// resolves it against a parsed DBC database.
package selection

import (
	"encoding/json"
	"fmt"
	"os"
)

// MessageSpec names one generated type: which DBC message backs it, an
// optional allowlist restricting which signals to materialise (absence
// means all signals), and an optional count for a family of identically
// shaped messages (e.g. four wheel-speed sensors).
type MessageSpec struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Signals []string `json:"signals,omitempty"`
	Count   int      `json:"count,omitempty"`
}

// Config is the `*.dbcgen.json` selection file.
type Config struct {
	DBCFile          string        `json:"dbc_file"`
	Package          string        `json:"package"`
	MinSchemaVersion string        `json:"min_schema_version,omitempty"`
	Messages         []MessageSpec `json:"messages"`
}

// Load reads and parses a selection config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("selection: failed to read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("selection: failed to parse config: %w", err)
	}
	if cfg.Package == "" {
		cfg.Package = "canmsgs"
	}
	return &cfg, nil
}
