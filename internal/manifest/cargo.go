package manifest

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/projectbridge/reposcan/internal/errors"
)

// rustCrates maps crate names to canonical entries.
var rustCrates = map[string]Entry{
	"actix-web":    {Name: "Actix Web", Category: "framework"},
	"axum":         {Name: "Axum", Category: "framework"},
	"rocket":       {Name: "Rocket", Category: "framework"},
	"tokio":        {Name: "Tokio", Category: "tool"},
	"serde":        {Name: "Serde", Category: "tool"},
	"diesel":       {Name: "Diesel", Category: "tool"},
	"sqlx":         {Name: "SQLx", Category: "tool"},
	"leptos":       {Name: "Leptos", Category: "framework"},
	"yew":          {Name: "Yew", Category: "framework"},
	"tauri":        {Name: "Tauri", Category: "framework"},
	"wasm-bindgen": {Name: "WebAssembly", Category: "tool"},
}

// cargoParser extracts crate names from Cargo.toml dependency tables.
type cargoParser struct{}

func (cargoParser) Filename() string {
	return "Cargo.toml"
}

func (cargoParser) Parse(data []byte) ([]Entry, error) {
	var doc map[string]any

	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(err)
	}

	var identifiers []string

	for _, table := range []string{"dependencies", "dev-dependencies", "build-dependencies"} {
		identifiers = append(identifiers, tableKeys(doc, table)...)
	}

	// Workspace manifests declare shared dependencies one level deeper.
	if workspace, ok := doc["workspace"].(map[string]any); ok {
		identifiers = append(identifiers, tableKeys(workspace, "dependencies")...)
	}

	return mapIdentifiers(identifiers, rustCrates), nil
}

func tableKeys(doc map[string]any, name string) []string {
	table, ok := doc[name].(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}

	return keys
}
