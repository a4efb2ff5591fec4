// Package seed ships the catalog used when nothing else is configured.
package seed

import _ "embed"

// DefaultName file name reported as the catalog source
const DefaultName = "default_catalog.yaml"

//go:embed default_catalog.yaml
var defaultCatalog []byte

// DefaultCatalog YAML bytes of the built-in catalog. Each call returns a fresh copy.
func DefaultCatalog() []byte {
	out := make([]byte, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}
