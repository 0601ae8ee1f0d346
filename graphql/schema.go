package graphql

import (
	_ "embed"
)

//go:embed schema.graphqls
var schemaSDL string

// Schema returns the SDL served at /graphql. Extensions plug in through the
// _extension field and graphql/registry instead of new types.
func Schema() string {
	return schemaSDL
}
