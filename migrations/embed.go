// Package migrations holds the goose SQL migrations for the claim store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
