// Package migrations holds the goose SQL migrations for the fitlog schema.
package migrations

import "embed"

// FS contains every *.sql migration file, applied in version order.
//
//go:embed *.sql
var FS embed.FS
