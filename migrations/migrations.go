// Package migrations embeds the SQL schema migrations so both the binary and
// the test suites can open a fully migrated store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
