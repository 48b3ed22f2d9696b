// Package migrations embeds the telemetry schema migrations.
package migrations

import "embed"

// FS exposes the SQL migration files for the telemetry store.
//
//go:embed *.sql
var FS embed.FS
