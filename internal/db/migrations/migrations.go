// Package migrations embeds the goose migration scripts, one directory per
// supported dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
