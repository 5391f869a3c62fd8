// Package domainfinder embeds the SQL migrations of the service so the
// binary can migrate a database without access to the source tree.
package domainfinder

import "embed"

// Migrations holds the goose migration files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
