package sitebook

import "embed"

// EmailFS holds the transactional email templates, one directory per template
// with an html.tmpl and a plaintext.tmpl.
//
//go:embed templates/emails
var EmailFS embed.FS

// MigrationsFS holds the goose SQL migrations applied by cmd/migrate.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
