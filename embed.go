package juicequpricing

import "embed"

// MigrationsFS holds the SQL migrations for the voucher and exchange-rate
// tables. Passed to repository.RunMigrations by the embedding application.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
