package postgres

import (
	"context"
	"database/sql"
	"domainfinder/pkg/storage"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// MigrationVersions are the schema versions after Migrate.
type MigrationVersions struct {
	// Schema is the goose version of the domain tables.
	Schema int64
	// River is the version of the river queue tables.
	River int
}

// Migrate applies the goose migrations found at the root of migrations and
// then the river queue migrations, both up to their latest version. It must
// not be called inside a transaction.
func (p *PgSQL) Migrate(ctx context.Context, migrations fs.FS) (MigrationVersions, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return MigrationVersions{}, storage.ErrAlreadyInTx
	}

	provider, err := goose.NewProvider(database.DialectPostgres, db, migrations)
	if err != nil {
		return MigrationVersions{}, fmt.Errorf("could not create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return MigrationVersions{}, fmt.Errorf("could not apply schema migrations: %w", err)
	}
	schema, err := provider.GetDBVersion(ctx)
	if err != nil {
		return MigrationVersions{}, fmt.Errorf("could not read schema version: %w", err)
	}

	river, err := migrateRiver(ctx, db)
	if err != nil {
		return MigrationVersions{}, err
	}

	return MigrationVersions{Schema: schema, River: river}, nil
}

func migrateRiver(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version
	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if latest > current {
		_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: latest})
		if err != nil {
			return 0, fmt.Errorf("could not migrate river queue database: %w", err)
		}
	}

	return latest, nil
}
