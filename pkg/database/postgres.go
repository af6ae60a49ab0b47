package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/uptrace/bun/driver/pgdriver"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_create_user_settings",
			Up: []string{`
				create table if not exists user_settings (
					chat_id         bigint primary key,
					speech_language text not null default 'en-US',
					detect_language boolean not null default false,
					speech_model    text not null default '',
					ti_language     text not null default 'en',
					summarize       text not null default 'v2',
					topics          boolean not null default true,
					intents         boolean not null default true,
					sentiment       boolean not null default true,
					ui_language     text not null default 'en',
					created_at      timestamptz not null default now(),
					updated_at      timestamptz not null default now()
				)`,
			},
			Down: []string{"drop table user_settings"},
		},
	},
}

// NewPostgres opens a connection pool for dsn, verifies connectivity, and
// applies pending migrations.
func NewPostgres(dsn string) (*sql.DB, error) {
	db := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	if n > 0 {
		slog.Info("applied database migrations", "count", n)
	}

	return db, nil
}
