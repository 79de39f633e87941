package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/recipe-share/internal/config"
)

type Database struct {
	*sqlx.DB
}

func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	return &Database{DB: db}, nil
}

func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) RunMigrations() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(64) UNIQUE NOT NULL,
			first_name VARCHAR(64) NOT NULL,
			last_name VARCHAR(64) NOT NULL,
			date_registered DOUBLE PRECISION NOT NULL,
			role INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS user_passwords (
			user_id UUID PRIMARY KEY,
			hashed_password BYTEA NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id UUID PRIMARY KEY,
			source TEXT NOT NULL,
			author_id UUID NOT NULL,
			date_created DOUBLE PRECISION NOT NULL,
			date_edited DOUBLE PRECISION NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			status INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id UUID PRIMARY KEY,
			text VARCHAR(255) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS recipes_tags (
			recipe_id UUID NOT NULL,
			tag_id UUID NOT NULL,
			PRIMARY KEY (recipe_id, tag_id)
		)`,
		`CREATE TABLE IF NOT EXISTS rated_recipes (
			user_id UUID NOT NULL,
			recipe_id UUID NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (user_id, recipe_id)
		)`,
		`CREATE TABLE IF NOT EXISTS bookmarked_recipes (
			user_id UUID NOT NULL,
			recipe_id UUID NOT NULL,
			date_added DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (user_id, recipe_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_status ON recipes(status)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_author ON recipes(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rated_recipes_recipe ON rated_recipes(recipe_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_tags_tag ON recipes_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookmarked_recipes_user ON bookmarked_recipes(user_id)`,
	}

	for _, migration := range migrations {
		if _, err := d.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// now returns the current time as unix seconds, the repository's
// wire and storage format for timestamps.
func now() float64 {
	return float64(time.Now().UnixMicro()) / 1e6
}
