// Package repository opens the user and task stores for the configured
// database driver.
package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/dtroode/tasktracker-server/internal/config"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/repository/postgres"
	"github.com/dtroode/tasktracker-server/internal/repository/sqlite"
)

// Stores bundles the stores sharing one database handle.
type Stores struct {
	Users model.UserStore
	Tasks model.TaskStore

	closer io.Closer
}

// Close releases the database handle.
func (s *Stores) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open connects to the database selected by cfg.Driver and applies pending
// migrations.
func Open(ctx context.Context, cfg config.Database) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:  postgres.NewUserRepository(conn),
			Tasks:  postgres.NewTaskRepository(conn),
			closer: conn,
		}, nil
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:  sqlite.NewUserRepository(store),
			Tasks:  sqlite.NewTaskRepository(store),
			closer: store,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
