package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"civic-notify/internal/broadcast/repository"
	pkgLog "civic-notify/pkg/log"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS broadcasts (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	body            TEXT NOT NULL,
	zone            TEXT NOT NULL,
	category        TEXT NOT NULL,
	priority        TEXT NOT NULL,
	created_at      TEXT NOT NULL,
	recipient_count INTEGER NOT NULL,
	recipient_ids   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_broadcasts_zone ON broadcasts(zone);
CREATE INDEX IF NOT EXISTS idx_broadcasts_created_at ON broadcasts(created_at);
`

type implRepository struct {
	l     pkgLog.Logger
	db    *sql.DB
	clock func() time.Time
}

var _ repository.Repository = &implRepository{}

// New opens (and migrates) the local audit log at path. The log is scoped
// to the client installation, not synchronized to any server.
func New(l pkgLog.Logger, path string) (*implRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a small number of concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &implRepository{l: l, db: db, clock: time.Now}, nil
}

func (r *implRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
