package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// NetDB bundles the SQLite handle with the stores built on it.
type NetDB struct {
	sqlDB       *sql.DB
	Identifiers *IdentifierStore
}

// Open opens (or creates) the SQLite database at path. ":memory:" keeps
// everything in process; the pool is pinned to one connection so the
// in-memory database is shared by every query.
func Open(path string) (*NetDB, error) {
	if path == "" {
		path = ":memory:"
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)

	store, err := NewIdentifierStore(sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return &NetDB{sqlDB: sqlDB, Identifiers: store}, nil
}

func (n *NetDB) Close() error {
	return n.sqlDB.Close()
}
