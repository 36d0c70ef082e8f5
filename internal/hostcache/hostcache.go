// Package hostcache persists a project's set of dangling methods
// across process restarts, so a host watching a large tree does not
// have to re-walk every file from scratch just to know which methods
// still have no surviving declaration site.
package hostcache

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/riseshia/rbtypegraph/internal/registry"
)

const schema = `
CREATE TABLE IF NOT EXISTS dangling_methods (
	receiver_name TEXT NOT NULL,
	name          TEXT NOT NULL,
	singleton     INTEGER NOT NULL,
	last_path     TEXT NOT NULL,
	PRIMARY KEY (receiver_name, name, singleton)
);
`

// Cache wraps a sqlite-backed store of the last-recorded dangling-method
// set.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// RecordDangling replaces the persisted dangling-method set with
// methods, the full set as of the most recent project-wide walk.
func (c *Cache) RecordDangling(methods []*registry.Method) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM dangling_methods"); err != nil {
		tx.Rollback()
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO dangling_methods (receiver_name, name, singleton, last_path) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, m := range methods {
		lastPath := ""
		if len(m.Paths) > 0 {
			lastPath = m.Paths[len(m.Paths)-1]
		}
		if _, err := stmt.Exec(m.ReceiverName, m.Name, boolToInt(m.Singleton), lastPath); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// WasDangling reports whether (receiverName, name, singleton) was part
// of the set recorded by the most recent RecordDangling call, letting a
// host distinguish a method that just reappeared from one that was
// never dangling in the first place.
func (c *Cache) WasDangling(receiverName, name string, singleton bool) (bool, error) {
	row := c.db.QueryRow(
		"SELECT 1 FROM dangling_methods WHERE receiver_name = ? AND name = ? AND singleton = ?",
		receiverName, name, boolToInt(singleton),
	)
	var one int
	switch err := row.Scan(&one); err {
	case nil:
		return true, nil
	case sql.ErrNoRows:
		return false, nil
	default:
		return false, err
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
