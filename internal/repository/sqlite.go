package repository

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"modernc.org/sqlite"
)

// Ent's SQLite dialect expects a driver registered as "sqlite3". The
// modernc driver registers itself as "sqlite", so wrap it under the
// expected name and switch foreign keys on per connection.
const sqliteDriverName = "sqlite3"

type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return nil, err
	}
	c, ok := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if !ok {
		_ = conn.Close()
		return nil, fmt.Errorf("connection does not support Exec")
	}
	if _, err := c.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register(sqliteDriverName, sqliteDriver{Driver: &sqlite.Driver{}})
}
