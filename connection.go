package litequery

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"

	// Drivers
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// connection is the single lazily opened handle to the database file.
type connection struct {
	mu         sync.Mutex
	path       string
	autocreate bool
	db         *sql.DB
	connected  bool
	logger     Logger

	// injected handles come from WithDB and are never reopened from path.
	injected bool
	closed   bool
}

func (c *connection) dsn() string {
	mode := "rwc"
	if !c.autocreate {
		mode = "rw"
	}
	return fmt.Sprintf("file:%s?mode=%s", (&url.URL{Path: c.path}).EscapedPath(), mode)
}

// open establishes the connection unless it already is.
func (c *connection) open(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return c.db, nil
	}
	if c.injected && c.closed {
		return nil, fmt.Errorf("%w: the database handle passed to WithDB is closed", ErrInvalidState)
	}

	db := c.db
	if db == nil {
		var err error
		db, err = sql.Open(driverName, c.dsn())
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", c.path, err)
		}
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", c.path, err)
	}

	c.db = db
	c.connected = true
	c.logger.Infof("connected to %s", c.path)
	return db, nil
}

func (c *connection) isConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *connection) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	c.connected = false
	c.closed = true
	return err
}

func (c *connection) exec(ctx context.Context, q string) (sql.Result, error) {
	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	return db.ExecContext(ctx, q)
}

func (c *connection) query(ctx context.Context, q string) (*sql.Rows, error) {
	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	return db.QueryContext(ctx, q)
}
