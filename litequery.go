package litequery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golobby/litequery/qb"
)

// DB is a fluent query builder bound to one SQLite database file. It is safe
// for concurrent use; the Query values it hands out are not.
type DB struct {
	mu     sync.Mutex
	path   string
	opts   Options
	logger Logger
	render RenderFunc
	conn   *connection
	log    *queryLog
}

// New prepares a builder for file. Relative paths are resolved against the
// WorkDir option. No connection is made until the first query runs or Connect
// is called. With autocreate disabled a missing file is reported right away
// as ErrNotFound.
func New(file string, opts ...Option) (*DB, error) {
	s := &settings{Options: defaultOptions()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = nopLogger()
	}
	if s.render == nil {
		s.render = qb.Render
	}

	path := file
	if !filepath.IsAbs(file) {
		path = filepath.Join(s.WorkDir, file)
	}
	if !s.Autocreate && s.db == nil {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
	}

	return &DB{
		path:   path,
		opts:   s.Options,
		logger: s.logger,
		render: s.render,
		conn: &connection{
			path:       path,
			autocreate: s.Autocreate,
			db:         s.db,
			logger:     s.logger,
			injected:   s.db != nil,
		},
		log: &queryLog{},
	}, nil
}

// Connect opens the database. Terminal operations call it on first use.
func (d *DB) Connect(ctx context.Context) error {
	_, err := d.conn.open(ctx)
	return err
}

func (d *DB) Connected() bool {
	return d.conn.isConnected()
}

// Close closes the handle. A file database is reopened by the next query; a
// handle given through WithDB is not, and later queries fail with
// ErrInvalidState.
func (d *DB) Close() error {
	return d.conn.close()
}

func (d *DB) Path() string {
	return d.path
}

func (d *DB) Options() Options {
	return d.opts
}

// Query starts an empty chain.
func (d *DB) Query() *Query {
	return &Query{db: d}
}

func (d *DB) Select(columns ...string) *Query {
	return d.Query().Select(columns...)
}

func (d *DB) SelectRaw(expr string) *Query {
	return d.Query().SelectRaw(expr)
}

func (d *DB) Count() *Query {
	return d.Query().Count()
}

func (d *DB) Insert(payload qb.Payload) *Query {
	return d.Query().Insert(payload)
}

func (d *DB) InsertStruct(v interface{}) *Query {
	return d.Query().InsertStruct(v)
}

func (d *DB) Update(table string) *Query {
	return d.Query().Update(table)
}

func (d *DB) Delete() *Query {
	return d.Query().Delete()
}

func (d *DB) From(table string) *Query {
	return d.Query().From(table)
}

func (d *DB) Where(condition string) *Query {
	return d.Query().Where(condition)
}

// Save inserts the exported fields of v into the table named after its type.
func (d *DB) Save(ctx context.Context, v interface{}) (bool, error) {
	return d.InsertStruct(v).Into(ctx, TableOf(v))
}

// Exec runs raw SQL that returns no rows. It goes through the same error mode
// and query log as the fluent chains.
func (d *DB) Exec(ctx context.Context, q string) (Result, error) {
	res, _, err := d.execute(ctx, q)
	return res, err
}

// QueryRaw runs raw SQL and returns its rows.
func (d *DB) QueryRaw(ctx context.Context, q string) ([]Row, error) {
	return d.fetchAll(ctx, q)
}
