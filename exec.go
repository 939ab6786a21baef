package litequery

import (
	"context"
	"database/sql"

	"github.com/golobby/litequery/qb"
)

type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// failure applies the error mode to an engine error. It returns nil when the
// error is swallowed.
func (d *DB) failure(q string, err error) error {
	execErr := &qb.ExecError{SQL: q, Err: err}
	if d.opts.ErrorMode == ErrorModeRaise {
		return execErr
	}
	d.logger.Warnf("query failed, error suppressed: %v", execErr)
	return nil
}

// record connects if needed and appends q to the log. Connection errors are
// returned as is and leave the log untouched.
func (d *DB) record(ctx context.Context, q string) error {
	if _, err := d.conn.open(ctx); err != nil {
		return err
	}
	d.log.append(q)
	d.logger.Debugf("executing %s", q)
	return nil
}

func (d *DB) fetch(ctx context.Context, q string, limit int) ([]Row, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.record(ctx, q); err != nil {
		return nil, err
	}
	rows, err := d.conn.query(ctx, q)
	if err != nil {
		return []Row{}, d.failure(q, err)
	}
	defer rows.Close()

	out, err := bindToMap(rows, limit)
	if err != nil {
		return []Row{}, d.failure(q, err)
	}
	return out, nil
}

func (d *DB) fetchAll(ctx context.Context, q string) ([]Row, error) {
	rows, err := d.fetch(ctx, q, 0)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// fetchOne returns a nil Row when nothing matched.
func (d *DB) fetchOne(ctx context.Context, q string) (Row, error) {
	rows, err := d.fetch(ctx, q, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// execute runs a statement that returns no rows. ok is false when an engine
// error was swallowed.
func (d *DB) execute(ctx context.Context, q string) (res Result, ok bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.record(ctx, q); err != nil {
		return Result{}, false, err
	}
	r, err := d.conn.exec(ctx, q)
	if err != nil {
		return Result{}, false, d.failure(q, err)
	}
	return resultOf(r), true, nil
}

func resultOf(r sql.Result) Result {
	var res Result
	if id, err := r.LastInsertId(); err == nil {
		res.LastInsertID = id
	}
	if n, err := r.RowsAffected(); err == nil {
		res.RowsAffected = n
	}
	return res
}
