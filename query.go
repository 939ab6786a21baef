package litequery

import (
	"context"
	"fmt"
	"strings"

	"github.com/golobby/litequery/qb"
)

// Query accumulates one statement through chained calls. A terminal
// operation (All, One, Into, Exec) renders it, runs it and resets the Query
// so it can start a new chain. A Query must not be shared between goroutines.
//
// The first configuration error aborts the chain: later calls are ignored and
// the next terminal operation returns the error.
type Query struct {
	db  *DB
	st  qb.Statement
	err error
}

// Select projects the given columns, or * when none (or only "*") are given.
func (q *Query) Select(columns ...string) *Query {
	if q.err != nil {
		return q
	}
	q.st.Kind = qb.KindSelect
	q.st.Fields = qb.Columns(columns...)
	return q
}

// SelectRaw projects expr verbatim.
func (q *Query) SelectRaw(expr string) *Query {
	if q.err != nil {
		return q
	}
	q.st.Kind = qb.KindSelect
	q.st.Fields = qb.Raw(expr)
	return q
}

func (q *Query) Count() *Query {
	return q.SelectRaw("COUNT(*) as count")
}

func (q *Query) Insert(payload qb.Payload) *Query {
	if q.err != nil {
		return q
	}
	if payload.Len() == 0 {
		q.err = fmt.Errorf("%w: there is no data passed to Insert", ErrInvalidArgument)
		return q
	}
	q.st.Kind = qb.KindInsert
	q.st.Payload = payload
	return q
}

func (q *Query) InsertStruct(v interface{}) *Query {
	if q.err != nil {
		return q
	}
	payload, err := PayloadOf(v)
	if err != nil {
		q.err = err
		return q
	}
	return q.Insert(payload)
}

func (q *Query) Update(table string) *Query {
	if q.err != nil {
		return q
	}
	q.st.Kind = qb.KindUpdate
	q.st.Table = table
	return q
}

func (q *Query) Delete() *Query {
	if q.err != nil {
		return q
	}
	q.st.Kind = qb.KindDelete
	return q
}

func (q *Query) From(table string) *Query {
	if q.err != nil {
		return q
	}
	q.st.Table = table
	return q
}

// Values sets the data of an UPDATE.
func (q *Query) Values(payload qb.Payload) *Query {
	if q.err != nil {
		return q
	}
	q.st.Payload = payload
	return q
}

// Where sets a raw SQL condition. It is used verbatim and not escaped.
func (q *Query) Where(condition string) *Query {
	if q.err != nil {
		return q
	}
	q.st.Condition = condition
	return q
}

// OrderBy sorts by column, ASC unless a direction is given. The direction is
// upper-cased and otherwise used as is.
func (q *Query) OrderBy(column string, direction ...string) *Query {
	if q.err != nil {
		return q
	}
	dir := qb.ASC
	if len(direction) > 0 && direction[0] != "" {
		dir = strings.ToUpper(direction[0])
	}
	q.st.OrderColumn = column
	q.st.OrderDirection = dir
	return q
}

func (q *Query) Err() error {
	return q.err
}

// Statement returns a copy of the statement under construction.
func (q *Query) Statement() qb.Statement {
	return q.st
}

// SQL renders the statement without running it or resetting the chain.
func (q *Query) SQL() (string, error) {
	if q.err != nil {
		return "", q.err
	}
	return q.db.render(q.st)
}

// All runs the statement and returns every row.
func (q *Query) All(ctx context.Context) ([]Row, error) {
	sql, err := q.take()
	if err != nil {
		return nil, err
	}
	return q.db.fetchAll(ctx, sql)
}

// One runs the statement and returns its first row, nil when nothing matched.
func (q *Query) One(ctx context.Context) (Row, error) {
	sql, err := q.take()
	if err != nil {
		return nil, err
	}
	return q.db.fetchOne(ctx, sql)
}

// Into sets the target table of an INSERT and runs it.
func (q *Query) Into(ctx context.Context, table string) (bool, error) {
	if q.err == nil && q.st.Kind != qb.KindInsert {
		q.reset()
		return false, fmt.Errorf("%w: Into can be used only with Insert", ErrInvalidState)
	}
	q.st.Table = table
	sql, err := q.take()
	if err != nil {
		return false, err
	}
	_, ok, err := q.db.execute(ctx, sql)
	return ok, err
}

// Exec runs a statement that does not return rows.
func (q *Query) Exec(ctx context.Context) (Result, error) {
	sql, err := q.take()
	if err != nil {
		return Result{}, err
	}
	res, _, err := q.db.execute(ctx, sql)
	return res, err
}

// take renders the statement and resets the chain, whatever the outcome.
func (q *Query) take() (string, error) {
	defer q.reset()
	if q.err != nil {
		return "", q.err
	}
	return q.db.render(q.st)
}

func (q *Query) reset() {
	q.st.Reset()
	q.err = nil
}
