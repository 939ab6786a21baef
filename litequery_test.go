package litequery_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golobby/litequery"
	"github.com/golobby/litequery/qb"
)

var ctx = context.Background()

func setup(t *testing.T, opts ...litequery.Option) *litequery.DB {
	t.Helper()
	base := []litequery.Option{litequery.WorkDir(t.TempDir()), litequery.Debug(true)}
	db, err := litequery.New("test.db", append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(ctx, `CREATE TABLE users (id INTEGER PRIMARY KEY, email TEXT, password TEXT, name TEXT, age INTEGER, created_at TEXT)`)
	require.NoError(t, err)
	return db
}

func seed(t *testing.T, db *litequery.DB) {
	t.Helper()
	for _, p := range []qb.Payload{
		qb.P("email", "alice@example.com", "password", "a", "name", "alice", "age", 30),
		qb.P("email", "bob@example.com", "password", "b", "name", "bob", "age", 25),
		qb.P("email", "carol@example.com", "password", "c", "name", "carol", "age", 41),
	} {
		ok, err := db.Insert(p).Into(ctx, "users")
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func lastQuery(db *litequery.DB) string {
	log := db.Log()
	if len(log) == 0 {
		return ""
	}
	return log[len(log)-1]
}

func TestSelect(t *testing.T) {
	db := setup(t)
	seed(t, db)

	t.Run("columns with where", func(t *testing.T) {
		rows, err := db.Select("id", "name").From("users").Where("id=1").All(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SELECT `id`, `name` FROM `users` WHERE id=1", lastQuery(db))
		require.Len(t, rows, 1)
		assert.Equal(t, litequery.Row{"id": int64(1), "name": "alice"}, rows[0])
	})

	t.Run("wildcard ordered desc", func(t *testing.T) {
		rows, err := db.Select().From("users").OrderBy("age", "desc").All(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM `users` ORDER BY `age` DESC", lastQuery(db))
		require.Len(t, rows, 3)
		assert.Equal(t, "carol", rows[0]["name"])
		assert.Equal(t, "bob", rows[2]["name"])
	})

	t.Run("star is the wildcard", func(t *testing.T) {
		rows, err := db.Select("*").From("users").Where("id=2").All(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM `users` WHERE id=2", lastQuery(db))
		require.Len(t, rows, 1)
		assert.Equal(t, "bob", rows[0]["name"])
	})

	t.Run("no rows", func(t *testing.T) {
		rows, err := db.Select().From("users").Where("age > 100").All(ctx)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("one", func(t *testing.T) {
		row, err := db.Select("email").From("users").Where("name = 'bob'").One(ctx)
		require.NoError(t, err)
		assert.Equal(t, litequery.Row{"email": "bob@example.com"}, row)
	})

	t.Run("one without match", func(t *testing.T) {
		row, err := db.Select().From("users").Where("id=99").One(ctx)
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("count", func(t *testing.T) {
		row, err := db.Count().From("users").Where("age >= 30").One(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) as count FROM `users` WHERE age >= 30", lastQuery(db))
		assert.Equal(t, int64(2), row["count"])
	})

	t.Run("raw projection", func(t *testing.T) {
		row, err := db.SelectRaw("MAX(age) as oldest").From("users").One(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(41), row["oldest"])
	})
}

func TestInsert(t *testing.T) {
	db := setup(t)

	t.Run("keeps payload order", func(t *testing.T) {
		ok, err := db.Insert(qb.P("email", "a@b.com", "password", "x")).Into(ctx, "users")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "INSERT INTO users('email', 'password') VALUES('a@b.com', 'x');", lastQuery(db))

		row, err := db.Select("email", "password").From("users").Where("id=1").One(ctx)
		require.NoError(t, err)
		assert.Equal(t, litequery.Row{"email": "a@b.com", "password": "x"}, row)
	})

	t.Run("empty payload never renders", func(t *testing.T) {
		before := db.LogLen()
		q := db.Insert(qb.Payload{})
		assert.ErrorIs(t, q.Err(), litequery.ErrInvalidArgument)

		ok, err := q.Into(ctx, "users")
		assert.ErrorIs(t, err, litequery.ErrInvalidArgument)
		assert.False(t, ok)
		assert.Equal(t, before, db.LogLen())
		assert.True(t, q.Statement().IsZero())
		assert.NoError(t, q.Err())
	})

	t.Run("into requires insert", func(t *testing.T) {
		before := db.LogLen()
		q := db.Select().From("users")
		ok, err := q.Into(ctx, "users")
		assert.ErrorIs(t, err, litequery.ErrInvalidState)
		assert.False(t, ok)
		assert.Equal(t, before, db.LogLen())
		assert.True(t, q.Statement().IsZero())
	})

	t.Run("exec reports insert id", func(t *testing.T) {
		res, err := db.Insert(qb.P("email", "c@d.com")).From("users").Exec(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.LastInsertID)
		assert.Equal(t, int64(1), res.RowsAffected)
	})
}

func TestUpdate(t *testing.T) {
	db := setup(t)
	seed(t, db)

	t.Run("without where", func(t *testing.T) {
		before := db.LogLen()
		_, err := db.Update("users").Values(qb.P("name", "x")).All(ctx)
		assert.ErrorIs(t, err, litequery.ErrInvalidState)
		assert.Equal(t, before, db.LogLen())
	})

	t.Run("without values", func(t *testing.T) {
		before := db.LogLen()
		_, err := db.Update("users").Where("id=1").Exec(ctx)
		assert.ErrorIs(t, err, litequery.ErrInvalidState)
		assert.Equal(t, before, db.LogLen())
	})

	t.Run("with where", func(t *testing.T) {
		res, err := db.Update("users").Values(qb.P("name", "bobby", "age", 26)).Where("id=2").Exec(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.RowsAffected)
		assert.Equal(t, "UPDATE users SET name='bobby', age=26 WHERE id=2", lastQuery(db))

		row, err := db.Select("name", "age").From("users").Where("id=2").One(ctx)
		require.NoError(t, err)
		assert.Equal(t, litequery.Row{"name": "bobby", "age": int64(26)}, row)
	})

	t.Run("through all", func(t *testing.T) {
		rows, err := db.Update("users").Values(qb.P("age", nil)).Where("id=3").All(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)

		row, err := db.Select("age").From("users").Where("id=3").One(ctx)
		require.NoError(t, err)
		assert.Nil(t, row["age"])
	})
}

func TestDelete(t *testing.T) {
	db := setup(t)
	seed(t, db)

	t.Run("without where", func(t *testing.T) {
		before := db.LogLen()
		_, err := db.Delete().From("users").All(ctx)
		assert.ErrorIs(t, err, litequery.ErrInvalidState)
		assert.Equal(t, before, db.LogLen())
	})

	t.Run("with where", func(t *testing.T) {
		res, err := db.Delete().Where("id=3").From("users").Exec(ctx)
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM users WHERE id=3", lastQuery(db))
		assert.Equal(t, int64(1), res.RowsAffected)

		row, err := db.Count().From("users").One(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), row["count"])
	})
}

func TestTerminalWithoutStatement(t *testing.T) {
	db := setup(t)
	before := db.LogLen()

	_, err := db.Query().All(ctx)
	assert.ErrorIs(t, err, litequery.ErrInvalidState)
	_, err = db.From("users").One(ctx)
	assert.ErrorIs(t, err, litequery.ErrInvalidState)
	_, err = db.Where("id=1").Exec(ctx)
	assert.ErrorIs(t, err, litequery.ErrInvalidState)

	assert.Equal(t, before, db.LogLen())
}

func TestResetBetweenChains(t *testing.T) {
	db := setup(t)
	seed(t, db)

	q := db.Query()
	_, err := q.Select("id").From("users").Where("id=1").OrderBy("id").All(ctx)
	require.NoError(t, err)
	assert.True(t, q.Statement().IsZero())

	// Nothing from the previous chain may leak: no table, no condition.
	_, err = q.Delete().All(ctx)
	assert.ErrorIs(t, err, litequery.ErrInvalidState)
	assert.True(t, q.Statement().IsZero())

	rows, err := q.Select().From("users").All(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "SELECT * FROM `users`", lastQuery(db))

	// Failed renders reset as well.
	_, err = q.Update("users").Values(qb.P("name", "x")).Exec(ctx)
	assert.ErrorIs(t, err, litequery.ErrInvalidState)
	assert.True(t, q.Statement().IsZero())
}

func TestSQLDoesNotReset(t *testing.T) {
	db := setup(t)
	before := db.LogLen()
	q := db.Select("id").From("users")

	sql, err := q.SQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id` FROM `users`", sql)
	assert.False(t, q.Statement().IsZero())
	assert.Equal(t, before, db.LogLen())
}

func TestLogGrowsByOnePerExecution(t *testing.T) {
	db := setup(t)
	seed(t, db)

	n := db.LogLen()
	_, err := db.Select().From("users").All(ctx)
	require.NoError(t, err)
	assert.Equal(t, n+1, db.LogLen())

	_, err = db.Delete().From("users").All(ctx)
	assert.Error(t, err)
	assert.Equal(t, n+1, db.LogLen())

	_, err = db.Select().From("no_such_table").All(ctx)
	assert.ErrorIs(t, err, litequery.ErrExecutionFailure)
	assert.Equal(t, n+2, db.LogLen())

	log := db.Log()
	log[0] = "mutated"
	assert.NotEqual(t, "mutated", db.Log()[0])
}

func TestErrorModes(t *testing.T) {
	t.Run("silent mode swallows engine errors", func(t *testing.T) {
		db := setup(t, litequery.Debug(false))
		before := db.LogLen()

		rows, err := db.Select().From("no_such_table").All(ctx)
		assert.NoError(t, err)
		assert.Empty(t, rows)

		row, err := db.Select().From("no_such_table").One(ctx)
		assert.NoError(t, err)
		assert.Nil(t, row)

		ok, err := db.Insert(qb.P("nope", 1)).Into(ctx, "users")
		assert.NoError(t, err)
		assert.False(t, ok)

		assert.Equal(t, before+3, db.LogLen())
		assert.Equal(t, "INSERT INTO users('nope') VALUES('1');", db.Log()[before+2])
	})

	t.Run("silent mode still reports invalid state", func(t *testing.T) {
		db := setup(t, litequery.Debug(false))
		_, err := db.Delete().From("users").All(ctx)
		assert.ErrorIs(t, err, litequery.ErrInvalidState)
	})

	t.Run("raise mode returns exec errors", func(t *testing.T) {
		db := setup(t, litequery.WithErrorMode(litequery.ErrorModeRaise))
		_, err := db.Select().From("no_such_table").All(ctx)
		require.ErrorIs(t, err, litequery.ErrExecutionFailure)

		var execErr *litequery.ExecError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "SELECT * FROM `no_such_table`", execErr.SQL)
	})
}

func TestAutocreate(t *testing.T) {
	t.Run("missing file without autocreate", func(t *testing.T) {
		dir := t.TempDir()
		db, err := litequery.New("missing.db", litequery.WorkDir(dir), litequery.Autocreate(false))
		assert.ErrorIs(t, err, litequery.ErrNotFound)
		assert.Nil(t, db)

		_, statErr := os.Stat(filepath.Join(dir, "missing.db"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("existing file without autocreate", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "existing.db")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		db, err := litequery.New("existing.db", litequery.WorkDir(dir), litequery.Autocreate(false))
		require.NoError(t, err)
		defer db.Close()
		assert.Equal(t, path, db.Path())
		assert.NoError(t, db.Connect(ctx))
	})

	t.Run("autocreate creates file lazily", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "lazy.db")
		db, err := litequery.New("lazy.db", litequery.WorkDir(dir))
		require.NoError(t, err)
		defer db.Close()

		assert.False(t, db.Connected())
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))

		_, err = db.Exec(ctx, `CREATE TABLE t (id INTEGER)`)
		require.NoError(t, err)
		assert.True(t, db.Connected())
		_, statErr = os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("absolute path ignores workdir", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "abs.db")
		db, err := litequery.New(path, litequery.WorkDir("/nonexistent"))
		require.NoError(t, err)
		assert.Equal(t, path, db.Path())
	})
}

func TestCustomRenderer(t *testing.T) {
	var seen []qb.Statement
	db := setup(t, litequery.WithRenderer(func(st qb.Statement) (string, error) {
		seen = append(seen, st)
		return "SELECT 1 AS one", nil
	}))

	row, err := db.Select().From("anything").One(ctx)
	require.NoError(t, err)
	assert.Equal(t, litequery.Row{"one": int64(1)}, row)
	require.Len(t, seen, 1)
	assert.Equal(t, "anything", seen[0].Table)
}

func TestConcurrentChains(t *testing.T) {
	db := setup(t)
	before := db.LogLen()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := db.Insert(qb.P("email", fmt.Sprintf("user%d@example.com", i))).Into(ctx, "users")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, before+20, db.LogLen())
	row, err := db.Count().From("users").One(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(20), row["count"])
}

func TestRenderLog(t *testing.T) {
	db := setup(t)
	_, err := db.Select("id").From("users").All(ctx)
	require.NoError(t, err)

	out := db.RenderLog()
	assert.Contains(t, out, "CREATE TABLE users")
	assert.Contains(t, out, "SELECT `id` FROM `users`")
}

func TestRawSQL(t *testing.T) {
	db := setup(t)
	seed(t, db)

	res, err := db.Exec(ctx, "UPDATE users SET age=age+1 WHERE age > 26")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.RowsAffected)

	rows, err := db.QueryRaw(ctx, "SELECT name FROM users WHERE age > 30 ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []litequery.Row{{"name": "alice"}, {"name": "carol"}}, rows)
	assert.Equal(t, "SELECT name FROM users WHERE age > 30 ORDER BY name", lastQuery(db))

	_, err = db.QueryRaw(ctx, "SELECT * FROM missing")
	assert.ErrorIs(t, err, litequery.ErrExecutionFailure)
}
