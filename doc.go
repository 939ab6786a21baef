// Package litequery is a fluent query builder over a single SQLite file.
//
// Statements are assembled through chained calls and run by a terminal
// operation:
//
//	db, err := litequery.New("app.db", litequery.Debug(true))
//	rows, err := db.Select("id", "name").From("users").Where("id=1").All(ctx)
//	ok, err := db.Insert(qb.P("email", "a@b.com")).Into(ctx, "users")
//	_, err = db.Update("users").Values(qb.P("name", "bob")).Where("id=1").Exec(ctx)
//
// Values and conditions are concatenated into the SQL text. Nothing is
// escaped or bound, so input that did not come from the program itself must
// not reach Where, Values or Insert. WithRenderer swaps the renderer for
// every terminal operation.
//
// With Debug(false), the default, errors from the database engine are logged
// and swallowed: All returns an empty slice, One a nil Row and Into false.
// Configuration and render errors are always returned.
package litequery
