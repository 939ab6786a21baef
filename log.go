package litequery

import (
	"sync"

	"github.com/jedib0t/go-pretty/table"
)

// queryLog is the append-only history of executed SQL.
type queryLog struct {
	mu      sync.RWMutex
	entries []string
}

func (l *queryLog) append(q string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, q)
}

func (l *queryLog) snapshot() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string{}, l.entries...)
}

func (l *queryLog) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Log returns every SQL string sent to the engine, oldest first. Failed
// queries are included.
func (d *DB) Log() []string {
	return d.log.snapshot()
}

func (d *DB) LogLen() int {
	return d.log.len()
}

// RenderLog formats the query log as a numbered table.
func (d *DB) RenderLog() string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"#", "Query"})
	for i, q := range d.log.snapshot() {
		w.AppendRow(table.Row{i + 1, q})
	}
	return w.Render()
}
