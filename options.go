package litequery

import (
	"database/sql"

	"github.com/golobby/litequery/qb"
)

// ErrorMode decides what happens to errors returned by the database engine.
type ErrorMode int

const (
	// ErrorModeSilent swallows engine errors: terminal operations return an
	// empty result and a nil error. The failure is logged at warn level.
	ErrorModeSilent ErrorMode = iota
	// ErrorModeRaise returns engine errors to the caller as *ExecError.
	ErrorModeRaise
)

func (m ErrorMode) String() string {
	if m == ErrorModeRaise {
		return "raise"
	}
	return "silent"
}

// RenderFunc turns a statement into SQL text. qb.Render is the default.
type RenderFunc func(st qb.Statement) (string, error)

type Options struct {
	ErrorMode  ErrorMode
	Autocreate bool
	WorkDir    string
}

func defaultOptions() Options {
	return Options{
		ErrorMode:  ErrorModeSilent,
		Autocreate: true,
		WorkDir:    ".",
	}
}

type settings struct {
	Options
	logger Logger
	render RenderFunc
	db     *sql.DB
}

type Option func(s *settings)

// Debug(true) raises engine errors, Debug(false) swallows them.
func Debug(debug bool) Option {
	return func(s *settings) {
		if debug {
			s.ErrorMode = ErrorModeRaise
		} else {
			s.ErrorMode = ErrorModeSilent
		}
	}
}

func WithErrorMode(mode ErrorMode) Option {
	return func(s *settings) {
		s.ErrorMode = mode
	}
}

// Autocreate controls whether a missing database file is created on connect.
// When disabled New fails with ErrNotFound for a missing file.
func Autocreate(autocreate bool) Option {
	return func(s *settings) {
		s.Autocreate = autocreate
	}
}

// WorkDir sets the directory the database file is resolved against.
func WorkDir(dir string) Option {
	return func(s *settings) {
		s.WorkDir = dir
	}
}

func WithOptions(o Options) Option {
	return func(s *settings) {
		s.Options = o
		if s.WorkDir == "" {
			s.WorkDir = "."
		}
	}
}

func WithLogger(l Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithRenderer replaces the SQL renderer used by terminal operations.
func WithRenderer(fn RenderFunc) Option {
	return func(s *settings) {
		s.render = fn
	}
}

// WithDB makes the builder use an already opened handle instead of opening
// the database file itself.
func WithDB(db *sql.DB) Option {
	return func(s *settings) {
		s.db = db
	}
}
