package litequery

import "github.com/golobby/litequery/qb"

var (
	ErrNotFound         = qb.ErrNotFound
	ErrInvalidArgument  = qb.ErrInvalidArgument
	ErrInvalidState     = qb.ErrInvalidState
	ErrExecutionFailure = qb.ErrExecutionFailure
)

type ExecError = qb.ExecError
