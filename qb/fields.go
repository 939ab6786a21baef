package qb

import "strings"

type fieldsKind int

const (
	fieldsWildcard fieldsKind = iota
	fieldsRaw
	fieldsColumns
)

// FieldSpec is the projection of a SELECT: the wildcard, a raw expression or
// a list of column names.
type FieldSpec struct {
	kind    fieldsKind
	raw     string
	columns []string
}

var Wildcard = FieldSpec{kind: fieldsWildcard}

func Raw(expr string) FieldSpec {
	return FieldSpec{kind: fieldsRaw, raw: expr}
}

// Columns returns the wildcard when no column, or a lone "*", is given.
func Columns(columns ...string) FieldSpec {
	if len(columns) == 0 || (len(columns) == 1 && columns[0] == "*") {
		return Wildcard
	}
	return FieldSpec{kind: fieldsColumns, columns: append([]string(nil), columns...)}
}

func (f FieldSpec) IsWildcard() bool { return f.kind == fieldsWildcard }

func (f FieldSpec) String() string {
	switch f.kind {
	case fieldsRaw:
		return f.raw
	case fieldsColumns:
		quoted := make([]string, 0, len(f.columns))
		for _, col := range f.columns {
			quoted = append(quoted, quoteIdent(col))
		}
		return strings.Join(quoted, ", ")
	default:
		return "*"
	}
}

// quoteIdent wraps name in back-ticks. Back-ticks inside name are not escaped.
func quoteIdent(name string) string {
	return "`" + name + "`"
}
