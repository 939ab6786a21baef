package qb

import "strings"

type Kind int

const (
	KindNone Kind = iota
	KindSelect
	KindInsert
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSelect:
		return "select"
	case KindInsert:
		return "insert"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

const (
	ASC  = "ASC"
	DESC = "DESC"
)

// Statement is the query under construction. The zero value is the None
// statement.
type Statement struct {
	Kind           Kind
	Table          string
	Fields         FieldSpec
	Payload        Payload
	Condition      string
	OrderColumn    string
	OrderDirection string
}

// Reset returns s to the None state.
func (s *Statement) Reset() {
	*s = Statement{}
}

func (s Statement) IsZero() bool {
	return s.Kind == KindNone &&
		s.Table == "" &&
		s.Fields.IsWildcard() && s.Fields.raw == "" && s.Fields.columns == nil &&
		s.Payload.Len() == 0 &&
		s.Condition == "" &&
		s.OrderColumn == "" &&
		s.OrderDirection == ""
}

// Direction returns the upper-cased order direction, ASC when unset.
func (s Statement) Direction() string {
	if s.OrderDirection == "" {
		return ASC
	}
	return strings.ToUpper(s.OrderDirection)
}
