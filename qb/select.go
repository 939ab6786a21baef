package qb

import (
	"fmt"
	"strings"
)

type Select struct {
	Table     string
	Fields    FieldSpec
	Where     string
	OrderBy   string
	Direction string
}

func (s Select) ToSql() (string, error) {
	if s.Table == "" {
		return "", invalidState("table name cannot be empty")
	}
	sections := []string{
		"SELECT",
		s.Fields.String(),
		"FROM",
		quoteIdent(s.Table),
	}

	if s.Where != "" {
		sections = append(sections, "WHERE", s.Where)
	}

	if s.OrderBy != "" {
		dir := strings.ToUpper(s.Direction)
		if dir == "" {
			dir = ASC
		}
		sections = append(sections, fmt.Sprintf("ORDER BY %s %s", quoteIdent(s.OrderBy), dir))
	}

	return strings.Join(sections, " "), nil
}
