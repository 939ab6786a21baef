package qb

import (
	"fmt"
	"strings"
)

type Insert struct {
	Into    string
	Payload Payload
}

// ToSql renders column names and values as single-quoted lists. Nothing is
// escaped: a value containing a quote produces broken, or injected, SQL.
func (i Insert) ToSql() (string, error) {
	if i.Into == "" {
		return "", invalidState("table name cannot be empty")
	}
	if i.Payload.Len() == 0 {
		return "", invalidState("there is no data to insert")
	}

	var cols, vals []string
	for _, pair := range i.Payload.pairs {
		cols = append(cols, "'"+pair.Column+"'")
		if pair.Value.IsNull() {
			vals = append(vals, "NULL")
			continue
		}
		vals = append(vals, "'"+pair.Value.String()+"'")
	}

	return fmt.Sprintf("INSERT INTO %s(%s) VALUES(%s);",
		i.Into,
		strings.Join(cols, ", "),
		strings.Join(vals, ", "),
	), nil
}
