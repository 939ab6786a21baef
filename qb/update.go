package qb

import (
	"fmt"
	"strings"
)

type Update struct {
	Table string
	Set   Payload
	Where string
}

func (u Update) ToSql() (string, error) {
	if u.Table == "" {
		return "", invalidState("table name cannot be empty")
	}
	if u.Set.Len() == 0 {
		return "", invalidState("there is no data set to update, use Values to add data")
	}
	if u.Where == "" {
		return "", invalidState("conditions are required to perform UPDATE, use Where to add them")
	}

	var pairs []string
	for _, pair := range u.Set.pairs {
		pairs = append(pairs, fmt.Sprintf("%s=%s", pair.Column, pair.Value.Literal()))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s", u.Table, strings.Join(pairs, ", "), u.Where), nil
}
