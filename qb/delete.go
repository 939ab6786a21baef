package qb

import "fmt"

type Delete struct {
	From  string
	Where string
}

func (d Delete) ToSql() (string, error) {
	if d.From == "" {
		return "", invalidState("table name cannot be empty")
	}
	if d.Where == "" {
		return "", invalidState("conditions are required to perform DELETE, use Where to add them")
	}
	return fmt.Sprintf("DELETE FROM %s WHERE %s", d.From, d.Where), nil
}
