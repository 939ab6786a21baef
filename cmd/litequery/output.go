package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/golobby/litequery/qb"
)

// printRows renders rows as a table. Without explicit columns the header is
// the sorted union of the row keys.
func printRows(cmd *cobra.Command, columns []string, rows []map[string]interface{}) {
	if len(columns) == 0 {
		seen := map[string]bool{}
		for _, r := range rows {
			for k := range r {
				if !seen[k] {
					seen[k] = true
					columns = append(columns, k)
				}
			}
		}
		sort.Strings(columns)
	}

	w := table.NewWriter()
	header := table.Row{}
	for _, c := range columns {
		header = append(header, c)
	}
	w.AppendHeader(header)
	for _, r := range rows {
		row := table.Row{}
		for _, c := range columns {
			v, ok := r[c]
			if !ok || v == nil {
				row = append(row, "NULL")
				continue
			}
			row = append(row, v)
		}
		w.AppendRow(row)
	}
	fmt.Fprintln(cmd.OutOrStdout(), w.Render())
	fmt.Fprintf(cmd.OutOrStdout(), "%d rows\n", len(rows))
}

// parseAssignments turns col=value arguments into a payload. Values that
// parse as integers, floats, booleans or null keep that type.
func parseAssignments(args []string) (qb.Payload, error) {
	var p qb.Payload
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return p, fmt.Errorf("%w: expected COLUMN=VALUE, got %q", qb.ErrInvalidArgument, arg)
		}
		p = p.Set(parts[0], parseValue(parts[1]))
	}
	return p, nil
}

// parseValue reads s as an integer, a float, a boolean or null, in that
// order, and falls back to text. Spellings strconv accepts beyond plain
// decimals (nan, inf, digit separators) stay text.
func parseValue(s string) qb.Value {
	if strings.Contains(s, "_") {
		return qb.Text(s)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return qb.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return qb.Float(f)
	}
	switch strings.ToLower(s) {
	case "true":
		return qb.Bool(true)
	case "false":
		return qb.Bool(false)
	case "null":
		return qb.Null()
	}
	return qb.Text(s)
}
