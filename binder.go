package litequery

import "database/sql"

// Row is one result row keyed by the column names reported by the engine.
type Row map[string]interface{}

// bindToMap materialises rows. A positive limit stops reading after that
// many rows.
func bindToMap(rows *sql.Rows, limit int) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	ms := []Row{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		err = rows.Scan(ptrs...)
		if err != nil {
			return nil, err
		}
		m := Row{}
		for i, col := range cols {
			if b, isBytes := values[i].([]byte); isBytes {
				m[col] = string(b)
				continue
			}
			m[col] = values[i]
		}

		ms = append(ms, m)
		if limit > 0 && len(ms) >= limit {
			break
		}
	}
	return ms, rows.Err()
}
