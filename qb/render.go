package qb

// Render maps a statement to its SQL text. Values and conditions are
// concatenated into the query without escaping or parameter binding.
func Render(st Statement) (string, error) {
	switch st.Kind {
	case KindSelect:
		return Select{
			Table:     st.Table,
			Fields:    st.Fields,
			Where:     st.Condition,
			OrderBy:   st.OrderColumn,
			Direction: st.Direction(),
		}.ToSql()
	case KindInsert:
		return Insert{Into: st.Table, Payload: st.Payload}.ToSql()
	case KindUpdate:
		return Update{Table: st.Table, Set: st.Payload, Where: st.Condition}.ToSql()
	case KindDelete:
		return Delete{From: st.Table, Where: st.Condition}.ToSql()
	case KindNone:
		return "", invalidState("no query configured")
	default:
		return "", invalidState("unknown query type %q", st.Kind)
	}
}
