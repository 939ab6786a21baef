package qb

// Pair is one column of a Payload.
type Pair struct {
	Column string
	Value  Value
}

// Payload is an ordered column -> value mapping. The order in which columns
// are set is the order they are rendered in.
type Payload struct {
	pairs []Pair
	index map[string]int
}

// P builds a payload from alternating column/value arguments:
//
//	qb.P("email", "a@b.com", "age", 30)
//
// A trailing column without value is set to NULL. Non string columns are
// rendered with ValueOf(...).String().
func P(kv ...interface{}) Payload {
	var p Payload
	for i := 0; i < len(kv); i += 2 {
		col := ValueOf(kv[i]).String()
		if i+1 < len(kv) {
			p = p.Set(col, kv[i+1])
		} else {
			p = p.Set(col, nil)
		}
	}
	return p
}

// Set stores v under column, keeping the original position if the column
// was already present. The receiver is not modified.
func (p Payload) Set(column string, v interface{}) Payload {
	out := p.clone()
	if out.index == nil {
		out.index = map[string]int{}
	}
	if idx, exists := out.index[column]; exists {
		out.pairs[idx].Value = ValueOf(v)
		return out
	}
	out.index[column] = len(out.pairs)
	out.pairs = append(out.pairs, Pair{Column: column, Value: ValueOf(v)})
	return out
}

func (p Payload) Get(column string) (Value, bool) {
	idx, exists := p.index[column]
	if !exists {
		return Value{}, false
	}
	return p.pairs[idx].Value, true
}

func (p Payload) Len() int { return len(p.pairs) }

func (p Payload) Columns() []string {
	cols := make([]string, 0, len(p.pairs))
	for _, pair := range p.pairs {
		cols = append(cols, pair.Column)
	}
	return cols
}

func (p Payload) Values() []Value {
	vals := make([]Value, 0, len(p.pairs))
	for _, pair := range p.pairs {
		vals = append(vals, pair.Value)
	}
	return vals
}

func (p Payload) Pairs() []Pair {
	return append([]Pair(nil), p.pairs...)
}

func (p Payload) clone() Payload {
	out := Payload{pairs: append([]Pair(nil), p.pairs...)}
	if p.index != nil {
		out.index = make(map[string]int, len(p.index))
		for k, v := range p.index {
			out.index[k] = v
		}
	}
	return out
}
