package qb

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

type ValueKind int

const (
	KindText ValueKind = iota
	KindInteger
	KindFloat
	KindNull
	KindBoolean
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// TimeFormat is the layout time.Time values are rendered with.
const TimeFormat = "2006-01-02 15:04:05"

// Value is a single payload entry.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
}

func Text(s string) Value { return Value{kind: KindText, s: s} }
func Int(i int64) Value   { return Value{kind: KindInteger, i: i} }
func Null() Value         { return Value{kind: KindNull} }
func Bool(b bool) Value   { return Value{kind: KindBoolean, b: b} }

// Float maps NaN to Null, which is also what SQLite stores for it.
func Float(f float64) Value {
	if math.IsNaN(f) {
		return Null()
	}
	return Value{kind: KindFloat, f: f}
}

// ValueOf converts a Go value into a Value. Types without a direct mapping
// fall back to their fmt.Sprint text.
func ValueOf(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case string:
		return Text(t)
	case []byte:
		if t == nil {
			return Null()
		}
		return Text(string(t))
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return unsigned(uint64(t))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return unsigned(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case time.Time:
		return Text(t.Format(TimeFormat))
	case error:
		return Text(t.Error())
	case fmt.Stringer:
		return Text(t.String())
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Null()
		}
		return ValueOf(rv.Elem().Interface())
	}
	return Text(fmt.Sprint(v))
}

// unsigned keeps values above math.MaxInt64 as their decimal text.
func unsigned(u uint64) Value {
	if u > math.MaxInt64 {
		return Text(strconv.FormatUint(u, 10))
	}
	return Int(int64(u))
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// String returns the bare textual form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.s
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		switch {
		case math.IsInf(v.f, 1):
			return "9e999"
		case math.IsInf(v.f, -1):
			return "-9e999"
		}
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBoolean:
		if v.b {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

// Literal returns the value as an SQL literal. Text is wrapped in single
// quotes as is: embedded quotes are NOT escaped, so caller supplied text can
// break out of the literal (SQL injection). Kept for parity with the PHP
// class this package replaces; see WithRenderer for swapping in a safer renderer.
func (v Value) Literal() string {
	switch v.kind {
	case KindText:
		return "'" + v.s + "'"
	case KindNull:
		return "NULL"
	default:
		return v.String()
	}
}

// Interface returns the Go value held by v.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindText:
		return v.s
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindBoolean:
		return v.b
	default:
		return nil
	}
}
