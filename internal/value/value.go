// Package value defines the typed literal model used for bind parameters.
// A Value is never rendered as inline SQL text; it always renders as a
// dialect placeholder while appending itself to a caller-owned Params list,
// which is what keeps user data out of the generated SQL.
package value

import (
	"bytes"
	"time"
)

// Kind identifies the concrete type held by a Value.
type Kind int

const (
	// KindNull is the SQL NULL literal.
	KindNull Kind = iota
	// KindBool holds a boolean.
	KindBool
	// KindInt16 holds a 16-bit signed integer.
	KindInt16
	// KindInt32 holds a 32-bit signed integer.
	KindInt32
	// KindInt64 holds a 64-bit signed integer.
	KindInt64
	// KindFloat32 holds a 32-bit float.
	KindFloat32
	// KindFloat64 holds a 64-bit float.
	KindFloat64
	// KindText holds a string.
	KindText
	// KindBinary holds a byte slice.
	KindBinary
	// KindDate holds a calendar date without time zone.
	KindDate
	// KindTime holds a wall-clock time without time zone.
	KindTime
	// KindDateTime holds a date and time without time zone.
	KindDateTime
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged union over the supported literal types.
// The zero Value is NULL.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	raw  []byte
	t    time.Time
}

// Null returns the SQL NULL value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int16 wraps a 16-bit integer.
func Int16(v int16) Value { return Value{kind: KindInt16, i: int64(v)} }

// Int32 wraps a 32-bit integer.
func Int32(v int32) Value { return Value{kind: KindInt32, i: int64(v)} }

// Int64 wraps a 64-bit integer.
func Int64(v int64) Value { return Value{kind: KindInt64, i: v} }

// Float32 wraps a 32-bit float.
func Float32(v float32) Value { return Value{kind: KindFloat32, f: float64(v)} }

// Float64 wraps a 64-bit float.
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }

// Text wraps a string.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Binary wraps a byte slice. The slice is not copied; callers must not
// mutate it after handing it over.
func Binary(v []byte) Value { return Value{kind: KindBinary, raw: v} }

// Date wraps the date portion of t.
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// Time wraps the wall-clock portion of t.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// DateTime wraps t as a naive timestamp.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// Kind returns the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Native returns the Go representation suitable for positional binding
// through database/sql (nil, bool, int64, float64, string, []byte, time.Time).
func (v Value) Native() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt16, KindInt32, KindInt64:
		return v.i
	case KindFloat32, KindFloat64:
		return v.f
	case KindText:
		return v.s
	case KindBinary:
		return v.raw
	case KindDate, KindTime, KindDateTime:
		return v.t
	default:
		return nil
	}
}

// Equal reports structural equality. It is used for deduplication and in
// tests; SQL semantics never depend on it.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt16, KindInt32, KindInt64:
		return v.i == o.i
	case KindFloat32, KindFloat64:
		return v.f == o.f
	case KindText:
		return v.s == o.s
	case KindBinary:
		return bytes.Equal(v.raw, o.raw)
	case KindDate, KindTime, KindDateTime:
		return v.t.Equal(o.t)
	default:
		return false
	}
}

// Params is the ordered bind-parameter accumulator threaded through every
// render path. Placeholder emission order must exactly equal append order,
// so the whole render call tree shares a single Params instance.
type Params struct {
	values []Value
}

// Push appends v and returns its 1-based position, which is the number
// used by numbered placeholder dialects.
func (p *Params) Push(v Value) int {
	p.values = append(p.values, v)
	return len(p.values)
}

// Len returns the number of accumulated parameters.
func (p *Params) Len() int { return len(p.values) }

// Values returns the accumulated parameters in binding order.
// The returned slice is owned by the accumulator.
func (p *Params) Values() []Value { return p.values }

// Native returns the accumulated parameters converted for driver binding.
func (p *Params) Native() []any {
	out := make([]any, len(p.values))
	for i, v := range p.values {
		out[i] = v.Native()
	}
	return out
}
