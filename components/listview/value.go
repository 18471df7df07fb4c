package listview

import (
	"cmp"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the native type carried by a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindBool
	KindNumber
	KindString
	KindTime
)

// Value is a typed record field used for searching, filtering, and ordering.
// The zero Value is missing and sorts before every other value.
type Value struct {
	kind Kind
	str  string
	num  float64
	ts   time.Time
}

// MissingValue reports an absent field.
func MissingValue() Value { return Value{} }

// StringValue wraps a string field.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a numeric field.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// IntValue wraps an integer field.
func IntValue(i int) Value { return NumberValue(float64(i)) }

// TimeValue wraps a timestamp. Zero times are treated as missing.
func TimeValue(t time.Time) Value {
	if t.IsZero() {
		return Value{}
	}
	return Value{kind: KindTime, ts: t}
}

// BoolValue wraps a boolean field.
func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the field was absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Text is the string form matched by search terms and filter values.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindTime:
		return v.ts.Format(time.RFC3339)
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	default:
		return ""
	}
}

// Interface returns the value as a JSON friendly Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindTime:
		return v.ts
	case KindBool:
		return v.num != 0
	default:
		return nil
	}
}

// Compare orders two values using the native ordering of their kind.
// Missing values are lowest; mismatched kinds fall back to kind order.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case KindString:
		return strings.Compare(a.str, b.str)
	case KindNumber, KindBool:
		return cmp.Compare(a.num, b.num)
	case KindTime:
		return a.ts.Compare(b.ts)
	default:
		return 0
	}
}
