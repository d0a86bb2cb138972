package codec

import (
	"math"
	"math/big"
	"reflect"
	"time"

	"github.com/gocql/gocql"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

const canonicalUUIDLen = 36

// Encode validates v against t and returns the value the driver marshals for that column type.
// A nil value (untyped nil or a typed nil pointer) encodes as null for every type.
func Encode(t Type, v any) (any, error) {
	if IsNull(v) {
		return nil, nil
	}

	switch t {
	case TinyInt:
		return integer(t, v, math.MinInt8, math.MaxInt8, func(n int64) any { return int8(n) })
	case SmallInt:
		return integer(t, v, math.MinInt16, math.MaxInt16, func(n int64) any { return int16(n) })
	case Int:
		return integer(t, v, math.MinInt32, math.MaxInt32, func(n int64) any { return int32(n) })
	case BigInt:
		return integer(t, v, math.MinInt64, math.MaxInt64, func(n int64) any { return n })
	case Float:
		return encodeFloat(v)
	case Double:
		return encodeDouble(v)
	case Boolean:
		b, ok := v.(bool)
		if !ok {
			return nil, &TypeError{Type: t, Value: v}
		}

		return b, nil
	case Text:
		return encodeText(v)
	case Timestamp:
		return encodeTimestamp(v)
	case UUID:
		return encodeUUID(v)
	case Unsupported:
		return nil, &TypeError{Type: t, Value: v, Reason: "column type cannot be bound"}
	}

	return nil, &TypeError{Type: t, Value: v, Reason: "unknown column type"}
}

// IsNull reports whether v is an untyped nil or a typed nil pointer.
func IsNull(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func isInteger(k reflect.Kind) bool {
	switch k { //nolint:exhaustive // only integer kinds matter here.
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	return isInteger(k) || k == reflect.Float32 || k == reflect.Float64 ||
		k == reflect.Complex64 || k == reflect.Complex128
}

// toInt64 converts any integer shape to int64. ok is false for non-integer shapes; inRange is false
// for integers that do not fit in 64 signed bits.
func toInt64(v any) (n int64, ok, inRange bool) {
	if b, isBig := v.(*big.Int); isBig {
		if !b.IsInt64() {
			return 0, true, false
		}

		return b.Int64(), true, true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive // non-integer kinds fall through to the default.
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, true, false
		}

		return int64(u), true, true
	default:
		return 0, false, false
	}
}

func integer(t Type, v any, low, high int64, narrow func(int64) any) (any, error) {
	n, ok, inRange := toInt64(v)
	if !ok {
		return nil, &TypeError{Type: t, Value: v}
	}

	if !inRange || n < low || n > high {
		return nil, &RangeError{Type: t, Value: v}
	}

	return narrow(n), nil
}

func encodeFloat(v any) (any, error) {
	switch f := v.(type) {
	case float32:
		return f, nil
	case float64:
		if math.IsNaN(f) {
			return float32(f), nil
		}

		if math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
			return nil, &RangeError{Type: Float, Value: v}
		}

		return float32(f), nil
	}

	n, ok, inRange := toInt64(v)
	if !ok {
		return nil, &TypeError{Type: Float, Value: v}
	}

	if !inRange {
		return nil, &RangeError{Type: Float, Value: v}
	}

	return float32(n), nil
}

func encodeDouble(v any) (any, error) {
	switch f := v.(type) {
	case float32:
		return float64(f), nil
	case float64:
		return f, nil
	}

	if b, ok := v.(*big.Int); ok {
		f, _ := new(big.Float).SetInt(b).Float64()
		return f, nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive // non-integer kinds are rejected below.
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	default:
		return nil, &TypeError{Type: Double, Value: v}
	}
}

// Texter is implemented by values that convert themselves to a text column value.
// Values that only implement fmt.Stringer are rejected.
type Texter interface {
	CassandraText() string
}

func encodeText(v any) (any, error) {
	if t, ok := v.(Texter); ok {
		return t.CassandraText(), nil
	}

	rv := reflect.ValueOf(v)

	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), nil
	case isNumeric(rv.Kind()):
		return nil, &TypeError{Type: Text, Value: v, Reason: "numbers are not converted to text"}
	}

	switch v.(type) {
	case *big.Int, *big.Float, *big.Rat, big.Int, big.Float, big.Rat:
		return nil, &TypeError{Type: Text, Value: v, Reason: "numbers are not converted to text"}
	}

	return nil, &TypeError{Type: Text, Value: v}
}

func encodeTimestamp(v any) (any, error) {
	switch ts := v.(type) {
	case time.Time:
		return ts.UTC(), nil
	case *time.Time:
		return ts.UTC(), nil
	case civil.DateTime:
		return ts.In(time.UTC), nil
	case civil.Date:
		return ts.In(time.UTC), nil
	default:
		return nil, &TypeError{Type: Timestamp, Value: v}
	}
}

func encodeUUID(v any) (any, error) {
	switch id := v.(type) {
	case gocql.UUID:
		return id, nil
	case uuid.UUID:
		return gocql.UUID(id), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return nil, &TypeError{Type: UUID, Value: v}
	}

	s := rv.String()
	if len(s) != canonicalUUIDLen {
		return nil, &TypeError{Type: UUID, Value: v, Reason: "not a canonical uuid string"}
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, &TypeError{Type: UUID, Value: v, Reason: err.Error()}
	}

	return gocql.UUID(id), nil
}
