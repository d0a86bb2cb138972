package codec

import (
	"time"

	"github.com/gocql/gocql"
)

// Dest returns a scan destination for a column of type t. Nullable columns scan into pointers to
// pointers so that null decodes as nil. Unsupported columns have no destination; the driver skips
// a nil destination.
func Dest(t Type) any {
	switch t {
	case TinyInt:
		return new(*int8)
	case SmallInt:
		return new(*int16)
	case Int:
		return new(*int32)
	case BigInt:
		return new(*int64)
	case Float:
		return new(*float32)
	case Double:
		return new(*float64)
	case Boolean:
		return new(*bool)
	case Text:
		return new(*string)
	case Timestamp:
		return new(*time.Time)
	case UUID:
		return new(*gocql.UUID)
	case Unsupported:
		return nil
	}

	return nil
}

// Decode converts a destination filled by the driver into the bridge value for t.
func Decode(t Type, dest any) any {
	switch d := dest.(type) {
	case **int8:
		return deref(d)
	case **int16:
		return deref(d)
	case **int32:
		return deref(d)
	case **int64:
		return deref(d)
	case **float32:
		return deref(d)
	case **float64:
		return deref(d)
	case **bool:
		return deref(d)
	case **string:
		return deref(d)
	case **time.Time:
		if *d == nil {
			return nil
		}

		return (*d).UTC()
	case **gocql.UUID:
		if *d == nil {
			return nil
		}

		return (*d).String()
	}

	if t == Unsupported {
		return UnsupportedColumn
	}

	return nil
}

func deref[T any](p **T) any {
	if *p == nil {
		return nil
	}

	return **p
}
