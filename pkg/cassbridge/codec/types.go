// Package codec validates caller values against CQL column types and converts them to and from
// the values the driver marshals on the wire.
package codec

import "github.com/gocql/gocql"

// Type is a column type supported by the bridge.
type Type int

const (
	// Unsupported marks a column whose CQL type has no binding rules.
	Unsupported Type = iota
	TinyInt
	SmallInt
	Int
	BigInt
	Float
	Double
	Boolean
	Text
	Timestamp
	UUID
)

// String constants for column types.
const (
	typeUnsupported = "unsupported"
	typeTinyInt     = "tinyint"
	typeSmallInt    = "smallint"
	typeInt         = "int"
	typeBigInt      = "bigint"
	typeFloat       = "float"
	typeDouble      = "double"
	typeBoolean     = "boolean"
	typeText        = "text"
	typeTimestamp   = "timestamp"
	typeUUID        = "uuid"
)

func (t Type) String() string {
	switch t {
	case TinyInt:
		return typeTinyInt
	case SmallInt:
		return typeSmallInt
	case Int:
		return typeInt
	case BigInt:
		return typeBigInt
	case Float:
		return typeFloat
	case Double:
		return typeDouble
	case Boolean:
		return typeBoolean
	case Text:
		return typeText
	case Timestamp:
		return typeTimestamp
	case UUID:
		return typeUUID
	case Unsupported:
		return typeUnsupported
	default:
		return typeUnsupported
	}
}

// UnsupportedValue is the decoded value of a column whose type the bridge does not decode.
type UnsupportedValue string

// UnsupportedColumn is placed in rows for columns of unsupported types.
const UnsupportedColumn UnsupportedValue = "unsupported_column_type"

// Column is the name and type of a bind marker or a result column.
type Column struct {
	Name string
	Type Type
}

// TypeOf maps the driver's type information onto a bridge column type.
//
//nolint:exhaustive // every other CQL type is unsupported.
func TypeOf(info gocql.TypeInfo) Type {
	if info == nil {
		return Unsupported
	}

	switch info.Type() {
	case gocql.TypeTinyInt:
		return TinyInt
	case gocql.TypeSmallInt:
		return SmallInt
	case gocql.TypeInt:
		return Int
	case gocql.TypeBigInt, gocql.TypeCounter:
		return BigInt
	case gocql.TypeFloat:
		return Float
	case gocql.TypeDouble:
		return Double
	case gocql.TypeBoolean:
		return Boolean
	case gocql.TypeText, gocql.TypeVarchar, gocql.TypeAscii:
		return Text
	case gocql.TypeTimestamp:
		return Timestamp
	case gocql.TypeUUID, gocql.TypeTimeUUID:
		return UUID
	default:
		return Unsupported
	}
}

// Columns converts driver column metadata into bridge columns.
func Columns(infos []gocql.ColumnInfo) []Column {
	cols := make([]Column, 0, len(infos))

	for _, info := range infos {
		cols = append(cols, Column{Name: info.Name, Type: TypeOf(info.TypeInfo)})
	}

	return cols
}
