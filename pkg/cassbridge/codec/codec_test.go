package codec

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

type texter struct{ s string }

func (s texter) CassandraText() string { return s.s }

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

type level int

func (level) String() string { return "level" }

func Test_Encode_Integers(t *testing.T) {
	testCases := []struct {
		desc     string
		typ      Type
		value    any
		expected any
		err      error
	}{
		{"tinyint max", TinyInt, 127, int8(127), nil},
		{"tinyint min", TinyInt, -128, int8(-128), nil},
		{"tinyint above max", TinyInt, 128, nil, ErrRange},
		{"tinyint below min", TinyInt, -129, nil, ErrRange},
		{"smallint max", SmallInt, int16(math.MaxInt16), int16(math.MaxInt16), nil},
		{"smallint above max", SmallInt, 32768, nil, ErrRange},
		{"smallint below min", SmallInt, -32769, nil, ErrRange},
		{"int max", Int, int64(math.MaxInt32), int32(math.MaxInt32), nil},
		{"int min", Int, math.MinInt32, int32(math.MinInt32), nil},
		{"int above max", Int, int64(math.MaxInt32) + 1, nil, ErrRange},
		{"int below min", Int, int64(math.MinInt32) - 1, nil, ErrRange},
		{"bigint max", BigInt, int64(math.MaxInt64), int64(math.MaxInt64), nil},
		{"bigint min", BigInt, int64(math.MinInt64), int64(math.MinInt64), nil},
		{"bigint unsigned overflow", BigInt, uint64(math.MaxInt64) + 1, nil, ErrRange},
		{"bigint big above max", BigInt, new(big.Int).Add(big.NewInt(math.MaxInt64), big.NewInt(1)), nil, ErrRange},
		{"bigint big in range", BigInt, big.NewInt(42), int64(42), nil},
		{"tinyint huge big int", TinyInt, new(big.Int).Lsh(big.NewInt(1), 100), nil, ErrRange},
		{"unsigned small", Int, uint8(7), int32(7), nil},
		{"int from string", Int, "1", nil, ErrType},
		{"int from float", Int, 1.0, nil, ErrType},
		{"bigint from bool", BigInt, true, nil, ErrType},
	}

	for i, tc := range testCases {
		got, err := Encode(tc.typ, tc.value)

		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, "TEST[%d], Failed.\n%s", i, tc.desc)
			assert.Nil(t, got, "TEST[%d], Failed.\n%s", i, tc.desc)

			continue
		}

		require.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.expected, got, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func Test_Encode_Floats(t *testing.T) {
	testCases := []struct {
		desc     string
		typ      Type
		value    any
		expected any
		err      error
	}{
		{"float upper boundary", Float, 3.402820018375656e+38, float32(3.402820018375656e+38), nil},
		{"float lower boundary", Float, -3.402820018375656e+38, float32(-3.402820018375656e+38), nil},
		{"float above max", Float, 3.402820018375656e+39, nil, ErrRange},
		{"float below min", Float, -3.402820018375656e+39, nil, ErrRange},
		{"float from float64 inf", Float, math.Inf(1), nil, ErrRange},
		{"float from float32 inf", Float, float32(math.Inf(1)), float32(math.Inf(1)), nil},
		{"float from int", Float, 3, float32(3), nil},
		{"float from string", Float, "1.5", nil, ErrType},
		{"double from float32", Double, float32(1.5), 1.5, nil},
		{"double large", Double, 1.7e308, 1.7e308, nil},
		{"double from uint64", Double, uint64(math.MaxUint64), float64(math.MaxUint64), nil},
		{"double from string", Double, "1.5", nil, ErrType},
	}

	for i, tc := range testCases {
		got, err := Encode(tc.typ, tc.value)

		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, "TEST[%d], Failed.\n%s", i, tc.desc)

			continue
		}

		require.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.expected, got, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func Test_Encode_FloatNaN(t *testing.T) {
	got, err := Encode(Float, math.NaN())

	require.NoError(t, err)

	f, ok := got.(float32)
	require.True(t, ok)
	assert.True(t, math.IsNaN(float64(f)))
}

func Test_Encode_TextBooleanUUID(t *testing.T) {
	id := "123e4567-e89b-12d3-a456-426614174000"
	parsed := uuid.MustParse(id)

	testCases := []struct {
		desc     string
		typ      Type
		value    any
		expected any
		err      error
	}{
		{"text string", Text, "hello", "hello", nil},
		{"text named string", Text, label("name"), "name", nil},
		{"text texter", Text, texter{s: "custom"}, "custom", nil},
		{"text plain stringer", Text, stringer{s: "custom"}, nil, ErrType},
		{"text number", Text, 42, nil, ErrType},
		{"text big int", Text, big.NewInt(42), nil, ErrType},
		{"text big float", Text, big.NewFloat(1.5), nil, ErrType},
		{"text big rat", Text, big.NewRat(1, 2), nil, ErrType},
		{"text time", Text, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), nil, ErrType},
		{"text time pointer", Text, &time.Time{}, nil, ErrType},
		{"text numeric stringer", Text, level(1), nil, ErrType},
		{"text bytes", Text, []byte("x"), nil, ErrType},
		{"boolean true", Boolean, true, true, nil},
		{"boolean from int", Boolean, 1, nil, ErrType},
		{"boolean from string", Boolean, "true", nil, ErrType},
		{"uuid string", UUID, id, gocql.UUID(parsed), nil},
		{"uuid google", UUID, parsed, gocql.UUID(parsed), nil},
		{"uuid gocql", UUID, gocql.UUID(parsed), gocql.UUID(parsed), nil},
		{"uuid short string", UUID, "123e4567", nil, ErrType},
		{"uuid without dashes", UUID, "123e4567e89b12d3a456426614174000", nil, ErrType},
		{"uuid malformed", UUID, "123e4567-e89b-12d3-a456-42661417400z", nil, ErrType},
		{"uuid from int", UUID, 12, nil, ErrType},
		{"unsupported column", Unsupported, 1, nil, ErrType},
	}

	for i, tc := range testCases {
		got, err := Encode(tc.typ, tc.value)

		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, "TEST[%d], Failed.\n%s", i, tc.desc)

			continue
		}

		require.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.expected, got, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func Test_Encode_Timestamp(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	local := time.Date(2024, 3, 1, 10, 30, 0, 0, loc)
	utc := time.Date(2024, 3, 1, 5, 30, 0, 0, time.UTC)

	testCases := []struct {
		desc     string
		value    any
		expected any
		err      error
	}{
		{"time value", local, utc, nil},
		{"time pointer", &local, utc, nil},
		{"civil datetime", civil.DateTimeOf(utc), utc, nil},
		{"civil date", civil.Date{Year: 2024, Month: time.March, Day: 1}, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil},
		{"unix seconds", 1709271000, nil, ErrType},
		{"string", "2024-03-01", nil, ErrType},
	}

	for i, tc := range testCases {
		got, err := Encode(Timestamp, tc.value)

		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, "TEST[%d], Failed.\n%s", i, tc.desc)

			continue
		}

		require.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.True(t, tc.expected.(time.Time).Equal(got.(time.Time)), "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, time.UTC, got.(time.Time).Location(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func Test_Encode_Null(t *testing.T) {
	var (
		nilTime *time.Time
		nilInt  *int
	)

	for _, typ := range []Type{TinyInt, SmallInt, Int, BigInt, Float, Double, Boolean, Text, Timestamp, UUID} {
		for _, v := range []any{nil, nilTime, nilInt} {
			got, err := Encode(typ, v)

			require.NoError(t, err, "type %s", typ)
			assert.Nil(t, got, "type %s", typ)
		}
	}
}

func Test_Decode(t *testing.T) {
	id := gocql.UUID(uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"))
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.FixedZone("UTC+5", 5*60*60))

	testCases := []struct {
		desc     string
		typ      Type
		fill     func(dest any)
		expected any
	}{
		{"tinyint", TinyInt, func(d any) { v := int8(-128); *d.(**int8) = &v }, int8(-128)},
		{"smallint", SmallInt, func(d any) { v := int16(32767); *d.(**int16) = &v }, int16(32767)},
		{"int", Int, func(d any) { v := int32(7); *d.(**int32) = &v }, int32(7)},
		{"bigint", BigInt, func(d any) { v := int64(math.MaxInt64); *d.(**int64) = &v }, int64(math.MaxInt64)},
		{"float", Float, func(d any) { v := float32(1.5); *d.(**float32) = &v }, float32(1.5)},
		{"double", Double, func(d any) { v := 2.5; *d.(**float64) = &v }, 2.5},
		{"boolean", Boolean, func(d any) { v := true; *d.(**bool) = &v }, true},
		{"text", Text, func(d any) { v := "hi"; *d.(**string) = &v }, "hi"},
		{"timestamp", Timestamp, func(d any) { *d.(**time.Time) = &ts }, ts.UTC()},
		{"uuid", UUID, func(d any) { *d.(**gocql.UUID) = &id }, "123e4567-e89b-12d3-a456-426614174000"},
		{"null int", Int, func(any) {}, nil},
		{"null text", Text, func(any) {}, nil},
		{"null uuid", UUID, func(any) {}, nil},
		{"null timestamp", Timestamp, func(any) {}, nil},
	}

	for i, tc := range testCases {
		dest := Dest(tc.typ)
		tc.fill(dest)

		assert.Equal(t, tc.expected, Decode(tc.typ, dest), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func Test_Decode_Unsupported(t *testing.T) {
	assert.Nil(t, Dest(Unsupported))
	assert.Equal(t, UnsupportedColumn, Decode(Unsupported, nil))
}

func Test_TypeOf(t *testing.T) {
	testCases := []struct {
		info     gocql.TypeInfo
		expected Type
	}{
		{gocql.NewNativeType(4, gocql.TypeTinyInt, ""), TinyInt},
		{gocql.NewNativeType(4, gocql.TypeSmallInt, ""), SmallInt},
		{gocql.NewNativeType(4, gocql.TypeInt, ""), Int},
		{gocql.NewNativeType(4, gocql.TypeBigInt, ""), BigInt},
		{gocql.NewNativeType(4, gocql.TypeCounter, ""), BigInt},
		{gocql.NewNativeType(4, gocql.TypeFloat, ""), Float},
		{gocql.NewNativeType(4, gocql.TypeDouble, ""), Double},
		{gocql.NewNativeType(4, gocql.TypeBoolean, ""), Boolean},
		{gocql.NewNativeType(4, gocql.TypeVarchar, ""), Text},
		{gocql.NewNativeType(4, gocql.TypeAscii, ""), Text},
		{gocql.NewNativeType(4, gocql.TypeTimestamp, ""), Timestamp},
		{gocql.NewNativeType(4, gocql.TypeTimeUUID, ""), UUID},
		{gocql.NewNativeType(4, gocql.TypeBlob, ""), Unsupported},
		{gocql.NewNativeType(4, gocql.TypeDecimal, ""), Unsupported},
		{nil, Unsupported},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.expected, TypeOf(tc.info), "TEST[%d], Failed.\n", i)
	}
}

func Test_Errors(t *testing.T) {
	err := WithColumn(&RangeError{Type: TinyInt, Value: 300}, "age")

	var re *RangeError

	require.True(t, errors.As(err, &re))
	assert.Equal(t, "age", re.Column)
	assert.Equal(t, `300 is out of range for tinyint column "age"`, err.Error())
	assert.NotErrorIs(t, err, ErrType)

	err = WithColumn(&TypeError{Type: Text, Value: 1, Reason: "numbers are not converted to text"}, "name")
	assert.Equal(t, `cannot bind int to text column "name": numbers are not converted to text`, err.Error())
	assert.ErrorIs(t, err, ErrType)

	plain := errors.New("other")
	assert.Equal(t, plain, WithColumn(plain, "x"))
}
