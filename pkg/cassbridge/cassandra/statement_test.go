package cassandra

import (
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/codec"
)

func newTestStatement() *Statement {
	return newStatement(&Session{}, "INSERT INTO events (id, kind, at, score) VALUES (?, ?, ?, ?)", []codec.Column{
		{Name: "id", Type: codec.UUID},
		{Name: "kind", Type: codec.Text},
		{Name: "at", Type: codec.Timestamp},
		{Name: "score", Type: codec.TinyInt},
	})
}

func Test_Bind(t *testing.T) {
	id := uuid.New()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))

	stmt := newTestStatement()

	err := stmt.Bind(map[string]any{"id": id.String(), "kind": "click", "at": at, "score": 7})

	require.NoError(t, err)
	assert.Equal(t, []any{gocql.UUID(id), "click", at.UTC(), int8(7)}, stmt.Values())
}

func Test_Bind_Errors(t *testing.T) {
	testCases := []struct {
		desc   string
		values map[string]any
		err    error
		msg    string
	}{
		{"unknown column", map[string]any{"missing": 1}, ErrUnknownColumn,
			`statement "INSERT INTO events (id, kind, at, score) VALUES (?, ?, ?, ?)": unknown column "missing"`},
		{"number for text", map[string]any{"kind": 12}, codec.ErrType,
			`cannot bind int to text column "kind": numbers are not converted to text`},
		{"tinyint out of range", map[string]any{"score": 300}, codec.ErrRange, `300 is out of range for tinyint column "score"`},
		{"short uuid string", map[string]any{"id": "1234"}, codec.ErrType,
			`cannot bind string to uuid column "id": not a canonical uuid string`},
		{"valid and invalid together", map[string]any{"kind": "click", "score": 128}, codec.ErrRange,
			`128 is out of range for tinyint column "score"`},
	}

	for i, tc := range testCases {
		stmt := newTestStatement()

		err := stmt.Bind(tc.values)

		require.ErrorIs(t, err, tc.err, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.msg, err.Error(), "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, []any{nil, nil, nil, nil}, stmt.Values(), "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, []any{gocql.UnsetValue, gocql.UnsetValue, gocql.UnsetValue, gocql.UnsetValue},
			stmt.snapshot().values, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func Test_Bind_RepeatedAndQuotedNames(t *testing.T) {
	stmt := newStatement(&Session{}, "SELECT * FROM t WHERE a > ? AND a < ? AND b = ?", []codec.Column{
		{Name: "a", Type: codec.Int},
		{Name: "a", Type: codec.Int},
		{Name: "Mixed", Type: codec.Boolean},
	})

	require.NoError(t, stmt.Bind(map[string]any{"A": 7, "Mixed": true}))
	assert.Equal(t, []any{int32(7), int32(7), true}, stmt.Values())

	err := stmt.Bind(map[string]any{"mixed": false})

	require.ErrorIs(t, err, ErrUnknownColumn)
}

func Test_Bind_Nulls(t *testing.T) {
	var missing *time.Time

	stmt := newTestStatement()

	require.NoError(t, stmt.Bind(map[string]any{"id": nil, "at": missing}))
	require.NoError(t, stmt.BindNull(3))

	assert.Equal(t, []any{nil, gocql.UnsetValue, nil, nil}, stmt.snapshot().values)

	err := stmt.BindNull(4)

	var stmtErr *StatementError

	require.ErrorAs(t, err, &stmtErr)
	assert.Equal(t, 4, stmtErr.Index)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func Test_TypedBinders(t *testing.T) {
	stmt := newStatement(&Session{}, "q", []codec.Column{
		{Name: "ti", Type: codec.TinyInt},
		{Name: "si", Type: codec.SmallInt},
		{Name: "i", Type: codec.Int},
		{Name: "bi", Type: codec.BigInt},
		{Name: "f", Type: codec.Float},
		{Name: "d", Type: codec.Double},
		{Name: "b", Type: codec.Boolean},
		{Name: "t", Type: codec.Text},
		{Name: "ts", Type: codec.Timestamp},
		{Name: "u", Type: codec.UUID},
	})

	at := time.Unix(1700000000, 0)
	id := gocql.TimeUUID()

	testCases := []struct {
		desc     string
		bind     func() error
		index    int
		expected any
	}{
		{"tinyint", func() error { return stmt.BindTinyInt(0, -128) }, 0, int8(-128)},
		{"smallint", func() error { return stmt.BindSmallInt(1, 32767) }, 1, int16(32767)},
		{"int", func() error { return stmt.BindInt(2, int64(-5)) }, 2, int32(-5)},
		{"bigint", func() error { return stmt.BindBigInt(3, uint32(9)) }, 3, int64(9)},
		{"float", func() error { return stmt.BindFloat(4, 1.5) }, 4, float32(1.5)},
		{"double", func() error { return stmt.BindDouble(5, 2) }, 5, float64(2)},
		{"boolean", func() error { return stmt.BindBoolean(6, true) }, 6, true},
		{"text", func() error { return stmt.BindText(7, "hello") }, 7, "hello"},
		{"timestamp", func() error { return stmt.BindTimestamp(8, at) }, 8, at.UTC()},
		{"uuid", func() error { return stmt.BindUUID(9, id) }, 9, id},
	}

	for i, tc := range testCases {
		require.NoError(t, tc.bind(), "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.expected, stmt.Values()[tc.index], "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func Test_TypedBinders_Errors(t *testing.T) {
	stmt := newStatement(&Session{}, "q", []codec.Column{
		{Name: "score", Type: codec.TinyInt},
		{Name: "name", Type: codec.Text},
	})

	testCases := []struct {
		desc string
		bind func() error
		err  error
		msg  string
	}{
		{"wrong binder for column", func() error { return stmt.BindInt(0, 1) }, codec.ErrType,
			`cannot bind int to tinyint column "score": column is not int`},
		{"out of range", func() error { return stmt.BindTinyInt(0, 128) }, codec.ErrRange,
			`128 is out of range for tinyint column "score"`},
		{"index too large", func() error { return stmt.BindText(2, "x") }, ErrIndexOutOfRange,
			`statement "q": index out of range 2`},
		{"negative index", func() error { return stmt.BindText(-1, "x") }, ErrIndexOutOfRange,
			`statement "q": index out of range -1`},
	}

	for i, tc := range testCases {
		err := tc.bind()

		require.ErrorIs(t, err, tc.err, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.msg, err.Error(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}

	assert.Equal(t, []any{nil, nil}, stmt.Values())
}

func Test_Statement_Settings(t *testing.T) {
	s := &Session{config: Config{PageSize: 100}}
	stmt := newStatement(s, "q", []codec.Column{{Name: "id", Type: codec.Int}})

	assert.Equal(t, 100, stmt.PageSize())

	err := stmt.SetPageSize(-1)

	require.ErrorIs(t, err, codec.ErrRange)
	assert.Equal(t, 100, stmt.PageSize())

	require.NoError(t, stmt.SetPageSize(0))
	stmt.SetIdempotent(true)
	require.NoError(t, stmt.BindInt(0, 1))

	q := stmt.snapshot()

	assert.Equal(t, boundQuery{query: "q", values: []any{int32(1)}, idempotent: true}, q)

	stmt.Reset()

	assert.Equal(t, []any{gocql.UnsetValue}, stmt.snapshot().values)
	assert.Equal(t, []any{int32(1)}, q.values)
}
