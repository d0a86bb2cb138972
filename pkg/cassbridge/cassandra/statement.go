package cassandra

import (
	"strings"

	"github.com/gocql/gocql"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/codec"
)

// Statement is a prepared query and its parameter buffer. The query and its parameters never change;
// the buffer is rebound freely. A Statement is not safe for concurrent use, but executing it copies
// the buffer, so rebinding right after ExecuteAsync returns does not affect that request.
type Statement struct {
	session    *Session
	query      string
	params     []codec.Column
	positions  map[string][]int
	values     []any
	bound      []bool
	pageSize   int
	idempotent bool
}

func newStatement(s *Session, query string, params []codec.Column) *Statement {
	stmt := &Statement{
		session:   s,
		query:     query,
		params:    params,
		positions: make(map[string][]int, len(params)),
		values:    make([]any, len(params)),
		bound:     make([]bool, len(params)),
		pageSize:  s.config.PageSize,
	}

	for i, p := range params {
		stmt.positions[p.Name] = append(stmt.positions[p.Name], i)
	}

	return stmt
}

func (st *Statement) Query() string {
	return st.query
}

// Params returns the name and type of every bind marker, in order.
func (st *Statement) Params() []codec.Column {
	return append([]codec.Column(nil), st.params...)
}

func (st *Statement) PageSize() int {
	return st.pageSize
}

// SetPageSize sets the rows requested per page. Zero restores the driver default.
func (st *Statement) SetPageSize(n int) error {
	if n < 0 {
		return &codec.RangeError{Type: codec.Int, Column: "page_size", Value: n}
	}

	st.pageSize = n

	return nil
}

// SetIdempotent marks the statement safe to retry, which also makes it eligible for speculative
// execution.
func (st *Statement) SetIdempotent(idempotent bool) {
	st.idempotent = idempotent
}

// Values returns the bound values by position. Unbound slots are nil.
func (st *Statement) Values() []any {
	out := make([]any, len(st.values))
	copy(out, st.values)

	return out
}

// Reset unbinds every parameter.
func (st *Statement) Reset() {
	for i := range st.values {
		st.values[i] = nil
		st.bound[i] = false
	}
}

func (st *Statement) lookup(name string) ([]int, bool) {
	if pos, ok := st.positions[name]; ok {
		return pos, true
	}

	// unquoted identifiers are case-insensitive.
	pos, ok := st.positions[strings.ToLower(name)]

	return pos, ok
}

type pending struct {
	index int
	value any
}

// Bind binds values by bind marker name. Every value is validated before any is stored, so a failed
// Bind leaves the buffer as it was. A name used by several markers binds all of them.
func (st *Statement) Bind(values map[string]any) error {
	staged := make([]pending, 0, len(values))

	for name, v := range values {
		positions, ok := st.lookup(name)
		if !ok {
			return &StatementError{Query: st.query, Name: name, Err: ErrUnknownColumn}
		}

		for _, i := range positions {
			encoded, err := codec.Encode(st.params[i].Type, v)
			if err != nil {
				return codec.WithColumn(err, st.params[i].Name)
			}

			staged = append(staged, pending{index: i, value: encoded})
		}
	}

	for _, p := range staged {
		st.values[p.index] = p.value
		st.bound[p.index] = true
	}

	return nil
}

func (st *Statement) checkIndex(index int) error {
	if index < 0 || index >= len(st.params) {
		return &StatementError{Query: st.query, Index: index, Err: ErrIndexOutOfRange}
	}

	return nil
}

func (st *Statement) bindAs(t codec.Type, index int, v any) error {
	if err := st.checkIndex(index); err != nil {
		return err
	}

	col := st.params[index]
	if col.Type != t {
		return &codec.TypeError{Type: col.Type, Column: col.Name, Value: v, Reason: "column is not " + t.String()}
	}

	encoded, err := codec.Encode(t, v)
	if err != nil {
		return codec.WithColumn(err, col.Name)
	}

	st.values[index] = encoded
	st.bound[index] = true

	return nil
}

func (st *Statement) BindTinyInt(index int, v any) error {
	return st.bindAs(codec.TinyInt, index, v)
}

func (st *Statement) BindSmallInt(index int, v any) error {
	return st.bindAs(codec.SmallInt, index, v)
}

func (st *Statement) BindInt(index int, v any) error {
	return st.bindAs(codec.Int, index, v)
}

func (st *Statement) BindBigInt(index int, v any) error {
	return st.bindAs(codec.BigInt, index, v)
}

func (st *Statement) BindFloat(index int, v any) error {
	return st.bindAs(codec.Float, index, v)
}

func (st *Statement) BindDouble(index int, v any) error {
	return st.bindAs(codec.Double, index, v)
}

func (st *Statement) BindBoolean(index int, v any) error {
	return st.bindAs(codec.Boolean, index, v)
}

func (st *Statement) BindText(index int, v any) error {
	return st.bindAs(codec.Text, index, v)
}

func (st *Statement) BindTimestamp(index int, v any) error {
	return st.bindAs(codec.Timestamp, index, v)
}

func (st *Statement) BindUUID(index int, v any) error {
	return st.bindAs(codec.UUID, index, v)
}

// BindNull binds null at index, whatever the column type.
func (st *Statement) BindNull(index int) error {
	if err := st.checkIndex(index); err != nil {
		return err
	}

	st.values[index] = nil
	st.bound[index] = true

	return nil
}

// boundQuery is what one execution sends: a copy of the buffer taken at submission.
type boundQuery struct {
	query      string
	values     []any
	pageSize   int
	pageState  []byte
	idempotent bool
}

func (st *Statement) snapshot() boundQuery {
	values := make([]any, len(st.values))

	for i, v := range st.values {
		if st.bound[i] {
			values[i] = v
		} else {
			values[i] = gocql.UnsetValue
		}
	}

	return boundQuery{
		query:      st.query,
		values:     values,
		pageSize:   st.pageSize,
		idempotent: st.idempotent,
	}
}
