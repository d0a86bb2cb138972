package cassandra

import (
	"context"
	"maps"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/codec"
)

// Row maps column names to decoded values. Null columns are nil.
type Row map[string]any

// Result is one page of rows. It never changes once returned; NextPage fetches the following page
// into a new Result.
type Result struct {
	session   *Session
	query     boundQuery
	columns   []codec.Column
	rows      []Row
	pageState []byte
}

// Rows returns a copy of the rows of this page.
func (r *Result) Rows() []Row {
	out := make([]Row, len(r.rows))

	for i, row := range r.rows {
		out[i] = maps.Clone(row)
	}

	return out
}

// Each calls fn for every row of this page, in order, until fn returns false. It can be called any
// number of times.
func (r *Result) Each(fn func(Row) bool) {
	for _, row := range r.rows {
		if !fn(maps.Clone(row)) {
			return
		}
	}
}

func (r *Result) Len() int {
	return len(r.rows)
}

func (r *Result) Columns() []codec.Column {
	return append([]codec.Column(nil), r.columns...)
}

// PageState is the continuation token of the next page, or nil on the last page.
func (r *Result) PageState() []byte {
	return append([]byte(nil), r.pageState...)
}

func (r *Result) HasMorePages() bool {
	return len(r.pageState) > 0
}

// NextPage fetches the following page. It returns nil and no error when this is the last page.
func (r *Result) NextPage(ctx context.Context) (*Result, error) {
	return r.NextPageAsync(ctx).Await(ctx)
}

// NextPageAsync is NextPage without blocking. On the last page the Future succeeds with nil.
func (r *Result) NextPageAsync(ctx context.Context) *Future[*Result] {
	if !r.HasMorePages() || r.session == nil {
		f := newFuture[*Result](nil)
		f.succeed(nil)

		return f
	}

	q := r.query
	q.pageState = r.PageState()

	return r.session.submit(ctx, q)
}
