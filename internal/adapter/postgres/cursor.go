package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// Cursor streams the result of a query through a server-side cursor,
// pulling fetchSize rows per round trip and converting each scanned row R
// into T. Every FETCH is read to completion, so other statements can run on
// the same transaction while the cursor stays open.
//
// A cursor must be opened inside a transaction (see TxManager.RunInSnapshot).
type Cursor[R, T any] struct {
	q         Querier
	ident     string
	fetchSize int
	convert   func(R) T

	buf       []R
	pos       int
	exhausted bool
	closed    bool
}

// OpenCursor declares a NO SCROLL cursor named name for sql. Rows are
// scanned into R with pgxscan, so R is a struct with db tags.
func OpenCursor[R, T any](
	ctx context.Context,
	q Querier,
	name string,
	fetchSize int,
	convert func(R) T,
	sql string,
	args ...any,
) (*Cursor[R, T], error) {
	if fetchSize <= 0 {
		return nil, fmt.Errorf("cursor %s: fetch size must be positive (got %d)", name, fetchSize)
	}

	ident := pgx.Identifier{name}.Sanitize()
	if _, err := q.Exec(ctx, "DECLARE "+ident+" NO SCROLL CURSOR FOR "+sql, args...); err != nil {
		return nil, fmt.Errorf("declare cursor %s: %w", name, err)
	}

	return &Cursor[R, T]{
		q:         q,
		ident:     ident,
		fetchSize: fetchSize,
		convert:   convert,
	}, nil
}

// Next returns the next row. The boolean is false once the cursor is
// exhausted or closed.
func (c *Cursor[R, T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if c.pos >= len(c.buf) {
		if c.exhausted || c.closed {
			return zero, false, nil
		}
		if err := c.fetch(ctx); err != nil {
			return zero, false, err
		}
		if len(c.buf) == 0 {
			return zero, false, nil
		}
	}

	row := c.buf[c.pos]
	c.pos++
	return c.convert(row), true, nil
}

func (c *Cursor[R, T]) fetch(ctx context.Context) error {
	rows, err := c.q.Query(ctx, fmt.Sprintf("FETCH FORWARD %d FROM %s", c.fetchSize, c.ident))
	if err != nil {
		return fmt.Errorf("fetch from %s: %w", c.ident, err)
	}

	var batch []R
	if err := pgxscan.ScanAll(&batch, rows); err != nil {
		return fmt.Errorf("scan batch from %s: %w", c.ident, err)
	}

	c.buf = batch
	c.pos = 0
	if len(batch) < c.fetchSize {
		c.exhausted = true
	}
	return nil
}

// Close releases the server-side cursor. It is safe to call more than once.
func (c *Cursor[R, T]) Close(ctx context.Context) error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.buf = nil

	if _, err := c.q.Exec(ctx, "CLOSE "+c.ident); err != nil {
		return fmt.Errorf("close cursor %s: %w", c.ident, err)
	}
	return nil
}
