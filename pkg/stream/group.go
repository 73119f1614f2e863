package stream

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotContiguous is returned by a strict Grouper when a key shows up again
// after its group was already emitted.
var ErrNotContiguous = errors.New("stream: group key is not contiguous")

// GroupOption configures a Grouper.
type GroupOption func(*groupOptions)

type groupOptions struct {
	strict bool
}

// Strict makes the Grouper remember every emitted key and fail with
// ErrNotContiguous when a key reappears. Memory grows with the number of
// distinct keys, so use it for coarse keys only.
func Strict() GroupOption {
	return func(o *groupOptions) { o.strict = true }
}

// Grouper reads a Source ordered so that items sharing a key are adjacent
// and yields one batch per run of equal keys. It holds at most one group
// plus one look-ahead item in memory.
type Grouper[T any, K comparable] struct {
	src Source[T]
	key func(T) K

	peeked  T
	hasPeek bool
	done    bool

	strict bool
	seen   map[K]struct{}
}

// GroupBy wraps src; key extracts the group key of an item.
func GroupBy[T any, K comparable](src Source[T], key func(T) K, opts ...GroupOption) *Grouper[T, K] {
	var o groupOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grouper[T, K]{src: src, key: key, strict: o.strict}
	if o.strict {
		g.seen = make(map[K]struct{})
	}
	return g
}

// Next returns the next group. The boolean is false once the source is exhausted.
func (g *Grouper[T, K]) Next(ctx context.Context) (K, []T, bool, error) {
	var zero K

	first, ok, err := g.pull(ctx)
	if err != nil || !ok {
		return zero, nil, false, err
	}

	k := g.key(first)
	if g.strict {
		if _, dup := g.seen[k]; dup {
			return zero, nil, false, fmt.Errorf("%w: %v", ErrNotContiguous, k)
		}
		g.seen[k] = struct{}{}
	}

	batch := []T{first}
	for {
		item, ok, err := g.pull(ctx)
		if err != nil {
			return zero, nil, false, err
		}
		if !ok {
			return k, batch, true, nil
		}
		if g.key(item) != k {
			g.peeked, g.hasPeek = item, true
			return k, batch, true, nil
		}
		batch = append(batch, item)
	}
}

func (g *Grouper[T, K]) pull(ctx context.Context) (T, bool, error) {
	if g.hasPeek {
		item := g.peeked
		var zero T
		g.peeked, g.hasPeek = zero, false
		return item, true, nil
	}

	var zero T
	if g.done {
		return zero, false, nil
	}

	item, ok, err := g.src.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		g.done = true
		return zero, false, nil
	}
	return item, true, nil
}
