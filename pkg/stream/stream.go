// Package stream provides pull-based row sequences and a grouping adapter
// that turns a key-ordered sequence into a sequence of contiguous groups.
package stream

import "context"

// Source is a pull-based sequence. Next returns false once the sequence is
// exhausted; after an error the sequence must not be used again.
type Source[T any] interface {
	Next(ctx context.Context) (T, bool, error)
}

// Cursor is a Source holding a resource that must be released.
type Cursor[T any] interface {
	Source[T]
	Close(ctx context.Context) error
}

// SliceCursor serves items from memory. It is used by tests and by callers
// that already hold a small row set.
type SliceCursor[T any] struct {
	items  []T
	pos    int
	closed bool
}

// FromSlice returns a cursor over items.
func FromSlice[T any](items []T) *SliceCursor[T] {
	return &SliceCursor[T]{items: items}
}

func (s *SliceCursor[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if s.closed || s.pos >= len(s.items) {
		return zero, false, nil
	}
	item := s.items[s.pos]
	s.pos++
	return item, true, nil
}

func (s *SliceCursor[T]) Close(_ context.Context) error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *SliceCursor[T]) Closed() bool { return s.closed }

// Collect drains src into a slice.
func Collect[T any](ctx context.Context, src Source[T]) ([]T, error) {
	var out []T
	for {
		item, ok, err := src.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, item)
	}
}
