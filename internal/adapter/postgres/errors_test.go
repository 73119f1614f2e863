package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	got := MapError(nil, "lexical entry", domain.NewCompositeID(1, 2))
	if got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	id := domain.NewCompositeID(66, 25)
	got := MapError(pgx.ErrNoRows, "field", id)

	if got == nil {
		t.Fatal("MapError(ErrNoRows) = nil, want error")
	}
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "field (66, 25): not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(fmt.Errorf("query: %w", ctxErr), "perspective", domain.NewCompositeID(1, 1))
		if !errors.Is(got, ctxErr) {
			t.Errorf("MapError(%v) lost the context error: %v", ctxErr, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) must not map to ErrNotFound", ctxErr)
		}
	}
}

func TestMapError_Other(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	got := MapError(base, "language", domain.NewCompositeID(3, 4))
	if !errors.Is(got, base) {
		t.Errorf("MapError should wrap the original error: %v", got)
	}
	if want := "language (3, 4): connection reset"; got.Error() != want {
		t.Errorf("Error() = %q, want %q", got.Error(), want)
	}
}
