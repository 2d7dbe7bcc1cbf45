package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	got := MapError(nil, "module_version", 1)
	if got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "module_version", 42)

	if got == nil {
		t.Fatal("MapError(ErrNoRows) = nil, want error")
	}
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "module_version 42: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	got := MapError(wrapped, "module", 7)

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.DeadlineExceeded, context.Canceled} {
		got := MapError(ctxErr, "module_version", 1)

		if !errors.Is(got, ctxErr) {
			t.Errorf("MapError(%v) does not wrap the context error: %v", ctxErr, got)
		}
		// Must NOT be mapped to a domain error
		if errors.Is(got, domain.ErrStorage) || errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) should not map to a domain error: %v", ctxErr, got)
		}
	}
}

func TestMapError_UnknownErrorIsStorageFailure(t *testing.T) {
	t.Parallel()

	original := errors.New("connection reset")
	got := MapError(original, "module_version", 3)

	if !errors.Is(got, original) {
		t.Errorf("MapError(unknown) does not wrap original error: %v", got)
	}
	if !errors.Is(got, domain.ErrStorage) {
		t.Errorf("MapError(unknown) does not wrap domain.ErrStorage: %v", got)
	}
	if want := "module_version 3: storage failure: connection reset"; got.Error() != want {
		t.Errorf("MapError(unknown).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_UnknownPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	got := MapError(pgErr, "module_version", 1)

	var unwrapped *pgconn.PgError
	if !errors.As(got, &unwrapped) {
		t.Errorf("MapError(unknown PgError) does not wrap *pgconn.PgError: %v", got)
	}
	if !errors.Is(got, domain.ErrStorage) {
		t.Errorf("MapError(unknown PgError) should be a storage failure: %v", got)
	}
}

func TestMapError_AllPgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		wantErr  error
		wantName string
	}{
		{"unique_violation", "23505", domain.ErrAlreadyExists, "ErrAlreadyExists"},
		{"exclusion_violation", "23P01", domain.ErrAlreadyExists, "ErrAlreadyExists"},
		{"foreign_key_violation", "23503", domain.ErrNotFound, "ErrNotFound"},
		{"check_violation", "23514", domain.ErrValidation, "ErrValidation"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pgErr := &pgconn.PgError{Code: tt.code}
			got := MapError(fmt.Errorf("insert row: %w", pgErr), "module_version", 1)

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("MapError(code %s) does not wrap %s: %v", tt.code, tt.wantName, got)
			}
			if errors.Is(got, domain.ErrStorage) {
				t.Errorf("MapError(code %s) should not be a storage failure", tt.code)
			}
		})
	}
}

func TestMapError_EntityAndIDInMessage(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "module_version", 1234)

	if !strings.HasPrefix(got.Error(), "module_version 1234:") {
		t.Errorf("MapError message should start with %q, got %q", "module_version 1234:", got.Error())
	}
}
