// Copyright (c) 2026 Kinotek. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"wrapped_no_rows", errors.Join(errors.New("ctx"), pgx.ErrNoRows), "NOT_FOUND", http.StatusNotFound},
		{"fk_violation", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "NOT_FOUND", http.StatusNotFound},
		{"unique_violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, "INTERNAL_ERROR", http.StatusInternalServerError},
		{"plain_error", errors.New("connection reset"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestWrap_InternalKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	ae := apperr.As(dberr.Wrap(cause, "insert_like"))
	require.NotNil(t, ae)
	require.NotNil(t, ae.Cause)
	assert.ErrorIs(t, ae.Cause, cause)
	assert.Contains(t, ae.Cause.Error(), "insert_like")
}
