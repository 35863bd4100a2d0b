package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/fin_api/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateErr(t *testing.T) {
	assert.NoError(t, translateErr("noop", nil))

	dup := translateErr("save", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})
	assert.ErrorIs(t, dup, apperrors.ErrDuplicate)

	timeout := translateErr("query", fmt.Errorf("wrapped: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, timeout, apperrors.ErrTimeout)
	assert.True(t, apperrors.IsRetryable(timeout))

	other := translateErr("query", errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(other))
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sortedUnique([]string{"c", "a", "b", "a"}))
	assert.Empty(t, sortedUnique(nil))
}

func TestFirstMissing(t *testing.T) {
	assert.Equal(t, "b", firstMissing([]string{"a", "b"}, []string{"a"}))
	assert.Equal(t, "", firstMissing([]string{"a"}, []string{"a"}))
}
