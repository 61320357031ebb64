package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrCouponNotApplicable.WithDetails("order total is below the coupon minimum")

	assert.True(t, errors.Is(detailed, ErrCouponNotApplicable))
	assert.False(t, errors.Is(detailed, ErrCouponNotFound))
	assert.Equal(t, "order total is below the coupon minimum", detailed.Details())
	assert.Empty(t, ErrCouponNotApplicable.Details())
}

func TestBaseError_WrappedStillAppError(t *testing.T) {
	wrapped := errors.Wrap(ErrInsufficientBalance.WithDetails("balance 50"), "redeem failed")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_BALANCE", appErr.ErrorCode())
}

func TestUpstreamError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamError(cause, "failed to load coupons")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "UPSTREAM_FAILURE", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "failed to load coupons")
}
