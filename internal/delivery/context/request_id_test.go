package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))
}

func TestUserIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)

	_, ok = GetUserIDFromContext(WithUserID(ctx, uuid.Nil))
	assert.False(t, ok)

	userID := uuid.New()
	got, ok := GetUserIDFromContext(WithUserID(ctx, userID))
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With(slog.String("request_id", "r"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Equal(t, "", GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "r", GetRequestIDFromContext(WithRequestID(context.Background(), "r")))
}
