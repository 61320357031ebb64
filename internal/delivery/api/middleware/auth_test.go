package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	servicemocks "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestEcho(t *testing.T, userID uuid.UUID, roles []string) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := servicemocks.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken("good").
		Return(&service.Claims{UserID: userID, Roles: roles, Type: service.TokenTypeAccess}, nil).Maybe()
	tokens.EXPECT().ValidateAccessToken(mock.Anything).Return(nil, errors.New("signature is invalid")).Maybe()

	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens, Logger: logger})

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	whoami := func(c echo.Context) error {
		id, ok := GetUserID(c)
		if !ok {
			return c.String(http.StatusOK, "guest")
		}
		ctxID, ctxOK := deliverycontext.GetUserIDFromContext(c.Request().Context())
		require.True(t, ctxOK)
		require.Equal(t, id, ctxID)

		return c.String(http.StatusOK, id.String())
	}

	e.GET("/required", whoami, auth.Authenticate)
	e.GET("/optional", whoami, auth.OptionalAuthenticate)
	e.GET("/admin", whoami, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	return e
}

func serve(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	e := newAuthTestEcho(t, userID, []string{"customer"})

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantBody      string
	}{
		{name: "valid token", authorization: "Bearer good", wantStatus: http.StatusOK, wantBody: userID.String()},
		{name: "lowercase scheme", authorization: "bearer good", wantStatus: http.StatusOK, wantBody: userID.String()},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "basic auth", authorization: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", authorization: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", authorization: "Bearer forged", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, "/required", tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
				assert.NotContains(t, rec.Body.String(), "details")
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	userID := uuid.New()
	e := newAuthTestEcho(t, userID, []string{"customer"})

	rec := serve(e, "/optional", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest", rec.Body.String())

	rec = serve(e, "/optional", "Bearer good")
	assert.Equal(t, userID.String(), rec.Body.String())

	rec = serve(e, "/optional", "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	customer := newAuthTestEcho(t, uuid.New(), []string{"customer"})
	rec := serve(customer, "/admin", "Bearer good")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)

	adminID := uuid.New()
	admin := newAuthTestEcho(t, adminID, []string{"customer", "admin"})
	rec = serve(admin, "/admin", "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminID.String(), rec.Body.String())
}
