package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverymiddleware "storefront/internal/delivery/middleware"
	"storefront/internal/domain/service"
	servicemocks "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

var (
	customerID = uuid.MustParse("5b0a1f5e-8a55-4c55-9a59-2f4f2d3c1a01")
	adminID    = uuid.MustParse("5b0a1f5e-8a55-4c55-9a59-2f4f2d3c1a02")
)

// testAPI is an echo instance configured like the real server, with a stubbed token service.
type testAPI struct {
	e    *echo.Echo
	auth *middleware.AuthMiddleware
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens := servicemocks.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken(customerToken).
		Return(&service.Claims{UserID: customerID, Roles: []string{"customer"}, Type: service.TokenTypeAccess}, nil).Maybe()
	tokens.EXPECT().ValidateAccessToken(adminToken).
		Return(&service.Claims{UserID: adminID, Roles: []string{"customer", "admin"}, Type: service.TokenTypeAccess}, nil).Maybe()
	tokens.EXPECT().ValidateAccessToken(mock.Anything).
		Return(nil, errors.New("token is expired")).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)

	return &testAPI{
		e:    e,
		auth: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokens, Logger: logger}),
	}
}

func (api *testAPI) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.NotNil(t, env.Meta)
	require.NotEmpty(t, env.Meta.RequestID)

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))

	return data
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) *response.ErrorInfo {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)

	return env.Error
}

