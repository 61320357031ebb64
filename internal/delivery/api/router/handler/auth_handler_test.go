package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	usecasemocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*testAPI, *usecasemocks.MockAuthUsecase) {
	t.Helper()

	authUC := usecasemocks.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	api := newTestAPI(t)
	api.e.POST("/auth/register", h.Register)
	api.e.POST("/auth/login", h.Login)
	api.e.POST("/auth/refresh", h.RefreshToken)
	api.e.POST("/auth/logout", h.Logout)
	api.e.POST("/oauth/google/callback", h.GoogleCallback)

	return api, authUC
}

func testUser() *entity.User {
	return &entity.User{ID: customerID, Email: "jane@example.com", Name: "Jane", ReferralCode: "JANE1234"}
}

func TestAuthHandler_Register(t *testing.T) {
	api, authUC := createTestAuthHandler(t)

	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:         "Jane",
			Email:        "jane@example.com",
			Password:     "StrongPass123!",
			ReferralCode: "FRIEND01",
		}).
		Return(&usecase.RegisterOutput{User: testUser(), Referred: true}, nil).Once()

	body := `{"name":"Jane","email":"jane@example.com","password":"StrongPass123!","referralCode":"FRIEND01"}`
	rec := api.do(http.MethodPost, "/auth/register", "", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, true, data["referred"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "JANE1234", user["referralCode"])
	assert.Equal(t, []any{"customer"}, user["roles"])
	assert.NotContains(t, rec.Body.String(), "StrongPass123!")
}

func TestAuthHandler_Register_Errors(t *testing.T) {
	api, authUC := createTestAuthHandler(t)

	rec := api.do(http.MethodPost, "/auth/register", "", `{"name":"Jane","email":"not-an-email","password":"short"}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()
	rec = api.do(http.MethodPost, "/auth/register", "", `{"name":"Jane","email":"jane@example.com","password":"StrongPass123!"}`)
	requireErrorCode(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")

	authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrReferralCodeInvalid).Once()
	rec = api.do(http.MethodPost, "/auth/register", "",
		`{"name":"Jane","email":"jane@example.com","password":"StrongPass123!","referralCode":"NOPE0000"}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "REFERRAL_CODE_INVALID")
}

func TestAuthHandler_Login(t *testing.T) {
	api, authUC := createTestAuthHandler(t)

	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "StrongPass123!"}).
		Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: testUser()}, nil).Once()
	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "wrong-password"}).
		Return(nil, domainerrors.ErrInvalidCredentials).Once()

	rec := api.do(http.MethodPost, "/auth/login", "", `{"email":"jane@example.com","password":"StrongPass123!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, "access", data["accessToken"])
	assert.Equal(t, "refresh", data["refreshToken"])

	rec = api.do(http.MethodPost, "/auth/login", "", `{"email":"jane@example.com","password":"wrong-password"}`)
	requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	api, authUC := createTestAuthHandler(t)

	authUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "refresh"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "new-access"}, nil).Once()
	authUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh"}).Return(nil).Once()

	rec := api.do(http.MethodPost, "/auth/refresh", "", `{"refreshToken":"refresh"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new-access", decodeData(t, rec)["accessToken"])

	rec = api.do(http.MethodPost, "/auth/logout", "", `{"refreshToken":"refresh"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodPost, "/auth/refresh", "", `{}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestAuthHandler_GoogleCallback_FormPost(t *testing.T) {
	api, authUC := createTestAuthHandler(t)

	authUC.EXPECT().
		GoogleCallback(mock.Anything, &usecase.GoogleCallbackInput{IDToken: "google-id-token", ReferralCode: "FRIEND01"}).
		Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: testUser()}, nil).Once()

	form := url.Values{"id_token": {"google-id-token"}, "referral_code": {"FRIEND01"}}
	req := httptest.NewRequest(http.MethodPost, "/oauth/google/callback", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	api.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, customerID.String(), decodeData(t, rec)["user"].(map[string]any)["id"])
}

func TestAuthHandler_GoogleCallback_InvalidToken(t *testing.T) {
	api, authUC := createTestAuthHandler(t)

	authUC.EXPECT().GoogleCallback(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOAuthTokenInvalid).Once()

	rec := api.do(http.MethodPost, "/oauth/google/callback", "", `{"idToken":"forged"}`)
	requireErrorCode(t, rec, http.StatusUnauthorized, "OAUTH_TOKEN_INVALID")

	rec = api.do(http.MethodPost, "/oauth/google/callback", "", `{}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

