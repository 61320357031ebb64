package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, sessions and Google sign-in.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	ReferralCode string `json:"referralCode" validate:"omitempty,alphanum,max=16"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the body of POST /auth/refresh and /auth/logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// GoogleCallbackRequest carries an ID token obtained by the client from Google Identity Services.
type GoogleCallbackRequest struct {
	IDToken      string `json:"idToken" form:"id_token" validate:"required"`
	ReferralCode string `json:"referralCode" form:"referral_code" validate:"omitempty,alphanum,max=16"`
}

// SessionResponse is returned by every sign-in flow.
type SessionResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

// RegisterResponse describes the new account.
type RegisterResponse struct {
	User     *UserResponse `json:"user"`
	Referred bool          `json:"referred"`
}

// Register opens a customer account, optionally referred by another shopper.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &RegisterResponse{
		User:     toUserResponse(out.User),
		Referred: out.Referred,
	})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out))
}

// RefreshToken handles the token refresh request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	out, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"accessToken": out.AccessToken})
}

// Logout handles the user logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid logout input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	if err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// GoogleCallback signs in with a Google ID token, creating the account on first use.
// The token may arrive as JSON or as the id_token form field posted by Google Identity Services.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	var req GoogleCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid Google callback input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	out, err := h.authUC.GoogleCallback(c.Request().Context(), &usecase.GoogleCallbackInput{
		IDToken:      req.IDToken,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out))
}

func toSessionResponse(out *usecase.LoginOutput) *SessionResponse {
	return &SessionResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         toUserResponse(out.User),
	}
}
