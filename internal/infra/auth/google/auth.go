// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google ID tokens.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates the Google verifier. Without a configured client ID every
// verification fails with ErrOAuthDisabled.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience and issuer and maps the claims to an OAuthUser.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.WithStack(domainerrors.ErrOAuthDisabled)
	}
	if idToken == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("id token is empty")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails(err.Error())
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("invalid issuer: " + payload.Issuer)
	}

	email := stringClaim(payload.Claims, "email")
	if payload.Subject == "" || email == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("token has no subject or email")
	}

	verified, _ := payload.Claims["email_verified"].(bool)

	oauthUser := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          stringClaim(payload.Claims, "name"),
		EmailVerified: verified,
	}

	s.logger.Debug("Google ID token verified", slog.String("sub", oauthUser.ID))

	return oauthUser, nil
}

func stringClaim(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}
