package service

import "context"

// OAuthUser is the identity extracted from a verified third-party ID token.
type OAuthUser struct {
	ID            string // Provider subject ("sub").
	Email         string
	Name          string
	EmailVerified bool
}

// OAuthAuthService verifies ID tokens issued by an identity provider.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
