package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	settings          usecase.SettingsUsecase
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Settings          usecase.SettingsUsecase
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		settings:          params.Settings,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register opens an email/password account. A referral code, when given, must belong to an
// existing user and records a pending referral settled on the new user's first completed order.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// bcrypt is CPU-bound, keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	settings, err := srv.settings.GetLoyaltySettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	var output usecase.RegisterOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "register")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		user, referred, err := srv.createUser(ctx, repoFactory, settings, input.Name, email, input.ReferralCode)
		if err != nil {
			return err
		}

		newAuth := &entity.Authentication{
			ID:             uuid.New(),
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := repoFactory.AuthRepo().CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		output.User = user
		output.Referred = referred

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "register"), "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("Registration completed", slog.Any("userID", output.User.ID), slog.Bool("referred", output.Referred))

	return &output, nil
}

// createUser inserts a user with a fresh referral code and records the referral that brought them in.
func (srv *authService) createUser(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	settings *entity.LoyaltySettings,
	name, email, referralCode string,
) (*entity.User, bool, error) {
	userRepo := repoFactory.UserRepo()

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return nil, false, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email in use")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by email")
	}

	var referrer *entity.User
	if code := entity.NormalizeReferralCode(referralCode); code != "" {
		found, err := userRepo.FindByReferralCode(ctx, code)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, domainerrors.ErrReferralCodeInvalid.WithDetails(code)
		}
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to find referrer")
		}
		referrer = found
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		ReferralCode: entity.GenerateReferralCode(constants.ReferralCodeLength),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, false, errors.Wrap(domainerrors.ErrUserAlreadyExists, "create user")
		}

		return nil, false, errors.Wrap(err, "failed to create user")
	}

	if referrer == nil {
		return user, false, nil
	}

	referral := &entity.Referral{
		ID:            uuid.New(),
		ReferrerID:    referrer.ID,
		ReferredID:    user.ID,
		Code:          referrer.ReferralCode,
		Status:        entity.ReferralPending,
		ReferrerBonus: settings.ReferrerBonus,
		ReferredBonus: settings.ReferredBonus,
	}
	if err := repoFactory.ReferralRepo().Create(ctx, referral); err != nil {
		return nil, false, errors.Wrap(err, "failed to record referral")
	}

	srv.log(ctx).Debug("Referral recorded", slog.Any("referrerID", referrer.ID), slog.Any("referredID", user.ID))

	return user, true, nil
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.loadLoginAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "load authentication"), "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var output *usecase.LoginOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		output, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "login"), "failed to execute login transaction")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", output.User.ID))

	return output, nil
}

func (srv *authService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findAuthErr error
		authRecord, findAuthErr = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

// issueSession generates a token pair and stores the hashed refresh token,
// enforcing the active session cap when one is configured.
func (srv *authService) issueSession(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (*usecase.LoginOutput, error) {
	refreshRepo := repoFactory.RefreshTokenRepo()

	if srv.maxActiveSessions > 0 {
		activeSessions, err := refreshRepo.CountActiveRefreshTokens(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= int64(srv.maxActiveSessions) {
			return nil, errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a new access token. The refresh token itself stays unchanged.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)

		stored, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "refresh token"), "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// Logout deletes the session of the given refresh token. Unknown tokens are not an error.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(toUpstream(err, "logout"), "failed to delete refresh token")
	}

	return nil
}

// GoogleCallback signs a user in with a Google ID token, creating the account on first use.
// A verified Google email matching an existing account links to it.
func (srv *authService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling Google callback")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Google ID token")
	}

	settings, err := srv.settings.GetLoyaltySettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	var output *usecase.LoginOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateGoogleUser(ctx, repoFactory, settings, oauthUser, input.ReferralCode)
		if err != nil {
			return err
		}

		output, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Google sign-in failed", slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "google sign-in"), "failed to execute Google user authentication transaction")
	}

	return output, nil
}

func (srv *authService) findOrCreateGoogleUser(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	settings *entity.LoyaltySettings,
	oauthUser *service.OAuthUser,
	referralCode string,
) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user by id for google auth")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)

	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !oauthUser.EmailVerified {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "google email is not verified")
		}
		srv.log(ctx).Info("Linking Google identity to existing account", slog.Any("userID", user.ID))
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", email))

		user, _, err = srv.createUser(ctx, repoFactory, settings, oauthUser.Name, email, referralCode)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	newAuth := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, nil
}
