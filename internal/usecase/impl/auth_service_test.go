package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	referralRepo     *mockRepo.MockReferralRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	googleAuth       *mockSvc.MockOAuthAuthService
	settings         *mockUsecase.MockSettingsUsecase
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	referralRepo := mockRepo.NewMockReferralRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuth := mockSvc.NewMockOAuthAuthService(t)
	settings := mockUsecase.NewMockSettingsUsecase(t)

	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().AuthRepo().Return(authRepo).Maybe()
	factory.EXPECT().RefreshTokenRepo().Return(refreshTokenRepo).Maybe()
	factory.EXPECT().ReferralRepo().Return(referralRepo).Maybe()

	svc := NewAuthService(AuthServiceParams{
		TxManager:         txManager,
		RefreshTokenRepo:  refreshTokenRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuth,
		Settings:          settings,
		Config:            newTestConfig(maxActiveSessions),
		Logger:            newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          svc,
		txManager:        txManager,
		factory:          factory,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		referralRepo:     referralRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		googleAuth:       googleAuth,
		settings:         settings,
	}
}

// expectSession stubs token generation and refresh token storage for user.
func (fx authServiceFixtures) expectSession(ctx context.Context, user *entity.User) {
	fx.tokenService.EXPECT().GenerateTokens(user.ID, user.Roles().ToStrings()).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == "refresh-hash" && token.ExpiresAt.After(time.Now())
		})).
		Return(nil)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.Provider == entity.ProviderTypeEmail && auth.ProviderUserID == "ana@example.com" && auth.PasswordHash == "hashed"
		})).
		Return(nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: " Ana ", Email: " Ana@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.False(t, out.Referred)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Len(t, out.User.ReferralCode, 8)
	fx.referralRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_WithReferralSnapshotsBonuses(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	referrer := &entity.User{ID: uuid.New(), Email: "ref@example.com", ReferralCode: "REF12345"}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "bo@example.com").Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "bo@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByReferralCode(ctx, "REF12345").Return(referrer, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.referralRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Referral) bool {
			return r.ReferrerID == referrer.ID &&
				r.Code == "REF12345" &&
				r.Status == entity.ReferralPending &&
				r.ReferrerBonus == 500 &&
				r.ReferredBonus == 250
		})).
		Return(nil)
	fx.authRepo.EXPECT().CreateAuthentication(ctx, mock.Anything).Return(nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:         "Bo",
		Email:        "bo@example.com",
		Password:     "secret123",
		ReferralCode: " ref12345 ",
	})
	require.NoError(t, err)
	assert.True(t, out.Referred)
}

func TestAuthService_Register_UnknownReferralCode(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "bo@example.com").Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "bo@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByReferralCode(ctx, "NOBODY").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "bo@example.com", Password: "x", ReferralCode: "nobody"})
	requireErrorCode(t, err, "REFERRAL_CODE_INVALID")
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").
		Return(&entity.Authentication{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ana@example.com", Password: "x"})
	requireErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, 3)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", IsAdmin: true}

	expectTx(fx.txManager, fx.factory).Times(2)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().CountActiveRefreshTokens(ctx, user.ID).Return(int64(2), nil)
	fx.expectSession(ctx, user)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ANA@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Same(t, user, out.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "who@example.com").Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "who@example.com", Password: "x"})
	requireErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
	requireErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_SessionLimitReached(t *testing.T) {
	fx := createTestAuthService(t, 2)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	expectTx(fx.txManager, fx.factory).Times(2)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().CountActiveRefreshTokens(ctx, user.ID).Return(int64(2), nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "secret123"})
	requireErrorCode(t, err, "SESSION_LIMIT_EXCEEDED")
	fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: user.ID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("new-access", "unused", nil)

	out, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
}

func TestAuthService_RefreshToken_InvalidSignature(t *testing.T) {
	fx := createTestAuthService(t, 0)

	fx.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, errors.New("signature is invalid"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "bad"})
	requireErrorCode(t, err, "REFRESH_TOKEN_INVALID")
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_RefreshToken_RevokedSession(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: uuid.New()}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	requireErrorCode(t, err, "REFRESH_TOKEN_INVALID")
}

func TestAuthService_Logout_DeletesEvenWhenTokenIsInvalid(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("expired").Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken("expired").Return("expired-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "expired-hash").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "expired"}))
}

func TestAuthService_Logout_DatabaseFailure(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("token").Return(&service.Claims{}, nil)
	fx.tokenService.EXPECT().HashToken("token").Return("hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash").Return(errors.New("connection reset"))

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "token"})
	requireErrorCode(t, err, "UPSTREAM_FAILURE")
}

func TestAuthService_GoogleCallback_CreatesUser(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	oauthUser := &service.OAuthUser{ID: "google-sub", Email: "Gia@Example.com", Name: "Gia", EmailVerified: true}

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "gia@example.com").Return(nil, repository.ErrUserNotFound)

	var created *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { created = user }).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.Provider == entity.ProviderTypeGoogle && auth.ProviderUserID == "google-sub" && auth.PasswordHash == ""
		})).
		Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"customer"}).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)

	out, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{IDToken: "id-token"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Same(t, created, out.User)
	assert.Equal(t, "gia@example.com", out.User.Email)
}

func TestAuthService_GoogleCallback_ExistingIdentity(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "gia@example.com"}

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.OAuthUser{ID: "google-sub", Email: user.Email}, nil)
	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").
		Return(&entity.Authentication{UserID: user.ID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectSession(ctx, user)

	out, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Same(t, user, out.User)
	fx.authRepo.AssertNotCalled(t, "CreateAuthentication", mock.Anything, mock.Anything)
}

func TestAuthService_GoogleCallback_UnverifiedEmailDoesNotLink(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.googleAuth.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.OAuthUser{ID: "google-sub", Email: "ana@example.com", EmailVerified: false}, nil)
	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{IDToken: "id-token"})
	requireErrorCode(t, err, "USER_ALREADY_EXISTS")
}
