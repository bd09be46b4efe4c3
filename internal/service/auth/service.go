package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/auth"
	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/pkg/jwt"
	"github.com/mawared/mawared-backend/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const googleProvider = "google"

type AuthServiceImpl struct {
	user.UserRepository
	auth.RefreshTokenRepository
	employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepository user.UserRepository,
	refreshTokenRepository auth.RefreshTokenRepository,
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		EmployeeRepository:     employeeRepository,
		jwtService:             jwtService,
		googleService:          googleService,
	}
}

// Register implements auth.AuthService. Self-registration always creates an
// employee-role account; elevated roles are assigned by the super admin.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashStr,
		FullName:     req.FullName,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueTokens(ctx, created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return a.issueTokens(ctx, u)
}

// LoginWithGoogle implements auth.AuthService. Unknown Google accounts are
// registered on first login with the employee role.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, token *oauth2.Token) (auth.TokenResponse, error) {
	info, err := a.googleService.Profile(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google profile: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrOAuthEmailUnverified
	}

	u, err := a.UserRepository.GetByOAuth(ctx, googleProvider, info.GoogleID)
	if err == nil {
		if !u.IsActive {
			return auth.TokenResponse{}, user.ErrUserInactive
		}
		return a.issueTokens(ctx, u)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by oauth id: %w", err)
	}

	// Link by email when the account already exists, otherwise register.
	provider := googleProvider
	u, err = a.UserRepository.GetByEmail(ctx, info.Email)
	if err == nil {
		u.OAuthProvider = &provider
		u.OAuthProviderID = &info.GoogleID
		if err := a.UserRepository.Update(ctx, u); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
		if !u.IsActive {
			return auth.TokenResponse{}, user.ErrUserInactive
		}
		return a.issueTokens(ctx, u)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:           info.Email,
		FullName:        info.Email,
		Role:            user.RoleEmployee,
		OAuthProvider:   &provider,
		OAuthProviderID: &info.GoogleID,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueTokens(ctx, created)
}

// Refresh implements auth.AuthService. The presented token is rotated: the
// old row is revoked and a fresh pair is issued.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	stored, err := a.RefreshTokenRepository.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if stored.RevokedAt != nil {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	u, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, stored.TokenHash); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return a.issueTokens(ctx, u)
}

// Logout implements auth.AuthService. Revoking the stored refresh token is
// enough; the access token simply runs out its short expiry.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return a.RefreshTokenRepository.Revoke(ctx, hashToken(refreshToken))
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	var employeeID *string
	if emp, err := a.EmployeeRepository.GetByUserID(ctx, u.ID); err == nil {
		employeeID = &emp.ID
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, employeeID, u.StoreID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := a.RefreshTokenRepository.Store(ctx, auth.RefreshToken{
		UserID:    u.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		Role:                  string(u.Role),
	}, nil
}

// hashToken stores a digest instead of the raw token so a leaked table does
// not yield usable refresh tokens.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
