// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/angelamos/gigbook/internal/core"
	"github.com/angelamos/gigbook/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserInfo is the slice of a user record the auth flow needs.
type UserInfo struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
}

// UserProvider is implemented by the user service. Defining it here keeps
// the dependency pointed from auth to user at construction time only.
type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*UserInfo, error)
	GetAuthInfo(ctx context.Context, id string) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type Service struct {
	jwt          *JWTManager
	userProvider UserProvider
	redis        *redis.Client
}

func NewService(
	jwt *JWTManager,
	userProvider UserProvider,
	redisClient *redis.Client,
) *Service {
	return &Service{
		jwt:          jwt,
		userProvider: userProvider,
		redis:        redisClient,
	}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	user, err := s.userProvider.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // always verify to prevent username enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	// Deactivated accounts keep their data but lose login. Reported as
	// invalid credentials so the account state is not observable.
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.userProvider.UpdatePassword(ctx, user.ID, newHash)
	}

	return s.createAuthResponse(user)
}

func (s *Service) createAuthResponse(user *UserInfo) (*AuthResponse, error) {
	accessToken, claims, err := s.jwt.CreateAccessToken(
		user.ID,
		user.Username,
		user.Role,
	)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &AuthResponse{
		User: UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Role:     user.Role,
		},
		Tokens: TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   int(time.Until(claims.ExpireAt).Seconds()),
			ExpiresAt:   claims.ExpireAt,
		},
	}, nil
}

// VerifyAccessToken satisfies middleware.TokenVerifier: signature and claim
// checks via the JWT manager, then a blacklist lookup so revoked tokens die
// before their natural expiry.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	tokenString string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := s.jwt.ParseAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	blacklisted, err := s.IsAccessTokenBlacklisted(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if blacklisted {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	return &middleware.AccessTokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
		TokenID:  claims.TokenID,
	}, nil
}

func (s *Service) RevokeAccessToken(ctx context.Context, jti string) error {
	key := "blacklist:" + jti

	// The blacklist entry only needs to outlive the longest possible
	// remaining token lifetime.
	ttl := s.jwt.config.AccessTokenExpire
	if ttl <= 0 {
		return nil
	}

	if err := s.redis.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}

	return nil
}

func (s *Service) IsAccessTokenBlacklisted(
	ctx context.Context,
	jti string,
) (bool, error) {
	key := "blacklist:" + jti

	exists, err := s.redis.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}

	return exists > 0, nil
}

func (s *Service) ChangePassword(
	ctx context.Context,
	userID, currentPassword, newPassword string,
) error {
	user, err := s.userProvider.GetAuthInfo(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	valid, _, err := core.VerifyPasswordWithRehash(
		currentPassword,
		user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return ErrInvalidCredentials
	}

	newHash, err := core.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userProvider.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}
