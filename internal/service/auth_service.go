package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"problem-bank/internal/config"
	"problem-bank/internal/domain"
	"problem-bank/internal/dto"
	"problem-bank/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService handles registration, credential login and the JWT lifecycle.
// Tokens are bearer, stateless and non-revocable: once issued they stay valid
// until natural expiry, there is no session store.
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	CreateJWT(ctx context.Context, email string) (string, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	userRepo  domain.UserRepository
	appConfig *config.Config
}

// NewAuthService creates a new instance of AuthService. The signing secret
// must be configured; without it token issuance is impossible.
func NewAuthService(userRepo domain.UserRepository, appConfig *config.Config) (AuthService, error) {
	if len(appConfig.JWT.SecretKey) == 0 {
		return nil, errors.New("jwt secret key for auth service is not configured")
	}
	return &authServiceImpl{
		userRepo:  userRepo,
		appConfig: appConfig,
	}, nil
}

// Signup registers a new user with a bcrypt-hashed password. A duplicate
// email surfaces as the repository's conflict error untouched.
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	appLogger := logger.Get()

	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: digest,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	appLogger.Info("New user registered",
		zap.String("userUUID", user.UUID),
		zap.String("email", user.Email))

	return &dto.SignupResponse{
		Message: "User registered successfully",
		UserID:  user.UUID,
	}, nil
}

// Login verifies credentials and issues a token. Unknown email and password
// mismatch are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	appLogger := logger.Get()

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(req.Password, user.Password) {
		appLogger.Warn("Login failed", zap.String("email", req.Email))
		return nil, domain.NewInvalidInputError("Incorrect email or password")
	}

	token, err := s.CreateJWT(ctx, user.Email)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create token", err)
	}

	appLogger.Info("User logged in", zap.String("userUUID", user.UUID))
	return &dto.TokenResponse{Token: token}, nil
}

// CreateJWT issues an HS256-signed token whose subject is the user's email,
// expiring after the configured TTL.
func (s *authServiceImpl) CreateJWT(ctx context.Context, email string) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.appConfig.JWT.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.JWT.SecretKey))
}

// ValidateJWT decodes and checks signature and expiry, returning the claims
// on success. Expired and malformed/forged tokens are told apart only in the
// logs; callers see a single invalid-token error for both.
func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()

	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.JWT.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired", zap.Error(err))
		} else {
			appLogger.Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}
