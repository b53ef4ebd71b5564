package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"careercompass/internal/cache"
	"careercompass/internal/mail"
	"careercompass/internal/model"
	"careercompass/internal/repository"
)

// AuthService handles registration, login and passcode verification.
// There are no passwords: identity is proven by a one-time code emailed
// to the account address.
type AuthService struct {
	userRepo  repository.UserRepo
	otpCache  cache.OTPCache
	sender    mail.Sender
	jwtSecret []byte
	logger    *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepo, otpCache cache.OTPCache, sender mail.Sender, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		otpCache:  otpCache,
		sender:    sender,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

// Register creates an unverified account and emails it a passcode.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return ErrMissingEmail
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return ErrUserExists
	}

	user := &model.User{
		Email:   email,
		Name:    strings.TrimSpace(req.Name),
		Profile: req.Profile,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return s.sendCode(ctx, email)
}

// RequestCode emails a fresh passcode to an existing account.
func (s *AuthService) RequestCode(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrMissingEmail
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.sendCode(ctx, email)
}

// Verify consumes a passcode, marks the account verified and returns a
// session token.
func (s *AuthService) Verify(ctx context.Context, email, code string) (*model.VerifyResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrMissingEmail
	}

	ok, err := s.otpCache.Consume(ctx, email, code)
	if err != nil {
		return nil, fmt.Errorf("consume passcode: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCode
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.Verified {
		if err := s.userRepo.SetVerified(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("mark verified: %w", err)
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &model.VerifyResponse{Token: token, UserID: user.ID}, nil
}

// ValidateToken validates a session JWT and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *AuthService) generateToken(user *model.User) (string, error) {
	claims := &model.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) sendCode(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate passcode: %w", err)
	}
	if err := s.otpCache.Set(ctx, email, code); err != nil {
		return fmt.Errorf("store passcode: %w", err)
	}

	body := fmt.Sprintf("Your Career Compass verification code is %s. It expires in 10 minutes.", code)
	if err := s.sender.Send(ctx, email, "Your verification code", body); err != nil {
		s.logger.Error("failed to send passcode email", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("send passcode: %w", err)
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
