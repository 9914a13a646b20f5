package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

type sessionClaims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService owns sign-up, sign-in and sign-out. A session is a row in the
// session store referenced from a signed token; revoking the row ends the session.
type AuthService struct {
	userRepo    ports.UserRepo
	sessionRepo ports.SessionRepo
	secret      []byte
	tokenTTL    time.Duration
	logger      logger.Logger
	now         func() time.Time
}

func NewAuthService(userRepo ports.UserRepo, sessionRepo ports.SessionRepo, secret string, tokenTTL time.Duration, logger logger.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secret:      []byte(secret),
		tokenTTL:    tokenTTL,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *AuthService) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	role := domain.ParseRole(input.Role)
	if role == domain.RoleVIP {
		return nil, fmt.Errorf("%w: VIP is granted by subscription only", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          email,
		Username:       strings.TrimSpace(input.Username),
		PasswordHash:   string(hash),
		Role:           role,
		PhotoURL:       input.PhotoURL,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.now().UTC(),
	}

	if err = s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)
	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now().UTC()
	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}
	if err = s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	ident := domain.NewIdentity(user, session.ID, now)
	claims := sessionClaims{
		SessionID: session.ID,
		Role:      string(ident.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("user signed in",
		logger.String("user_id", user.ID),
		logger.String("session_id", session.ID),
	)

	return &domain.AuthToken{Token: token, ExpiresAt: session.ExpiresAt, Identity: ident}, nil
}

func (s *AuthService) SignOut(ctx context.Context, ident *domain.Identity) error {
	if ident == nil || ident.SessionID == "" {
		return domain.ErrUnauthorized
	}

	if err := s.sessionRepo.Revoke(ctx, ident.SessionID, s.now().UTC()); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.logger.Info("user signed out",
		logger.String("user_id", ident.UserID),
		logger.String("session_id", ident.SessionID),
	)
	return nil
}

// Resolve turns a bearer token into the caller's identity. The role is read
// from the user record on every call so a new VIP subscription applies at once.
func (s *AuthService) Resolve(ctx context.Context, raw string) (*domain.Identity, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	session, err := s.sessionRepo.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	now := s.now()
	if !session.Active(now) || session.UserID != claims.Subject {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return domain.NewIdentity(user, session.ID, now), nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	return strings.ToLower(addr.Address), nil
}
