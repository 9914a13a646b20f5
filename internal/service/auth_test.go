package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*AuthService, *mocks.MockUserRepo, *mocks.MockSessionRepo) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionRepo(t)
	svc := NewAuthService(users, sessions, testSecret, time.Hour, newTestLogger(t))
	svc.now = fixedClock
	return svc, users, sessions
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_SignUp(t *testing.T) {
	svc, users, _ := newAuthService(t)

	var stored *domain.User
	users.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { stored = u }).
		Return(nil)

	user, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Email: " Host@Example.com ", Password: "secret1", Username: "host", Role: "Creator",
	})

	require.NoError(t, err)
	assert.Equal(t, "host@example.com", user.Email)
	assert.Equal(t, domain.RoleCreator, user.Role)
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.SignUpInput
	}{
		{"bad email", domain.SignUpInput{Email: "nope", Password: "secret1"}},
		{"short password", domain.SignUpInput{Email: "a@b.c", Password: "123"}},
		{"vip role", domain.SignUpInput{Email: "a@b.c", Password: "secret1", Role: "VIP"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAuthService(t)

			_, err := svc.SignUp(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	svc, users, _ := newAuthService(t)

	users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.SignUp(context.Background(), domain.SignUpInput{Email: "a@b.c", Password: "secret1"})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	svc, users, _ := newAuthService(t)

	users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		ID: "u1", Email: "alice@example.com", PasswordHash: hashed(t, "right-one"),
	}, nil)

	_, err := svc.SignIn(context.Background(), "alice@example.com", "wrong-one")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_SignIn_UnknownUser(t *testing.T) {
	svc, users, _ := newAuthService(t)

	users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.SignIn(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_SignInThenResolve(t *testing.T) {
	svc, users, sessions := newAuthService(t)

	user := &domain.User{ID: "u1", Email: "alice@example.com", Username: "alice", Role: domain.RoleUser, PasswordHash: hashed(t, "secret1")}
	var session *domain.Session

	users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	sessions.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s *domain.Session) { session = s }).
		Return(nil)

	token, err := svc.SignIn(context.Background(), "Alice@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, testNow.Add(time.Hour), token.ExpiresAt)
	assert.Equal(t, "alice", token.Identity.DisplayName)

	sessions.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	ident, err := svc.Resolve(context.Background(), token.Token)

	require.NoError(t, err)
	assert.Equal(t, "u1", ident.UserID)
	assert.Equal(t, session.ID, ident.SessionID)
	assert.Equal(t, domain.RoleUser, ident.Role)
}

func TestAuthService_Resolve_RevokedSession(t *testing.T) {
	svc, _, sessions := newAuthService(t)

	revoked := testNow.Add(-time.Minute)
	sessions.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{
		ID: "s1", UserID: "u1", ExpiresAt: testNow.Add(time.Hour), RevokedAt: &revoked,
	}, nil)

	_, err := svc.Resolve(context.Background(), signTestToken(t, jwt.SigningMethodHS256, testSecret, "u1", "s1", testNow.Add(time.Hour)))

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Resolve_RejectsBadTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", signTestToken(t, jwt.SigningMethodHS256, "other-secret", "u1", "s1", testNow.Add(time.Hour))},
		{"wrong algorithm", signTestToken(t, jwt.SigningMethodHS512, testSecret, "u1", "s1", testNow.Add(time.Hour))},
		{"expired", signTestToken(t, jwt.SigningMethodHS256, testSecret, "u1", "s1", testNow.Add(-time.Minute))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAuthService(t)

			_, err := svc.Resolve(context.Background(), tt.token)

			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestAuthService_Resolve_LapsedVIP(t *testing.T) {
	svc, users, sessions := newAuthService(t)

	sessions.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", UserID: "u1", ExpiresAt: testNow.Add(time.Hour)}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{
		ID: "u1", Role: domain.RoleVIP,
		Subscription: &domain.Subscription{EndsAt: testNow.Add(-time.Hour)},
	}, nil)

	ident, err := svc.Resolve(context.Background(), signTestToken(t, jwt.SigningMethodHS256, testSecret, "u1", "s1", testNow.Add(time.Hour)))

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, ident.Role)
}

func TestAuthService_SignOut(t *testing.T) {
	svc, _, sessions := newAuthService(t)

	sessions.EXPECT().Revoke(mock.Anything, "s-u1", testNow).Return(nil)

	require.NoError(t, svc.SignOut(context.Background(), attendee(domain.RoleUser)))
	assert.ErrorIs(t, svc.SignOut(context.Background(), nil), domain.ErrUnauthorized)
}

func signTestToken(t *testing.T, method jwt.SigningMethod, secret, sub, sid string, exp time.Time) string {
	t.Helper()
	claims := sessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}
