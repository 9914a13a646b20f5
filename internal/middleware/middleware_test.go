package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func whoami(c *ginext.Context) {
	ident := Identity(c)
	if ident == nil {
		c.JSON(http.StatusOK, ginext.H{"user_id": ""})
		return
	}
	c.JSON(http.StatusOK, ginext.H{"user_id": ident.UserID})
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	alice := &domain.Identity{UserID: "u1", Role: domain.RoleUser}

	tests := []struct {
		name       string
		token      string
		setup      func(m *mocks.MockIdentityResolver)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "valid token",
			token: "good",
			setup: func(m *mocks.MockIdentityResolver) {
				m.EXPECT().Resolve(mock.Anything, "good").Return(alice, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "revoked session",
			token: "revoked",
			setup: func(m *mocks.MockIdentityResolver) {
				m.EXPECT().Resolve(mock.Anything, "revoked").Return(nil, domain.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "store failure",
			token: "good",
			setup: func(m *mocks.MockIdentityResolver) {
				m.EXPECT().Resolve(mock.Anything, "good").Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mocks.NewMockIdentityResolver(t)
			if tt.setup != nil {
				tt.setup(resolver)
			}

			r := ginext.New("test")
			r.GET("/me", Auth(resolver), whoami)

			w := do(r, tt.token)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestOptionalAuth_LetsAnonymousThrough(t *testing.T) {
	resolver := mocks.NewMockIdentityResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "expired").Return(nil, domain.ErrUnauthorized)

	r := ginext.New("test")
	r.GET("/me", OptionalAuth(resolver), whoami)

	assert.Equal(t, http.StatusOK, do(r, "").Code)

	w := do(r, "expired")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":""}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	resolver := mocks.NewMockIdentityResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "creator").Return(&domain.Identity{UserID: "c1", Role: domain.RoleCreator}, nil)
	resolver.EXPECT().Resolve(mock.Anything, "user").Return(&domain.Identity{UserID: "u1", Role: domain.RoleUser}, nil)

	r := ginext.New("test")
	r.GET("/me", Auth(resolver), RequireRole(domain.RoleCreator), whoami)

	assert.Equal(t, http.StatusOK, do(r, "creator").Code)
	assert.Equal(t, http.StatusForbidden, do(r, "user").Code)
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)))
	r.GET("/me", whoami)

	w := do(r, "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/me", func(c *ginext.Context) { panic("boom") })

	assert.Equal(t, http.StatusInternalServerError, do(r, "").Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("1.1.1.1"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	r := ginext.New("test")
	r.Use(rl.Middleware())
	r.GET("/me", whoami)

	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, "").Code)
}
