package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}

// Auth rejects requests without a valid session token.
func Auth(resolver IdentityResolver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ident, err := resolve(c, resolver)
		if err != nil {
			status := http.StatusUnauthorized
			if !errors.Is(err, domain.ErrUnauthorized) {
				status = http.StatusInternalServerError
			}
			c.AbortWithStatusJSON(status, ginext.H{"error": err.Error()})
			return
		}
		if ident == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		SetIdentity(c, ident)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets anonymous requests through.
func OptionalAuth(resolver IdentityResolver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if ident, err := resolve(c, resolver); err == nil && ident != nil {
			SetIdentity(c, ident)
		}
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ident := Identity(c)
		if ident == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthorized.Error()})
			return
		}
		for _, r := range roles {
			if ident.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
	}
}

// Identity returns the caller attached by Auth or OptionalAuth, or nil.
func Identity(c *ginext.Context) *domain.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, _ := v.(*domain.Identity)
	return ident
}

func SetIdentity(c *ginext.Context, ident *domain.Identity) {
	c.Set(identityKey, ident)
}

func resolve(c *ginext.Context, resolver IdentityResolver) (*domain.Identity, error) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return resolver.Resolve(c.Request.Context(), token)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
