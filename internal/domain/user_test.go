package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleVIP, ParseRole("vip"))
	assert.Equal(t, RoleCreator, ParseRole(" Creator"))
	assert.Equal(t, RoleUser, ParseRole("admin"))
}

func TestUser_EffectiveRole(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	active := &User{Role: RoleVIP, Subscription: &Subscription{EndsAt: now.Add(time.Hour)}}
	lapsed := &User{Role: RoleVIP, Subscription: &Subscription{EndsAt: now}}
	grandfathered := &User{Role: RoleVIP}

	assert.Equal(t, RoleVIP, active.EffectiveRole(now))
	assert.Equal(t, RoleUser, lapsed.EffectiveRole(now))
	assert.Equal(t, RoleVIP, grandfathered.EffectiveRole(now))
}

func TestNewIdentity_FallsBackToEmail(t *testing.T) {
	ident := NewIdentity(&User{ID: "u1", Email: "a@b.c", Role: RoleUser}, "s1", time.Now())

	assert.Equal(t, "a@b.c", ident.DisplayName)
	assert.Equal(t, "s1", ident.SessionID)
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(19900), ToMinorUnits(decimal.NewFromInt(199)))
	assert.Equal(t, int64(1050), ToMinorUnits(decimal.RequireFromString("10.495")))
}
