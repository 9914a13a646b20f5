package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanRegister(t *testing.T) {
	future := func(cat domain.Category, price int64) *domain.Event {
		return &domain.Event{ID: "e1", Date: "2025-06-11", Time: "18:00", Category: cat, Price: decimal.NewFromInt(price)}
	}
	past := func(cat domain.Category) *domain.Event {
		return &domain.Event{ID: "e1", Date: "2025-06-09", Time: "18:00", Category: cat}
	}
	registered := func(e *domain.Event) *domain.Event {
		e.RegisteredUsers = []domain.Registration{{UserID: "u1"}}
		return e
	}

	tests := []struct {
		name    string
		ident   *domain.Identity
		event   *domain.Event
		verdict domain.Verdict
		reason  string
		amount  decimal.Decimal
	}{
		{"anonymous", nil, future(domain.CategoryNormal, 0), domain.VerdictBlocked, domain.ReasonSignIn, decimal.Zero},
		{"normal future", attendee(domain.RoleUser), future(domain.CategoryNormal, 0), domain.VerdictAllowedDirect, "", decimal.Zero},
		{"normal expired", attendee(domain.RoleUser), past(domain.CategoryNormal), domain.VerdictBlocked, domain.ReasonExpired, decimal.Zero},
		{"normal registered", attendee(domain.RoleUser), registered(future(domain.CategoryNormal, 0)), domain.VerdictBlocked, domain.ReasonAlreadyRegistered, decimal.Zero},
		{"premium non vip", attendee(domain.RoleUser), future(domain.CategoryPremium, 300), domain.VerdictBlocked, domain.ReasonVIPRequired, decimal.Zero},
		{"premium non vip expired", attendee(domain.RoleUser), past(domain.CategoryPremium), domain.VerdictBlocked, domain.ReasonVIPRequired, decimal.Zero},
		{"premium creator", creator(), future(domain.CategoryPremium, 300), domain.VerdictBlocked, domain.ReasonVIPRequired, decimal.Zero},
		{"premium vip expired", attendee(domain.RoleVIP), past(domain.CategoryPremium), domain.VerdictBlocked, domain.ReasonExpired, decimal.Zero},
		{"premium vip registered", attendee(domain.RoleVIP), registered(future(domain.CategoryPremium, 300)), domain.VerdictBlocked, domain.ReasonAlreadyRegistered, decimal.Zero},
		{"premium vip priced", attendee(domain.RoleVIP), future(domain.CategoryPremium, 300), domain.VerdictAllowedViaPayment, "", decimal.NewFromInt(300)},
		{"premium vip default price", attendee(domain.RoleVIP), future(domain.CategoryPremium, 0), domain.VerdictAllowedViaPayment, "", decimal.NewFromInt(199)},
		{"unparseable schedule", attendee(domain.RoleUser), &domain.Event{ID: "e1", Date: "soon", Time: "18:00"}, domain.VerdictBlocked, domain.ReasonExpired, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanRegister(tt.ident, tt.event, testNow, nil)

			assert.Equal(t, tt.verdict, d.Verdict)
			assert.Equal(t, tt.reason, d.Reason)
			assert.True(t, tt.amount.Equal(d.Amount), "amount %s", d.Amount)
		})
	}
}

func TestCanRegister_StartingNowIsNotExpired(t *testing.T) {
	e := &domain.Event{ID: "e1", Date: "2025-06-10", Time: "12:00", Category: domain.CategoryNormal}

	d := CanRegister(attendee(domain.RoleUser), e, testNow, nil)

	assert.Equal(t, domain.VerdictAllowedDirect, d.Verdict)
}
