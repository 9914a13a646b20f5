package service

import (
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
)

// CanRegister decides whether ident may register for e at now. It performs no I/O.
// The VIP check runs before the expiry check, so a premium event always reports
// "VIP required" to a non-VIP caller whether or not it has started.
func CanRegister(ident *domain.Identity, e *domain.Event, now time.Time, loc *time.Location) domain.Decision {
	if ident == nil || ident.UserID == "" {
		return domain.Blocked(domain.ReasonSignIn)
	}
	if e.IsPremium() && ident.Role != domain.RoleVIP {
		return domain.Blocked(domain.ReasonVIPRequired)
	}
	if e.Expired(now, loc) {
		return domain.Blocked(domain.ReasonExpired)
	}
	if e.IsRegistered(ident.UserID) {
		return domain.Blocked(domain.ReasonAlreadyRegistered)
	}
	if e.IsPremium() {
		return domain.AllowedViaPayment(e.EffectivePrice())
	}
	return domain.AllowedDirect()
}
