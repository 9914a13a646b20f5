package domain

import "github.com/shopspring/decimal"

type Verdict string

const (
	VerdictBlocked           Verdict = "blocked"
	VerdictAllowedDirect     Verdict = "allowed_direct"
	VerdictAllowedViaPayment Verdict = "allowed_via_payment"
)

const (
	ReasonSignIn            = "must sign in"
	ReasonExpired           = "expired"
	ReasonVIPRequired       = "VIP required"
	ReasonAlreadyRegistered = "already registered"
)

// Decision is the outcome of a registration eligibility check.
type Decision struct {
	Verdict Verdict         `json:"verdict"`
	Reason  string          `json:"reason,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
}

func Blocked(reason string) Decision {
	return Decision{Verdict: VerdictBlocked, Reason: reason}
}

func AllowedDirect() Decision {
	return Decision{Verdict: VerdictAllowedDirect}
}

func AllowedViaPayment(amount decimal.Decimal) Decision {
	return Decision{Verdict: VerdictAllowedViaPayment, Amount: amount}
}

func (d Decision) Allowed() bool {
	return d.Verdict != VerdictBlocked
}
