package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleCreator Role = "creator"
	RoleVIP     Role = "VIP"
)

// ParseRole accepts any casing; unknown values fall back to RoleUser.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "creator":
		return RoleCreator
	case "vip":
		return RoleVIP
	default:
		return RoleUser
	}
}

type Subscription struct {
	OrderID   string    `json:"order_id"`
	Months    int       `json:"months"`
	StartedAt time.Time `json:"started_at"`
	EndsAt    time.Time `json:"ends_at"`
}

type User struct {
	ID             string        `json:"id"`
	Email          string        `json:"email"`
	Username       string        `json:"username"`
	PasswordHash   string        `json:"-"`
	Role           Role          `json:"role"`
	PhotoURL       string        `json:"photo_url"`
	TelegramChatID *int64        `json:"telegram_chat_id"`
	Subscription   *Subscription `json:"subscription,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// EffectiveRole downgrades a VIP whose subscription has ended.
func (u *User) EffectiveRole(now time.Time) Role {
	if u.Role != RoleVIP {
		return u.Role
	}
	if u.Subscription != nil && !u.Subscription.EndsAt.IsZero() && !now.Before(u.Subscription.EndsAt) {
		return RoleUser
	}
	return RoleVIP
}

// Identity is the signed-in caller. It lives for one session and is passed explicitly.
type Identity struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
	PhotoURL    string `json:"photo_url"`
	SessionID   string `json:"-"`
}

func NewIdentity(u *User, sessionID string, now time.Time) *Identity {
	name := u.Username
	if name == "" {
		name = u.Email
	}
	return &Identity{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: name,
		Role:        u.EffectiveRole(now),
		PhotoURL:    u.PhotoURL,
		SessionID:   sessionID,
	}
}

type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// AuthToken is handed to the client on sign-in.
type AuthToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Identity  *Identity `json:"identity"`
}

type SignUpInput struct {
	Email          string
	Password       string
	Username       string
	Role           string
	PhotoURL       string
	TelegramChatID *int64
}
