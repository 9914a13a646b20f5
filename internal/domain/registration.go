package domain

import (
	"reflect"
	"time"
)

type Registration struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// AppendUnion mirrors the document store's array-union write: the entry is added
// unless a deeply equal one is already present. Two registrations of the same user
// made at different instants are not equal, so both survive.
func AppendUnion(list []Registration, r Registration) []Registration {
	for _, existing := range list {
		if reflect.DeepEqual(existing, r) {
			return list
		}
	}
	return append(list, r)
}

// AddRegistration appends r only when the user is not registered yet.
func AddRegistration(list []Registration, r Registration) ([]Registration, bool) {
	for _, existing := range list {
		if existing.UserID == r.UserID {
			return list, false
		}
	}
	return append(list, r), true
}
