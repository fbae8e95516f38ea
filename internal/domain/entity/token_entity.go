package entity

import "time"

// AuthToken is an opaque bearer credential owned by exactly one user.
type AuthToken struct {
	Key       string
	UserID    string
	CreatedAt time.Time
}
