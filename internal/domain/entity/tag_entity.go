package entity

import (
	"errors"
	"strings"
	"time"
)

var ErrTagNameRequired = errors.New("tag name is required")

// Tag is a user-owned label.
type Tag struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

// NewTag builds a tag owned by userID with a trimmed, non-blank name.
func NewTag(userID, name string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTagNameRequired
	}
	return &Tag{UserID: userID, Name: name}, nil
}

func (t *Tag) String() string { return t.Name }
