package events

import (
	"context"
	"time"
)

const (
	UserCreated = "user.created"
	UserUpdated = "user.updated"
)

// UserEvent is the JSON payload published for user lifecycle changes.
type UserEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// JSONPublisher is satisfied by helpers.RabbitPublisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Publisher sends user events to a queue.
type Publisher struct {
	pub JSONPublisher
}

func NewPublisher(pub JSONPublisher) *Publisher {
	return &Publisher{pub: pub}
}

func (p *Publisher) Publish(ctx context.Context, eventType, userID, email string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return p.pub.PublishJSON(ctx, UserEvent{
		Type:       eventType,
		UserID:     userID,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
}
