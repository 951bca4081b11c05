// Package notification delivers client notices through an external provider.
package notification

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=gateway.go -destination=mocks/gateway.go -package=mocks

// Gateway delivers rendered notifications.
type Gateway interface {
	SendEmail(ctx context.Context, template, recipient string, substitutions map[string]string) error
	SendSMS(ctx context.Context, message, phone string) error
}

// Delivery channels.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// ErrNoRecipient is returned when a message has no address to deliver to.
var ErrNoRecipient = errors.New("notification recipient is empty")

// Message is the job published for the delivery service.
type Message struct {
	ID            string            `json:"id"`
	Channel       string            `json:"channel"`
	Template      string            `json:"template,omitempty"`
	Recipient     string            `json:"recipient"`
	Substitutions map[string]string `json:"substitutions,omitempty"`
	Text          string            `json:"text,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
