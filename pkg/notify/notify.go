// Package notify defines the outbound alert channels.
package notify

import "context"

// EmailSender delivers an HTML email.
//
//go:generate mockgen -package mocknotify -source=notify.go -destination=mock/mocknotify.go *
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// WebhookSender posts a JSON payload to a URL.
type WebhookSender interface {
	SendWebhook(ctx context.Context, url string, payload []byte) error
}
