// Package alert matches freshly scored domains against subscriber thresholds
// and delivers digests over email and webhook channels.
package alert

import (
	"context"
	"domainfinder/internal/config"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/metrics"
	"domainfinder/pkg/notify"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Channel labels.
const (
	ChannelEmail   = "email"
	ChannelWebhook = "webhook"
)

// maxParallelSends bounds concurrent channel sends.
const maxParallelSends = 8

// Summary reports the outcome of one Dispatch.
type Summary struct {
	EmailSent   int
	WebhookSent int
	Errors      []error
}

// Err joins the collected errors, nil when every send succeeded.
func (s Summary) Err() error {
	return errors.Join(s.Errors...)
}

type Options struct {
	// Cap is the maximum number of domains per subscription.
	Cap int
	// SendTimeout bounds a single email or webhook send.
	SendTimeout time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Cap:         cfg.Pipeline.AlertCap,
		SendTimeout: cfg.Notify.Timeout,
	}
}

type dispatcher struct {
	options Options
	email   notify.EmailSender
	webhook notify.WebhookSender
	metrics *metrics.Metrics
}

// New creates a Dispatcher. A nil sender disables its channel.
func New(email notify.EmailSender, webhook notify.WebhookSender, m *metrics.Metrics, options Options) Dispatcher {
	if options.Cap <= 0 {
		options.Cap = DefaultCap
	}

	return &dispatcher{options: options, email: email, webhook: webhook, metrics: m}
}

func (d *dispatcher) send(ctx context.Context, channel string, fn func(ctx context.Context) error) error {
	if d.options.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.options.SendTimeout)
		defer cancel()
	}

	err := fn(ctx)
	outcome := metrics.OutcomeSent
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	d.metrics.ObserveAlert(ctx, channel, outcome)

	return err
}

func (d *dispatcher) Dispatch(
	ctx context.Context,
	subs []domain.AlertSubscription,
	records []domain.DomainRecord,
) Summary {
	var (
		mu      sync.Mutex
		summary Summary
	)
	record := func(channel string, err error) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case err != nil:
			summary.Errors = append(summary.Errors, err)
		case channel == ChannelEmail:
			summary.EmailSent++
		default:
			summary.WebhookSent++
		}
	}

	// sends never return errors to the group so one failure does not cancel
	// the others
	g := &errgroup.Group{}
	g.SetLimit(maxParallelSends)

	for _, sub := range subs {
		matched := Filter(sub, records, d.options.Cap)
		subCtx := logger.WithFields(ctx, zap.Int64("subscriptionID", sub.ID))
		if len(matched) == 0 {
			logger.Debug(subCtx, "no qualifying domains for subscription")

			continue
		}

		if sub.Email != "" && d.email != nil {
			to := sub.Email
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					record(ChannelEmail, fmt.Errorf("email to subscription %d not sent: %w", sub.ID, err))

					return nil
				}
				err := d.send(subCtx, ChannelEmail, func(ctx context.Context) error {
					body, err := EmailHTML(matched)
					if err != nil {
						return err
					}

					return d.email.SendEmail(ctx, to, EmailSubject(len(matched)), body)
				})
				if err != nil {
					logger.Error(subCtx, "could not send email alert", zap.Error(err))
					err = fmt.Errorf("email to subscription %d: %w", sub.ID, err)
				}
				record(ChannelEmail, err)

				return nil
			})
		}

		if sub.WebhookURL != "" && d.webhook != nil {
			url := sub.WebhookURL
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					record(ChannelWebhook, fmt.Errorf("webhook of subscription %d not sent: %w", sub.ID, err))

					return nil
				}
				err := d.send(subCtx, ChannelWebhook, func(ctx context.Context) error {
					return d.webhook.SendWebhook(ctx, url, WebhookPayload(matched))
				})
				if err != nil {
					logger.Error(subCtx, "could not send webhook alert", zap.Error(err))
					err = fmt.Errorf("webhook of subscription %d: %w", sub.ID, err)
				}
				record(ChannelWebhook, err)

				return nil
			})
		}
	}
	_ = g.Wait()

	logger.Info(ctx, "alerts dispatched",
		zap.Int("subscriptions", len(subs)),
		zap.Int("emailSent", summary.EmailSent),
		zap.Int("webhookSent", summary.WebhookSent),
		zap.Int("errors", len(summary.Errors)))

	return summary
}
