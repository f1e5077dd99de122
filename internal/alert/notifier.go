package alert

import (
	"context"
	"fmt"
	"log/slog"

	"heat-risk/internal/config"
	"heat-risk/internal/observability"
)

const subject = "Heat Risk Alert"

// Outcome is the result of one notification attempt
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Message is a rendered plain text alert
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// NewMessage renders the alert for a city and its score
func NewMessage(from, to, city string, score float64) Message {
	return Message{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    fmt.Sprintf("Extreme heat risk detected in %s!\nRisk score: %.2f", city, score),
	}
}

// Sender delivers a rendered message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ShouldAlert reports whether a score warrants a notification. No threshold
// means no alerts, and manually supplied readings never alert.
func ShouldAlert(score float64, threshold *float64, manual bool) bool {
	if threshold == nil || manual {
		return false
	}
	return score > *threshold
}

// Notifier sends heat risk alerts by email
type Notifier struct {
	cfg     config.AlertConfig
	sender  Sender
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewNotifier creates a notifier that delivers over SMTP using cfg
func NewNotifier(cfg config.AlertConfig, metrics *observability.Metrics, logger *slog.Logger) *Notifier {
	return NewNotifierWithSender(cfg, NewSMTPSender(cfg), metrics, logger)
}

// NewNotifierWithSender creates a notifier with a custom sender.
// This is useful for testing with mock senders.
func NewNotifierWithSender(cfg config.AlertConfig, sender Sender, metrics *observability.Metrics, logger *slog.Logger) *Notifier {
	return &Notifier{
		cfg:     cfg,
		sender:  sender,
		metrics: metrics,
		logger:  logger.With("component", "alert-notifier"),
	}
}

// Threshold returns the configured alert threshold, or nil when unset
func (n *Notifier) Threshold() *float64 {
	return n.cfg.Threshold
}

// Notify emails an alert for city. Delivery failures are logged and
// reported through the outcome, never returned.
func (n *Notifier) Notify(ctx context.Context, city string, score float64) Outcome {
	if !n.cfg.Enabled() {
		n.logger.Debug("alerting disabled, skipping", "city", city)
		return n.record(OutcomeSkipped)
	}

	msg := NewMessage(n.cfg.EmailAddress, n.cfg.Recipient, city, score)
	if err := n.sender.Send(ctx, msg); err != nil {
		n.logger.Error("failed to send alert",
			"city", city,
			"recipient", RedactEmail(msg.To),
			"error", err,
		)
		return n.record(OutcomeFailed)
	}

	n.logger.Info("alert sent",
		"city", city,
		"score", score,
		"recipient", RedactEmail(msg.To),
	)
	return n.record(OutcomeSent)
}

func (n *Notifier) record(outcome Outcome) Outcome {
	n.metrics.Alerts.WithLabelValues(string(outcome)).Inc()
	return outcome
}
