// Package mail delivers one-time passcodes. Transport is a collaborator
// behind a single-method interface; the pipeline never depends on how
// the message leaves the process.
package mail

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a plain-text email to a single recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender writes mail to the log instead of sending it. Used in
// development and tests when SES is not configured.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a log-only sender.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.logger.Info("mail not sent (no transport configured)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
