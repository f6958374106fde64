// Package notifier hands verification codes and order confirmations to
// external email and SMS relays.
package notifier

import (
	"context"

	"github.com/rs/zerolog"
)

// EmailSender sends transactional email.
type EmailSender interface {
	SendVerification(ctx context.Context, to string, otp int) error
	SendOrderConfirmation(ctx context.Context, to, orderNumber string, amount float64) error
}

// SMSSender sends one-time passwords by text message.
type SMSSender interface {
	SendOTP(ctx context.Context, phone string, otp int) error
}

// nopNotifier logs instead of sending. Used when a relay is disabled.
type nopNotifier struct {
	logger zerolog.Logger
}

// NewNopEmailSender returns an EmailSender that only logs.
func NewNopEmailSender(logger zerolog.Logger) EmailSender {
	return &nopNotifier{logger: logger.With().Str("component", "email").Logger()}
}

// NewNopSMSSender returns an SMSSender that only logs.
func NewNopSMSSender(logger zerolog.Logger) SMSSender {
	return &nopNotifier{logger: logger.With().Str("component", "sms").Logger()}
}

func (n *nopNotifier) SendVerification(ctx context.Context, to string, otp int) error {
	n.logger.Debug().Str("to", to).Msg("email disabled, verification not sent")
	return nil
}

func (n *nopNotifier) SendOrderConfirmation(ctx context.Context, to, orderNumber string, amount float64) error {
	n.logger.Debug().Str("to", to).Str("order_number", orderNumber).Msg("email disabled, confirmation not sent")
	return nil
}

func (n *nopNotifier) SendOTP(ctx context.Context, phone string, otp int) error {
	n.logger.Debug().Str("phone", phone).Msg("sms disabled, otp not sent")
	return nil
}
