package notifier

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog"
)

// EmailAPI is the subset of the SES client used here.
type EmailAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesEmailSender struct {
	client EmailAPI
	sender string
	logger zerolog.Logger
}

// NewSESEmailSender builds an SES client from the default AWS credential chain.
func NewSESEmailSender(ctx context.Context, region, sender string, logger zerolog.Logger) (EmailSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSESEmailSenderWithClient(ses.NewFromConfig(awsCfg), sender, logger), nil
}

// NewSESEmailSenderWithClient wraps an existing SES client.
func NewSESEmailSenderWithClient(client EmailAPI, sender string, logger zerolog.Logger) EmailSender {
	return &sesEmailSender{
		client: client,
		sender: sender,
		logger: logger.With().Str("component", "email").Logger(),
	}
}

func (s *sesEmailSender) SendVerification(ctx context.Context, to string, otp int) error {
	subject := "Verify your food-order account"
	text := fmt.Sprintf("Your verification code is %d. It expires in 30 minutes.", otp)
	html := fmt.Sprintf(`<html><body><p>Your verification code is <strong>%d</strong>.</p><p>It expires in 30 minutes.</p></body></html>`, otp)
	return s.send(ctx, to, subject, text, html)
}

func (s *sesEmailSender) SendOrderConfirmation(ctx context.Context, to, orderNumber string, amount float64) error {
	total := strconv.FormatFloat(amount, 'f', 2, 64)
	subject := fmt.Sprintf("Order #%s confirmed", orderNumber)
	text := fmt.Sprintf("Thank you for your order!\n\nOrder ID: %s\nAmount payable: %s\n\nPay cash on delivery.", orderNumber, total)
	html := fmt.Sprintf(`<html><body>
<p>Thank you for your order!</p>
<ul>
<li>Order ID: %s</li>
<li>Amount payable: %s</li>
</ul>
<p>Pay cash on delivery.</p>
</body></html>`, orderNumber, total)
	return s.send(ctx, to, subject, text, html)
}

func (s *sesEmailSender) send(ctx context.Context, to, subject, text, html string) error {
	if to == "" {
		return errors.New("recipient email address is empty")
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(html)},
				Text: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(text)},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		s.logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
