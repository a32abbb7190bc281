// Package mail sends transactional email via AWS SES (SESv2 API).
package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"

	appConfig "github.com/aidnetlk/aidnet/internal/config"
)

// Mailer sends the application's transactional mail.
type Mailer interface {
	// SendInvitation mails a team invitation accept link.
	SendInvitation(ctx context.Context, toEmail, firstName, organizationName, token string) error
	// SendPasswordReset mails a password reset link.
	SendPasswordReset(ctx context.Context, toEmail, firstName, token string, accountID uint) error
}

// SESMailer sends mail through AWS SESv2.
type SESMailer struct {
	client *sesv2.Client
	cfg    appConfig.MailConfig
	logger *zap.SugaredLogger
}

// NewSESMailer creates a mailer from mail configuration. When sending
// is disabled, mail is logged instead of sent.
func NewSESMailer(ctx context.Context, cfg appConfig.MailConfig, logger *zap.SugaredLogger) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESMailer{
		client: sesv2.NewFromConfig(awsCfg),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// SendInvitation mails a team invitation accept link.
func (m *SESMailer) SendInvitation(ctx context.Context, toEmail, firstName, organizationName, token string) error {
	subject := fmt.Sprintf("You have been invited to join %s", organizationName)
	link := fmt.Sprintf("%s/team/accept?token=%s", m.cfg.AppBaseURL, token)
	body := invitationHTML(firstName, organizationName, link)

	return m.send(ctx, toEmail, subject, body)
}

// SendPasswordReset mails a password reset link.
func (m *SESMailer) SendPasswordReset(ctx context.Context, toEmail, firstName, token string, accountID uint) error {
	subject := "Reset your password"
	link := fmt.Sprintf("%s/auth/reset-password?token=%s&id=%d", m.cfg.AppBaseURL, token, accountID)
	body := passwordResetHTML(firstName, link)

	return m.send(ctx, toEmail, subject, body)
}

func (m *SESMailer) send(ctx context.Context, toEmail, subject, htmlBody string) error {
	if !m.cfg.Enabled {
		m.logger.Infow("mail sending disabled, skipping", "to", toEmail, "subject", subject)
		return nil
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.cfg.FromEmail),
		Destination:      &sestypes.Destination{ToAddresses: []string{toEmail}},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body:    &sestypes.Body{Html: &sestypes.Content{Data: aws.String(htmlBody)}},
			},
		},
	}
	if m.cfg.ReplyToEmail != "" {
		input.ReplyToAddresses = []string{m.cfg.ReplyToEmail}
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
