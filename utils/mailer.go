package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient *ses.Client
	sesFrom   string
)

// InitSES must be called once at startup before any mail is sent.
func InitSES(region, fromAddress string) error {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("load AWS config for SES: %w", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	sesFrom = fromAddress
	return nil
}

func sendEmail(to, subject, htmlBody string) error {
	if sesClient == nil {
		return fmt.Errorf("SES client not initialized")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(htmlBody)},
			},
		},
		Source: aws.String(sesFrom),
	}

	if _, err := sesClient.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendResetEmail mails a password-reset link. The link expires shortly,
// which the message states.
func SendResetEmail(to, resetURL string) error {
	body := fmt.Sprintf(`<h2>Password Reset Request</h2>
<p>You requested a password reset. Click the link below to reset your password:</p>
<a href="%s">Reset Password</a>
<p>This link will expire in 10 minutes.</p>
<p>If you didn't request this, please ignore this email.</p>`, resetURL)

	return sendEmail(to, "Password Reset Request", body)
}
