package gateway

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/adnangitonga/diagnoxis/internal/pkg/apperror"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

const otpEmailTemplate = `
<h2 style="color: #84cc16;">Your Verification Code</h2>
<p>Hello, your One-Time Password (OTP) is:</p>
<p style="font-size: 36px; font-weight: bold; color: #84cc16;">%s</p>
<p>This code will expire in <strong>10 minutes</strong>.<br />
Please do not share this code with anyone.</p>
<p style="font-size: 12px; color: #6b7280;">If you did not request this code, please ignore this email.</p>
`

// MailGateway delivers OTP emails over SMTP
type MailGateway struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewMailGateway creates a new SMTP mail gateway
func NewMailGateway(cfg models.SMTPConfig) *MailGateway {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &MailGateway{
		dialer:   dialer,
		from:     cfg.Username,
		fromName: cfg.FromName,
	}
}

// SendOTPEmail delivers a one-time code to the recipient. The send is
// bounded by the request context so a stalled SMTP session cannot hang the
// login flow.
func (g *MailGateway) SendOTPEmail(ctx context.Context, recipient, code string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", g.from, g.fromName)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Your OTP Code – DiagnoXis")
	m.SetBody("text/html", fmt.Sprintf(otpEmailTemplate, code))

	errCh := make(chan error, 1)
	go func() {
		errCh <- g.dialer.DialAndSend(m)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return apperror.Wrap(err, apperror.ErrCodeDeliveryFailed, "failed to send OTP email")
		}
		return nil
	case <-ctx.Done():
		return apperror.Wrap(ctx.Err(), apperror.ErrCodeDeliveryFailed, "OTP email send timed out")
	}
}
