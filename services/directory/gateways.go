package directory

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adnangitonga/diagnoxis/services/directory MailGW

// MailGW delivers notifications to hospital staff
type MailGW interface {
	SendOTPEmail(ctx context.Context, recipient, code string) error
}
