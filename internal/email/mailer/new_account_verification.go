// internal/email/mailer/new_account_verification.go
package mailer

import (
	"context"

	"github.com/dangerclosesec/sitebook/internal/email"
)

const fromName = "Sitebook"

// VerificationTemplateData contains data for the verification email template
type VerificationTemplateData struct {
	FirstName        string
	CompanyName      string
	VerificationLink string
}

// SendVerificationEmail sends a verification email to a new account.
func SendVerificationEmail(ctx context.Context, s email.Sender, to, firstName, companyName, verificationLink string) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Vitajte v Sitebooku! Potvrďte svoj e-mail",
		TemplateName: "new_account_verification",
		TemplateData: VerificationTemplateData{
			FirstName:        firstName,
			CompanyName:      companyName,
			VerificationLink: verificationLink,
		},
	})
}
