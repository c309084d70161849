package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendgridMessage builds the v3 payload. Click tracking stays off so
// verification and invite links reach the recipient unrewritten.
func sendgridMessage(data EmailData, htmlContent, textContent string, sandbox bool) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(data.FromName, data.From))
	m.Subject = data.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", data.To))
	m.AddPersonalizations(p)

	if data.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", data.ReplyTo))
	}
	if data.TemplateName != "" {
		m.AddCategories("sitebook", data.TemplateName)
	}

	m.AddContent(mail.NewContent("text/plain", textContent), mail.NewContent("text/html", htmlContent))

	tracking := mail.NewTrackingSettings()
	tracking.SetClickTracking(mail.NewClickTrackingSetting().SetEnable(false).SetEnableText(false))
	m.SetTrackingSettings(tracking)

	if sandbox {
		settings := mail.NewMailSettings()
		settings.SetSandboxMode(mail.NewSetting(true))
		m.SetMailSettings(settings)
	}

	return m
}

// sendWithSendgrid delivers through the Sendgrid v3 API. Sandbox mode
// validates the payload without delivering it.
func (s *Service) sendWithSendgrid(ctx context.Context, data EmailData, htmlContent, textContent string) error {
	message := sendgridMessage(data, htmlContent, textContent, s.config.Sendgrid.Sandbox)

	response, err := s.sendgridClient.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email via Sendgrid: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
