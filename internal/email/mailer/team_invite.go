package mailer

import (
	"context"

	"github.com/dangerclosesec/sitebook/internal/email"
)

type TeamInviteTemplateData struct {
	CompanyName string
	CompanyID   string
	InvitedBy   string
	ReplyTo     string
	InviteLink  string
}

// SendTeamInvite mails the join code of a company to a future member.
func SendTeamInvite(ctx context.Context, s email.Sender, to string, data TeamInviteTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		FromName:     fromName,
		ReplyTo:      data.ReplyTo,
		Subject:      "Pozvánka do tímu " + data.CompanyName,
		TemplateName: "team_invite",
		TemplateData: data,
	})
}
