package external_services

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/learnaray/learnaray/internal/domain/contract"
)

// EmailService delivers mail over SMTP.
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
}

func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
	}
}

var _ contract.IEmailService = (*EmailService)(nil)

func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf(
			"To: %s\r\n"+
				"From: %s\r\n"+
				"Subject: %s\r\n"+
				"\r\n"+
				"%s\r\n",
			to, es.From, subject, body,
		),
	)
	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := smtp.SendMail(addr, auth, es.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

// RenderMailBody flattens a templated mail job into a plain-text body. The
// template name picks a canned layout; Data fills the salutation lines.
func RenderMailBody(job contract.MailJob) string {
	if job.Body != "" {
		return job.Body
	}
	name, _ := job.Data["name"].(string)
	switch job.Template {
	case "activation-mail":
		code, _ := job.Data["activation_code"].(string)
		return fmt.Sprintf("Hello %s,\n\nYour activation code is %s. It expires in 5 minutes.\n", name, code)
	case "welcome-mail":
		return fmt.Sprintf("Hello %s,\n\nYour account is now active. Welcome aboard!\n", name)
	case "question-reply":
		title, _ := job.Data["title"].(string)
		return fmt.Sprintf("Hello %s,\n\nYour question in %q has a new reply.\n", name, title)
	default:
		return fmt.Sprintf("Hello %s,\n", name)
	}
}
