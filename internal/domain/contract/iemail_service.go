package contract

import "context"

type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// MailJob is the outbound mail payload. It travels over the queue (or goes
// straight to SMTP in the synchronous fallback).
type MailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	Body     string         `json:"body,omitempty"`
}

// IMailDispatcher hands mail off without blocking the mutation that emits it.
type IMailDispatcher interface {
	Enqueue(ctx context.Context, job MailJob) error
}
