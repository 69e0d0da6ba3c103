package mailqueue

import (
	"context"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/infrastructure/external_services"
	"github.com/learnaray/learnaray/internal/infrastructure/metrics"
)

// SyncDispatcher delivers mail inline over SMTP. Used when no AMQP broker is
// configured; callers see the same dispatcher interface either way.
type SyncDispatcher struct {
	mailer contract.IEmailService
}

func NewSyncDispatcher(mailer contract.IEmailService) *SyncDispatcher {
	return &SyncDispatcher{mailer: mailer}
}

var _ contract.IMailDispatcher = (*SyncDispatcher)(nil)

func (d *SyncDispatcher) Enqueue(ctx context.Context, job contract.MailJob) error {
	body := external_services.RenderMailBody(job)
	if err := d.mailer.SendEmail(ctx, job.To, job.Subject, body); err != nil {
		return err
	}
	metrics.MailEnqueued.Inc()
	return nil
}
