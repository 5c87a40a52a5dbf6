package notifier

import (
	"context"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/rights"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg/logger"
)

// LogNotifier publishes expiration warnings as structured log events, which
// the log pipeline routes to the RTV team channel.
type LogNotifier struct {
	log *logger.Logger
}

var _ interfaces.IRightsNotifier = (*LogNotifier)(nil)

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, r entities.RightsRecord, threshold rights.Threshold, daysLeft int) error {
	fields := map[string]any{
		"event":        "rights_expiration",
		"rights_id":    r.ID,
		"title":        r.Title,
		"client_id":    r.ClientID,
		"client_name":  r.ClientName,
		"product_name": r.ProductName,
		"threshold":    int(threshold),
		"days_left":    daysLeft,
	}
	if r.ExpireDate != nil {
		fields["expire_date"] = r.ExpireDate.Format("2006-01-02")
	}
	n.log.Warn(ctx, "rights expiration warning", fields)
	return nil
}
