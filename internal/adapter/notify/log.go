// Package notify implements the Notifier port. Actual email delivery is
// handled by an external provider outside this service; the shipped
// implementation records the notification intent in the log.
package notify

import (
	"context"
	"log/slog"

	"adloom/internal/core/domain"
)

// LogNotifier logs withdrawal notifications instead of sending mail.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates the notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyWithdrawal records the notification. It never fails.
func (n *LogNotifier) NotifyWithdrawal(_ context.Context, w domain.Withdrawal) error {
	n.logger.Info("withdrawal requested",
		slog.String("withdrawal_id", w.ID),
		slog.String("user_id", w.UserID),
		slog.Int64("amount_cents", w.AmountCents),
		slog.String("phone", w.PhoneNumber))
	return nil
}
