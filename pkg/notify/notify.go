// Package notify delivers owner-facing notifications about finished
// deployments. The shipped implementation only writes to the log; a mail or
// chat sender slots in behind the same method set.
package notify

import (
	"context"

	"go.uber.org/zap"
)

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) ShopReady(_ context.Context, shopID int) error {
	zap.L().Info("Shop ready notification", zap.Int("shopID", shopID))
	return nil
}
