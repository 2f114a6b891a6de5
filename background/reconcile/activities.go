package reconcile

import (
	"context"
	"time"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"
)

// handshakeGracePeriod keeps very fresh handshakes out of a reconcile
// round, so a handshake created while its request resolves is not
// closed before anyone saw it.
const handshakeGracePeriod = 5 * time.Minute

// ResolveOrphanedHandshakesActivity closes every pending handshake
// whose request is no longer open and returns how many were touched.
func (r *ReconcileWorker) ResolveOrphanedHandshakesActivity(ctx context.Context) (int64, error) {
	logger := activity.GetLogger(ctx)

	resolved, err := r.mongo.ResolveOrphanedHandshakes(time.Now().Add(-handshakeGracePeriod))
	if err != nil {
		logger.Error("Fail to resolve orphaned handshakes", zap.Error(err))
		return 0, err
	}

	if resolved > 0 {
		logger.Info("Resolved orphaned handshakes", zap.Int64("count", resolved))
	}

	return resolved, nil
}
