package reconcile

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

const (
	HandshakeReconcileInterval = 10 * time.Minute
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// HandshakeReconcileWorkflow periodically sweeps pending handshakes
// that lost their parent request and restarts itself.
func (r *ReconcileWorker) HandshakeReconcileWorkflow(ctx workflow.Context) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "reconcileCheckSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)

	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, HandshakeReconcileInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodic handshake reconciliation")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger handshake reconciliation by signal")
	})

	selector.Select(ctx)

	var resolved int64
	err := workflow.ExecuteActivity(ctx, r.ResolveOrphanedHandshakesActivity).Get(ctx, &resolved)
	if err != nil {
		logger.Error("Fail to reconcile handshakes", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, r.HandshakeReconcileWorkflow)
	}

	if resolved > 0 {
		logger.Info("Handshake reconciliation done", zap.Int64("resolved", resolved))
	}

	return workflow.NewContinueAsNewError(ctx, r.HandshakeReconcileWorkflow)
}
