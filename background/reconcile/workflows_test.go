package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	lifelinkcadence "github.com/lifelink-inc/lifelink-api/external/cadence"
)

type ReconcileWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env    *testsuite.TestWorkflowEnvironment
	worker *ReconcileWorker
}

func (ts *ReconcileWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.worker = NewReconcileWorker("test", nil)
	ts.worker.Register()
}

func (ts *ReconcileWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: lifelinkcadence.NewMsgPackDataConverter(),
	})
}

// TestHandshakeReconcileWorkflowNormalRun checks one sweep followed by
// a restart
func (ts *ReconcileWorkflowTestSuite) TestHandshakeReconcileWorkflowNormalRun() {
	ts.env.OnActivity(ts.worker.ResolveOrphanedHandshakesActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 3, nil
		})

	ts.env.ExecuteWorkflow(ts.worker.HandshakeReconcileWorkflow)

	ts.env.AssertNumberOfCalls(ts.T(), "ResolveOrphanedHandshakesActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestHandshakeReconcileWorkflowActivityFailure checks the workflow
// still restarts when a sweep fails
func (ts *ReconcileWorkflowTestSuite) TestHandshakeReconcileWorkflowActivityFailure() {
	ts.env.OnActivity(ts.worker.ResolveOrphanedHandshakesActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 0, context.DeadlineExceeded
		})

	ts.env.ExecuteWorkflow(ts.worker.HandshakeReconcileWorkflow)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func TestReconcileWorkflow(t *testing.T) {
	suite.Run(t, new(ReconcileWorkflowTestSuite))
}
