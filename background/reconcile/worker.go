package reconcile

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/lifelink-inc/lifelink-api/store"
)

const TaskListName = "lifelink-reconcile-tasks"

// ReconcileWorker closes handshakes whose parent request is gone.
// Resolving a request on the API path touches exactly two documents;
// the fan-out to its handshakes happens here, eventually.
type ReconcileWorker struct {
	domain string
	mongo  store.LifeLinkStore
}

func NewReconcileWorker(domain string, mongo store.LifeLinkStore) *ReconcileWorker {
	return &ReconcileWorker{
		domain: domain,
		mongo:  mongo,
	}
}

func (r *ReconcileWorker) Register() {
	workflow.RegisterWithOptions(r.HandshakeReconcileWorkflow, workflow.RegisterOptions{Name: "HandshakeReconcileWorkflow"})

	activity.RegisterWithOptions(r.ResolveOrphanedHandshakesActivity, activity.RegisterOptions{Name: "ResolveOrphanedHandshakesActivity"})
}

func (r *ReconcileWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		r.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
