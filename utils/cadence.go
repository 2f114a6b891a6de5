package utils

import (
	"context"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/lifelink-inc/lifelink-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/lifelink-inc/lifelink-api/background/reconcile`
const ReconcileTaskListName = "lifelink-reconcile-tasks"

// TriggerHandshakeReconcile makes sure the periodic reconcile workflow
// is running. Safe to call on every boot; an already-running workflow
// keeps its schedule.
func TriggerHandshakeReconcile(client cadence.CadenceClient, c context.Context) error {
	_, err := client.SignalWithStartWorkflow(c,
		"handshake-reconcile", "reconcileCheckSignal", nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           "handshake-reconcile",
			TaskList:                     ReconcileTaskListName,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "HandshakeReconcileWorkflow")
	return err
}
