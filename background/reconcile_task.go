package background

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// handshakeGrace shields a just-resolved request from an immediate
// sweep so the notify tasks finish with the handshakes still pending.
const handshakeGrace = 5 * time.Minute

// ResolveOrphanedHandshakes closes pending handshakes whose parent
// request already left the open state. The cadence workflow runs this
// on a schedule; admins can force a run through the task queue.
func (m *BackgroundManager) ResolveOrphanedHandshakes() error {
	resolved, err := m.mongo.ResolveOrphanedHandshakes(time.Now().Add(-handshakeGrace))
	if err != nil {
		return err
	}

	if resolved > 0 {
		log.WithField("prefix", "background").WithField("resolved", resolved).Info("orphaned handshakes resolved")
	}

	return nil
}
