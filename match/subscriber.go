package match

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/schema"
	"github.com/lifelink-inc/lifelink-api/store"
)

var (
	ErrAlreadyStarted   = fmt.Errorf("subscriber already started")
	ErrSubscriberClosed = fmt.Errorf("subscriber closed")
)

// Store is the slice of the data layer a subscriber needs. Declared
// here so tests can feed the subscriber without a live database.
type Store interface {
	GetHelpRequest(id primitive.ObjectID) (*schema.HelpRequest, error)
	ListMatchingStock(category, bloodGroup string) ([]schema.StockListing, error)
	WatchMatchingStock(ctx context.Context, category, bloodGroup string) (store.StockFeed, error)
	ListHandshakesByRequest(requestID primitive.ObjectID) ([]schema.HandshakeRequest, error)
	GetAccounts(accountNumbers []string) (map[string]*schema.Account, error)
}

// Entry is one organization in a match snapshot.
type Entry struct {
	Org        *schema.Account     `json:"org"`
	Listing    schema.StockListing `json:"listing"`
	Handshaken bool                `json:"handshaken"`
}

// Snapshot is the full current match set for a request. Subscribers
// always receive whole snapshots, never deltas, so a dropped update
// costs freshness but not correctness.
type Snapshot struct {
	RequestID primitive.ObjectID `json:"request_id"`
	Entries   []Entry            `json:"entries"`
	Final     bool               `json:"final"`
}

// Subscriber follows the match set of one open request and publishes a
// new snapshot whenever relevant stock changes. Updates are delivered
// on a buffered channel with drop-latest backpressure: a slow consumer
// misses intermediate snapshots and gets the freshest one it can keep
// up with.
type Subscriber struct {
	id      string
	mongo   Store
	request *schema.HelpRequest

	mu      sync.Mutex
	started bool
	closed  bool

	updates chan Snapshot
	done    chan struct{}
}

func NewSubscriber(mongo Store, request *schema.HelpRequest) *Subscriber {
	return &Subscriber{
		id:      uuid.New().String(),
		mongo:   mongo,
		request: request,
		updates: make(chan Snapshot, 1),
		done:    make(chan struct{}),
	}
}

func (s *Subscriber) ID() string {
	return s.id
}

// Updates returns the snapshot channel. It closes when the subscriber
// closes.
func (s *Subscriber) Updates() <-chan Snapshot {
	return s.updates
}

// Start computes the initial snapshot, opens the stock feed and begins
// publishing. It returns once the initial snapshot is queued.
func (s *Subscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSubscriberClosed
	}
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	if !s.request.IsOpen() {
		return store.ErrRequestNotOpen
	}

	snapshot, err := s.refresh()
	if err != nil {
		return err
	}
	s.publish(*snapshot)

	feed, err := s.mongo.WatchMatchingStock(ctx, s.request.Category, s.request.BloodGroup)
	if err != nil {
		return err
	}

	go s.run(ctx, feed)

	return nil
}

func (s *Subscriber) run(ctx context.Context, feed store.StockFeed) {
	defer feed.Close(context.Background())
	defer s.Close()

	logger := log.WithField("prefix", "match").WithField("subscriber", s.id)

	for feed.Next(ctx) {
		request, err := s.mongo.GetHelpRequest(s.request.ID)
		if err != nil || !request.IsOpen() {
			// the request was resolved or cancelled while we were
			// watching; send a final snapshot and stop
			s.publish(Snapshot{RequestID: s.request.ID, Entries: []Entry{}, Final: true})
			return
		}

		snapshot, err := s.refresh()
		if err != nil {
			logger.WithError(err).Error("refresh match snapshot")
			continue
		}
		s.publish(*snapshot)
	}

	if err := feed.Err(); err != nil && ctx.Err() == nil {
		logger.WithError(err).Error("stock feed terminated")
	}
}

// refresh re-reads the whole match set and assembles a snapshot.
func (s *Subscriber) refresh() (*Snapshot, error) {
	return BuildSnapshot(s.mongo, s.request)
}

// BuildSnapshot assembles the current match set for a request. Entries
// come ordered by available units, freshest listing first among ties.
func BuildSnapshot(mongo Store, request *schema.HelpRequest) (*Snapshot, error) {
	listings, err := mongo.ListMatchingStock(request.Category, request.BloodGroup)
	if err != nil {
		return nil, err
	}

	handshaken := make(map[string]bool)
	handshakes, err := mongo.ListHandshakesByRequest(request.ID)
	if err != nil {
		return nil, err
	}
	for _, h := range handshakes {
		handshaken[h.OrgID] = true
	}

	orgIDs := make([]string, 0, len(listings))
	for _, l := range listings {
		orgIDs = append(orgIDs, l.OrgID)
	}

	// one batch lookup for the whole snapshot; a missing profile gets a
	// placeholder instead of failing the refresh
	accounts, err := mongo.GetAccounts(orgIDs)
	if err != nil {
		log.WithField("prefix", "match").WithError(err).Warn("resolve org profiles")
		accounts = map[string]*schema.Account{}
	}

	entries := make([]Entry, 0, len(listings))
	for _, l := range listings {
		org, ok := accounts[l.OrgID]
		if !ok {
			org = schema.PlaceholderAccount(l.OrgID)
		}
		entries = append(entries, Entry{
			Org:        org,
			Listing:    l,
			Handshaken: handshaken[l.OrgID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Listing.Units != entries[j].Listing.Units {
			return entries[i].Listing.Units > entries[j].Listing.Units
		}
		return entries[i].Listing.LastUpdated.After(entries[j].Listing.LastUpdated)
	})

	return &Snapshot{
		RequestID: request.ID,
		Entries:   entries,
	}, nil
}

// publish queues a snapshot, displacing a stale undelivered one.
func (s *Subscriber) publish(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	for {
		select {
		case s.updates <- snapshot:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}

// Close stops the subscriber. Safe to call more than once and from any
// goroutine.
func (s *Subscriber) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	close(s.updates)
}

// Done reports subscriber termination to the transport layer.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}
