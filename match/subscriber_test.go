package match

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/schema"
	"github.com/lifelink-inc/lifelink-api/store"
)

type fakeFeed struct {
	events chan struct{}
	closed bool
	mu     sync.Mutex
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{events: make(chan struct{}, 16)}
}

func (f *fakeFeed) emit() {
	f.events <- struct{}{}
}

func (f *fakeFeed) finish() {
	close(f.events)
}

func (f *fakeFeed) Next(ctx context.Context) bool {
	select {
	case _, ok := <-f.events:
		return ok
	case <-ctx.Done():
		return false
	}
}

func (f *fakeFeed) Err() error {
	return nil
}

func (f *fakeFeed) Close(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

type fakeStore struct {
	mu         sync.Mutex
	request    *schema.HelpRequest
	listings   []schema.StockListing
	handshakes []schema.HandshakeRequest
	accounts   map[string]*schema.Account
	feed       *fakeFeed
}

func (s *fakeStore) GetHelpRequest(id primitive.ObjectID) (*schema.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := *s.request
	return &r, nil
}

func (s *fakeStore) ListMatchingStock(category, bloodGroup string) ([]schema.StockListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schema.StockListing, 0)
	for _, l := range s.listings {
		if l.Category == category && l.Units > 0 {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeStore) WatchMatchingStock(ctx context.Context, category, bloodGroup string) (store.StockFeed, error) {
	return s.feed, nil
}

func (s *fakeStore) ListHandshakesByRequest(requestID primitive.ObjectID) ([]schema.HandshakeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handshakes, nil
}

func (s *fakeStore) GetAccounts(accountNumbers []string) (map[string]*schema.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts, nil
}

func openRequest() *schema.HelpRequest {
	return &schema.HelpRequest{
		ID:         primitive.NewObjectID(),
		Requester:  "requester-1",
		Category:   "blood",
		BloodGroup: "O-",
		Status:     schema.REQUEST_OPEN,
	}
}

func waitSnapshot(t *testing.T, s *Subscriber) Snapshot {
	t.Helper()
	select {
	case snapshot, ok := <-s.Updates():
		if !ok {
			t.Fatal("updates channel closed while waiting for a snapshot")
		}
		return snapshot
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
	}
	return Snapshot{}
}

func TestSubscriberInitialSnapshot(t *testing.T) {
	request := openRequest()
	s := &fakeStore{
		request: request,
		listings: []schema.StockListing{
			{OrgID: "org-a", Category: "blood", BloodGroup: "O-", Units: 3},
			{OrgID: "org-b", Category: "blood", BloodGroup: "O-", Units: 8},
		},
		accounts: map[string]*schema.Account{
			"org-a": {AccountNumber: "org-a", Name: "Red Drop Bank"},
			"org-b": {AccountNumber: "org-b", Name: "City Blood Centre"},
		},
		feed: newFakeFeed(),
	}

	sub := NewSubscriber(s, request)
	defer sub.Close()
	assert.NoError(t, sub.Start(context.Background()))

	snapshot := waitSnapshot(t, sub)
	assert.Equal(t, request.ID, snapshot.RequestID)
	assert.Len(t, snapshot.Entries, 2)
	// more units first
	assert.Equal(t, "City Blood Centre", snapshot.Entries[0].Org.Name)
	assert.Equal(t, int64(8), snapshot.Entries[0].Listing.Units)
}

func TestSubscriberExcludesZeroUnits(t *testing.T) {
	request := openRequest()
	s := &fakeStore{
		request: request,
		listings: []schema.StockListing{
			{OrgID: "org-a", Category: "blood", BloodGroup: "O-", Units: 0},
			{OrgID: "org-b", Category: "blood", BloodGroup: "O-", Units: 2},
		},
		accounts: map[string]*schema.Account{
			"org-b": {AccountNumber: "org-b", Name: "City Blood Centre"},
		},
		feed: newFakeFeed(),
	}

	sub := NewSubscriber(s, request)
	defer sub.Close()
	assert.NoError(t, sub.Start(context.Background()))

	snapshot := waitSnapshot(t, sub)
	assert.Len(t, snapshot.Entries, 1)
	assert.Equal(t, "org-b", snapshot.Entries[0].Org.AccountNumber)
}

func TestSubscriberPlaceholderForMissingProfile(t *testing.T) {
	request := openRequest()
	s := &fakeStore{
		request: request,
		listings: []schema.StockListing{
			{OrgID: "org-unknown", Category: "blood", BloodGroup: "O-", Units: 1},
		},
		accounts: map[string]*schema.Account{},
		feed:     newFakeFeed(),
	}

	sub := NewSubscriber(s, request)
	defer sub.Close()
	assert.NoError(t, sub.Start(context.Background()))

	snapshot := waitSnapshot(t, sub)
	assert.Len(t, snapshot.Entries, 1)
	assert.Equal(t, "Verified Provider", snapshot.Entries[0].Org.Name)
	assert.Equal(t, "org-unknown", snapshot.Entries[0].Org.AccountNumber)
}

func TestSubscriberMarksHandshakenOrgs(t *testing.T) {
	request := openRequest()
	s := &fakeStore{
		request: request,
		listings: []schema.StockListing{
			{OrgID: "org-a", Category: "blood", BloodGroup: "O-", Units: 3},
			{OrgID: "org-b", Category: "blood", BloodGroup: "O-", Units: 8},
		},
		handshakes: []schema.HandshakeRequest{
			{OrgID: "org-a", RequestID: request.ID, Requester: request.Requester},
		},
		accounts: map[string]*schema.Account{
			"org-a": {AccountNumber: "org-a"},
			"org-b": {AccountNumber: "org-b"},
		},
		feed: newFakeFeed(),
	}

	sub := NewSubscriber(s, request)
	defer sub.Close()
	assert.NoError(t, sub.Start(context.Background()))

	snapshot := waitSnapshot(t, sub)
	assert.Len(t, snapshot.Entries, 2)
	for _, e := range snapshot.Entries {
		assert.Equal(t, e.Org.AccountNumber == "org-a", e.Handshaken)
	}
}

func TestSubscriberRefreshOnStockChange(t *testing.T) {
	request := openRequest()
	feed := newFakeFeed()
	s := &fakeStore{
		request: request,
		listings: []schema.StockListing{
			{OrgID: "org-a", Category: "blood", BloodGroup: "O-", Units: 3},
		},
		accounts: map[string]*schema.Account{
			"org-a": {AccountNumber: "org-a"},
		},
		feed: feed,
	}

	sub := NewSubscriber(s, request)
	defer sub.Close()
	assert.NoError(t, sub.Start(context.Background()))

	first := waitSnapshot(t, sub)
	assert.Len(t, first.Entries, 1)

	s.mu.Lock()
	s.listings = append(s.listings, schema.StockListing{OrgID: "org-b", Category: "blood", BloodGroup: "O-", Units: 5})
	s.accounts["org-b"] = &schema.Account{AccountNumber: "org-b"}
	s.mu.Unlock()
	feed.emit()

	second := waitSnapshot(t, sub)
	assert.Len(t, second.Entries, 2)
	assert.Equal(t, "org-b", second.Entries[0].Org.AccountNumber)
}

func TestSubscriberFinalSnapshotWhenRequestCloses(t *testing.T) {
	request := openRequest()
	feed := newFakeFeed()
	s := &fakeStore{
		request:  request,
		listings: []schema.StockListing{},
		accounts: map[string]*schema.Account{},
		feed:     feed,
	}

	sub := NewSubscriber(s, request)
	assert.NoError(t, sub.Start(context.Background()))

	waitSnapshot(t, sub)

	s.mu.Lock()
	s.request = &schema.HelpRequest{ID: request.ID, Status: schema.REQUEST_RESOLVED}
	s.mu.Unlock()
	feed.emit()

	final := waitSnapshot(t, sub)
	assert.True(t, final.Final)

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not close after final snapshot")
	}
}

func TestSubscriberDropLatest(t *testing.T) {
	request := openRequest()
	feed := newFakeFeed()
	s := &fakeStore{
		request:  request,
		listings: []schema.StockListing{},
		accounts: map[string]*schema.Account{},
		feed:     feed,
	}

	sub := NewSubscriber(s, request)
	defer sub.Close()
	assert.NoError(t, sub.Start(context.Background()))

	// do not consume; pile up updates so stale ones are displaced
	for i := 0; i < 5; i++ {
		feed.emit()
	}
	time.Sleep(200 * time.Millisecond)

	// the channel holds at most one pending snapshot
	assert.True(t, len(sub.Updates()) <= 1)
}

func TestSubscriberCloseIsIdempotent(t *testing.T) {
	request := openRequest()
	s := &fakeStore{
		request:  request,
		listings: []schema.StockListing{},
		accounts: map[string]*schema.Account{},
		feed:     newFakeFeed(),
	}

	sub := NewSubscriber(s, request)
	assert.NoError(t, sub.Start(context.Background()))

	sub.Close()
	sub.Close()

	_, ok := <-sub.Updates()
	_ = ok // drained; channel eventually closes without panic
}

func TestSubscriberRejectsClosedRequest(t *testing.T) {
	request := openRequest()
	request.Status = schema.REQUEST_CANCELLED
	s := &fakeStore{
		request:  request,
		feed:     newFakeFeed(),
		accounts: map[string]*schema.Account{},
	}

	sub := NewSubscriber(s, request)
	assert.Equal(t, store.ErrRequestNotOpen, sub.Start(context.Background()))
}

func TestSubscriberStartTwice(t *testing.T) {
	request := openRequest()
	s := &fakeStore{
		request:  request,
		listings: []schema.StockListing{},
		accounts: map[string]*schema.Account{},
		feed:     newFakeFeed(),
	}

	sub := NewSubscriber(s, request)
	defer sub.Close()
	assert.NoError(t, sub.Start(context.Background()))
	assert.Equal(t, ErrAlreadyStarted, sub.Start(context.Background()))
}
