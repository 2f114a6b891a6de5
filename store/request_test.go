package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifelink-inc/lifelink-api/schema"
)

type RequestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewRequestTestSuite(connURI, dbName string) *RequestTestSuite {
	return &RequestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RequestTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *RequestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RequestTestSuite) TestCreateHelpRequestRejectsSecondOpen() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	first, err := store.CreateHelpRequest(&schema.HelpRequest{
		Requester: "requester-double",
		Category:  "blood",
	})
	s.NoError(err)
	s.Equal(schema.REQUEST_OPEN, first.Status)

	_, err = store.CreateHelpRequest(&schema.HelpRequest{
		Requester: "requester-double",
		Category:  "organ",
	})
	s.Equal(ErrMultipleRequestMade, err)

	// once the first one is cancelled a new request is allowed again
	s.NoError(store.CancelHelpRequest(first.ID, "requester-double"))

	_, err = store.CreateHelpRequest(&schema.HelpRequest{
		Requester: "requester-double",
		Category:  "organ",
	})
	s.NoError(err)
}

func (s *RequestTestSuite) TestCancelHelpRequestWrongRequester() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest(&schema.HelpRequest{
		Requester: "requester-cancel",
		Category:  "blood",
	})
	s.NoError(err)

	s.Equal(ErrRequestNotExist, store.CancelHelpRequest(request.ID, "stranger"))
	s.NoError(store.CancelHelpRequest(request.ID, "requester-cancel"))

	// cancelling twice fails because the status guard no longer matches
	s.Equal(ErrRequestNotExist, store.CancelHelpRequest(request.ID, "requester-cancel"))
}

func (s *RequestTestSuite) TestResolveHelpRequestArchives() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest(&schema.HelpRequest{
		Requester:  "requester-resolve",
		Category:   "blood",
		BloodGroup: "AB-",
	})
	s.NoError(err)

	archived, err := store.ResolveHelpRequest(request.ID, "requester-resolve", "org-hero")
	s.NoError(err)
	s.Equal("org-hero", archived.ResolvedBy)
	s.Equal("AB-", archived.BloodGroup)

	// the live document is gone
	_, err = store.GetHelpRequest(request.ID)
	s.Equal(ErrRequestNotExist, err)

	count, err := s.testDatabase.Collection(schema.ArchiveCollection).CountDocuments(
		context.Background(), bson.M{"request_id": request.ID})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *RequestTestSuite) TestCreateHandshakeDedup() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest(&schema.HelpRequest{
		Requester: "requester-handshake",
		Category:  "blood",
	})
	s.NoError(err)

	_, err = store.CreateHandshake(&schema.HandshakeRequest{
		OrgID:     "org-1",
		RequestID: request.ID,
		Requester: "requester-handshake",
	})
	s.NoError(err)

	_, err = store.CreateHandshake(&schema.HandshakeRequest{
		OrgID:     "org-1",
		RequestID: request.ID,
		Requester: "requester-handshake",
	})
	s.Equal(ErrHandshakeExists, err)

	// a different organization is still reachable
	_, err = store.CreateHandshake(&schema.HandshakeRequest{
		OrgID:     "org-2",
		RequestID: request.ID,
		Requester: "requester-handshake",
	})
	s.NoError(err)

	count, err := store.CountPendingHandshakes("org-1")
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *RequestTestSuite) TestResolveOrphanedHandshakesSweep() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	request, err := store.CreateHelpRequest(&schema.HelpRequest{
		Requester: "requester-sweep",
		Category:  "blood",
	})
	s.NoError(err)

	handshake, err := store.CreateHandshake(&schema.HandshakeRequest{
		OrgID:     "org-sweep",
		RequestID: request.ID,
		Requester: "requester-sweep",
	})
	s.NoError(err)

	_, err = store.ResolveHelpRequest(request.ID, "requester-sweep", "org-sweep")
	s.NoError(err)

	// resolving the request does not cascade into its handshakes
	count, err := store.CountPendingHandshakes("org-sweep")
	s.NoError(err)
	s.Equal(int64(1), count)

	// a cutoff at the handshake's own timestamp leaves it untouched
	resolved, err := store.ResolveOrphanedHandshakes(time.Unix(handshake.Timestamp, 0))
	s.NoError(err)
	s.Equal(int64(0), resolved)

	resolved, err = store.ResolveOrphanedHandshakes(time.Now().Add(time.Minute))
	s.NoError(err)
	s.Equal(int64(1), resolved)

	count, err = store.CountPendingHandshakes("org-sweep")
	s.NoError(err)
	s.Equal(int64(0), count)
}

func TestRequestTestSuite(t *testing.T) {
	connURI := os.Getenv("LIFELINK_TEST_MONGODB")
	if connURI == "" {
		t.Skip("LIFELINK_TEST_MONGODB not set")
	}
	suite.Run(t, NewRequestTestSuite(connURI, "test-db"))
}
