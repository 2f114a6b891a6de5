package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifelink-inc/lifelink-api/schema"
)

type StockTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewStockTestSuite(connURI, dbName string) *StockTestSuite {
	return &StockTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *StockTestSuite) SetupSuite() {
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
func (s *StockTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *StockTestSuite) TestUpsertStockListingsIdempotent() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	listings := []schema.StockListing{
		{Category: "blood", BloodGroup: "O+", Units: 4},
		{Category: "blood", BloodGroup: "A-", Units: 2},
	}

	s.NoError(store.UpsertStockListings("org-upsert", listings))
	s.NoError(store.UpsertStockListings("org-upsert", listings))

	count, err := s.testDatabase.Collection(schema.StockCollection).CountDocuments(
		context.Background(), bson.M{"org_id": "org-upsert"})
	s.NoError(err)
	s.Equal(int64(2), count)

	// a re-submit with new units replaces, not appends
	s.NoError(store.UpsertStockListings("org-upsert", []schema.StockListing{
		{Category: "blood", BloodGroup: "O+", Units: 9},
	}))

	stored, err := store.ListStockByOrg("org-upsert")
	s.NoError(err)
	for _, l := range stored {
		if l.BloodGroup == "O+" {
			s.Equal(int64(9), l.Units)
		}
	}
}

func (s *StockTestSuite) TestListMatchingStockExcludesEmpty() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	s.NoError(store.UpsertStockListings("org-full", []schema.StockListing{
		{Category: "blood", BloodGroup: "B+", Units: 3},
	}))
	s.NoError(store.UpsertStockListings("org-empty", []schema.StockListing{
		{Category: "blood", BloodGroup: "B+", Units: 0},
	}))

	matches, err := store.ListMatchingStock("blood", "B+")
	s.NoError(err)
	s.Len(matches, 1)
	s.Equal("org-full", matches[0].OrgID)
}

func (s *StockTestSuite) TestListMatchingStockBloodGroupFilter() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	s.NoError(store.UpsertStockListings("org-filter", []schema.StockListing{
		{Category: "blood", BloodGroup: "AB+", Units: 1},
		{Category: "blood", BloodGroup: "AB-", Units: 1},
		{Category: "organ", BloodGroup: "", Units: 1},
	}))

	matches, err := store.ListMatchingStock("blood", "AB+")
	s.NoError(err)
	s.Len(matches, 1)
	s.Equal("AB+", matches[0].BloodGroup)

	// no blood group means every listing in the category matches
	matches, err = store.ListMatchingStock("blood", "")
	s.NoError(err)
	s.Len(matches, 2)
}

func (s *StockTestSuite) TestDeleteStockListing() {
	store := NewLifeLinkStore(s.mongoClient, s.testDBName)

	s.NoError(store.UpsertStockListings("org-delete", []schema.StockListing{
		{Category: "blood", BloodGroup: "O-", Units: 5},
	}))

	s.NoError(store.DeleteStockListing("org-delete", "blood", "O-"))
	s.Equal(ErrStockNotExist, store.DeleteStockListing("org-delete", "blood", "O-"))
}

func TestStockTestSuite(t *testing.T) {
	connURI := os.Getenv("LIFELINK_TEST_MONGODB")
	if connURI == "" {
		t.Skip("LIFELINK_TEST_MONGODB not set")
	}
	suite.Run(t, NewStockTestSuite(connURI, "test-db"))
}
