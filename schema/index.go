package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexHelpRequestCollection())
	panicIfError(m.IndexStockCollection())
	panicIfError(m.IndexHandshakeCollection())
	panicIfError(m.IndexArchiveCollection())
	panicIfError(m.IndexCampCollections())
	panicIfError(m.IndexShopCollections())
	panicIfError(m.IndexAccountCollection())
	panicIfError(m.IndexGeographicCollection())
}

// IndexHelpRequestCollection installs the unique partial index that
// admits at most one open request per requester. Concurrent submissions
// race on the index instead of on a query-before-insert check.
func (m *MongoDBIndexer) IndexHelpRequestCollection() error {
	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.M{"requester": 1},
		Options: options.Index().
			SetName("one_open_request_per_requester").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": REQUEST_OPEN}),
	}); err != nil {
		return err
	}

	return m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "blood_group", Value: 1},
			{Key: "status", Value: 1},
		},
	})
}

// IndexStockCollection makes the (org_id, category, blood_group) triple
// the listing identity so writes are idempotent upserts.
func (m *MongoDBIndexer) IndexStockCollection() error {
	if err := m.createIndex(StockCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "org_id", Value: 1},
			{Key: "category", Value: 1},
			{Key: "blood_group", Value: 1},
		},
		Options: options.Index().SetName("stock_identity").SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(StockCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "blood_group", Value: 1},
			{Key: "units", Value: 1},
		},
	})
}

// IndexHandshakeCollection enforces the at-most-one handshake per
// (requester, request, org) invariant at write time.
func (m *MongoDBIndexer) IndexHandshakeCollection() error {
	if err := m.createIndex(HandshakeCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "requester", Value: 1},
			{Key: "request_id", Value: 1},
			{Key: "org_id", Value: 1},
		},
		Options: options.Index().SetName("handshake_dedup").SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(HandshakeCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "org_id", Value: 1},
			{Key: "status", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexArchiveCollection() error {
	return m.createIndex(ArchiveCollection, mongo.IndexModel{
		Keys: bson.M{"resolved_at": -1},
	})
}

func (m *MongoDBIndexer) IndexCampCollections() error {
	if err := m.createIndex(CampCollection, mongo.IndexModel{
		Keys: bson.M{"location": "2dsphere"},
	}); err != nil {
		return err
	}

	return m.createIndex(CampRegistrationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "camp_id", Value: 1},
		},
		Options: options.Index().SetName("registration_dedup").SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexShopCollections() error {
	if err := m.createIndex(ShopCollection, mongo.IndexModel{
		Keys: bson.M{"location": "2dsphere"},
	}); err != nil {
		return err
	}

	if err := m.createIndex(ShopStatsCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "shop_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetName("shop_day_stats").SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(ShopViewCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "shop_id", Value: 1},
			{Key: "account", Value: 1},
		},
		Options: options.Index().SetName("shop_view_dedup").SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexAccountCollection() error {
	return m.createIndex(AccountCollection, mongo.IndexModel{
		Keys:    bson.M{"account_number": 1},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexGeographicCollection() error {
	if err := m.createIndex(GeographicCollection, mongo.IndexModel{
		Keys: bson.M{"location": "2dsphere"},
	}); err != nil {
		return err
	}

	return m.createIndex(GeographicCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_number", Value: 1},
			{Key: "ts", Value: -1},
		},
	})
}
