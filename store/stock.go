package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifelink-inc/lifelink-api/schema"
)

var ErrStockNotExist = fmt.Errorf("stock listing not exist")

type Stock interface {
	UpsertStockListings(orgID string, listings []schema.StockListing) error
	ListStockByOrg(orgID string) ([]schema.StockListing, error)
	DeleteStockListing(orgID, category, bloodGroup string) error
	ListMatchingStock(category, bloodGroup string) ([]schema.StockListing, error)
	WatchMatchingStock(ctx context.Context, category, bloodGroup string) (StockFeed, error)
}

// StockFeed is a live cursor over stock changes relevant to one
// request. Next blocks until a change arrives or the context ends.
type StockFeed interface {
	Next(ctx context.Context) bool
	Err() error
	Close(ctx context.Context) error
}

// UpsertStockListings replaces each listing keyed by its
// (org, category, blood group) identity. Re-submitting the same
// inventory is idempotent and last write wins.
func (m *mongoDB) UpsertStockListings(orgID string, listings []schema.StockListing) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.StockCollection)

	now := time.Now().UTC()
	for i := range listings {
		listings[i].OrgID = orgID
		listings[i].LastUpdated = now

		query := bson.M{
			"org_id":      orgID,
			"category":    listings[i].Category,
			"blood_group": listings[i].BloodGroup,
		}
		update := bson.M{
			"$set": bson.M{
				"units":        listings[i].Units,
				"last_updated": now,
			},
			"$setOnInsert": query,
		}
		if _, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true)); err != nil {
			return err
		}
	}

	return nil
}

func (m *mongoDB) ListStockByOrg(orgID string) ([]schema.StockListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.StockCollection)

	cursor, err := c.Find(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return nil, err
	}

	listings := make([]schema.StockListing, 0)
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}

	return listings, nil
}

func (m *mongoDB) DeleteStockListing(orgID, category, bloodGroup string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.StockCollection)

	result, err := c.DeleteOne(ctx, bson.M{
		"org_id":      orgID,
		"category":    category,
		"blood_group": bloodGroup,
	})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrStockNotExist
	}

	return nil
}

// ListMatchingStock returns listings that can serve a request right
// now. Zero-unit listings are excluded here rather than by the caller
// so every surface applies the same rule.
func (m *mongoDB) ListMatchingStock(category, bloodGroup string) ([]schema.StockListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.StockCollection)

	query := bson.M{
		"category": category,
		"units":    bson.M{"$gt": 0},
	}
	if bloodGroup != "" {
		query["blood_group"] = bloodGroup
	}

	cursor, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	listings := make([]schema.StockListing, 0)
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}

	return listings, nil
}

// WatchMatchingStock opens a change stream over stock writes that could
// affect a (category, blood group) match set. The feed only signals
// that something changed; subscribers re-read the match set instead of
// patching state from the event.
func (m *mongoDB) WatchMatchingStock(ctx context.Context, category, bloodGroup string) (StockFeed, error) {
	c := m.client.Database(m.database).Collection(schema.StockCollection)

	match := bson.M{"fullDocument.category": category}
	if bloodGroup != "" {
		match["fullDocument.blood_group"] = bloodGroup
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				match,
				bson.M{"operationType": "delete"},
			},
		}}},
	}

	stream, err := c.Watch(ctx, pipeline, options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	return &changeStreamFeed{stream: stream}, nil
}

type changeStreamFeed struct {
	stream *mongo.ChangeStream
}

func (f *changeStreamFeed) Next(ctx context.Context) bool {
	return f.stream.Next(ctx)
}

func (f *changeStreamFeed) Err() error {
	return f.stream.Err()
}

func (f *changeStreamFeed) Close(ctx context.Context) error {
	return f.stream.Close(ctx)
}
