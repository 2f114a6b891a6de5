package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifelink-inc/lifelink-api/schema"
)

var ErrShopNotExist = fmt.Errorf("shop not exist")

const shopViewDebounce = 24 * time.Hour

type Shop interface {
	CreateShop(s *schema.Shop) (*schema.Shop, error)
	GetShop(id primitive.ObjectID) (*schema.Shop, error)
	ListApprovedShops() ([]schema.Shop, error)
	RecordShopView(shopID primitive.ObjectID, account string) error
	IncrementShopCounter(shopID primitive.ObjectID, counter string) error
	GetShopDayStats(shopID primitive.ObjectID, date string) (*schema.ShopDayStats, error)
}

func (m *mongoDB) CreateShop(shop *schema.Shop) (*schema.Shop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ShopCollection)

	shop.ID = primitive.NewObjectID()
	shop.Status = schema.SHOP_PENDING

	if _, err := c.InsertOne(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

func (m *mongoDB) GetShop(id primitive.ObjectID) (*schema.Shop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ShopCollection)

	var shop schema.Shop
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&shop); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrShopNotExist
		}
		return nil, err
	}

	return &shop, nil
}

func (m *mongoDB) ListApprovedShops() ([]schema.Shop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ShopCollection)

	cursor, err := c.Find(ctx, bson.M{"status": schema.SHOP_APPROVED})
	if err != nil {
		return nil, err
	}

	shops := make([]schema.Shop, 0)
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, err
	}

	return shops, nil
}

// RecordShopView counts one view per account per 24 hours. A view by
// the shop owner never counts. The conditional update on the dedup
// document decides whether the day counter moves, so two tabs loaded at
// once still count once.
func (m *mongoDB) RecordShopView(shopID primitive.ObjectID, account string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	shop, err := m.GetShop(shopID)
	if err != nil {
		return err
	}
	if shop.OwnerID == account {
		return nil
	}

	views := m.client.Database(m.database).Collection(schema.ShopViewCollection)

	now := time.Now().UTC()
	cutoff := now.Add(-shopViewDebounce)

	// refresh an expired dedup mark
	refreshed, err := views.UpdateOne(ctx,
		bson.M{
			"shop_id":        shopID,
			"account":        account,
			"last_viewed_at": bson.M{"$lt": cutoff},
		},
		bson.M{
			"$set": bson.M{"last_viewed_at": now},
		},
	)
	if err != nil {
		return err
	}

	if refreshed.MatchedCount == 0 {
		// either the first view ever or a view inside the debounce
		// window; only an actual insert counts
		inserted, err := views.UpdateOne(ctx,
			bson.M{
				"shop_id": shopID,
				"account": account,
			},
			bson.M{
				"$setOnInsert": bson.M{"last_viewed_at": now},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return nil
			}
			return err
		}
		if inserted.UpsertedCount == 0 {
			return nil
		}
	}

	return m.IncrementShopCounter(shopID, "views")
}

// IncrementShopCounter bumps one of the per-day counters with an $inc
// upsert keyed by (shop_id, date).
func (m *mongoDB) IncrementShopCounter(shopID primitive.ObjectID, counter string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ShopStatsCollection)

	date := time.Now().UTC().Format("2006-01-02")

	_, err := c.UpdateOne(ctx,
		bson.M{
			"shop_id": shopID,
			"date":    date,
		},
		bson.M{
			"$inc": bson.M{counter: 1},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *mongoDB) GetShopDayStats(shopID primitive.ObjectID, date string) (*schema.ShopDayStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ShopStatsCollection)

	var stats schema.ShopDayStats
	if err := c.FindOne(ctx, bson.M{"shop_id": shopID, "date": date}).Decode(&stats); err != nil {
		if err == mongo.ErrNoDocuments {
			return &schema.ShopDayStats{ShopID: shopID, Date: date}, nil
		}
		return nil, err
	}

	return &stats, nil
}
