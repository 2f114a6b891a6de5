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

var ErrAccountNotFound = fmt.Errorf("account not found")

type MongoAccount interface {
	CreateAccount(a *schema.Account) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	GetAccounts(accountNumbers []string) (map[string]*schema.Account, error)
	UpdateAccount(accountNumber string, name, phone string) error
	DeleteAccount(accountNumber string) error
}

// CreateAccount registers a profile, or refreshes it if the account
// number is already known.
func (m *mongoDB) CreateAccount(a *schema.Account) (*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	now := time.Now().UTC()
	a.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"name":       a.Name,
			"email":      a.Email,
			"phone":      a.Phone,
			"role":       a.Role,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"account_number": a.AccountNumber,
			"created_at":     now,
		},
	}

	if _, err := c.UpdateOne(ctx, bson.M{"account_number": a.AccountNumber}, update, options.Update().SetUpsert(true)); err != nil {
		return nil, err
	}

	return a, nil
}

func (m *mongoDB) GetAccount(accountNumber string) (*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	var a schema.Account
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &a, nil
}

// GetAccounts resolves a batch of profiles in one query. Missing
// accounts are simply absent from the map; callers decide how to fill
// the gap.
func (m *mongoDB) GetAccounts(accountNumbers []string) (map[string]*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	cursor, err := c.Find(ctx, bson.M{"account_number": bson.M{"$in": accountNumbers}})
	if err != nil {
		return nil, err
	}

	var accounts []schema.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}

	result := make(map[string]*schema.Account, len(accounts))
	for i := range accounts {
		result[accounts[i].AccountNumber] = &accounts[i]
	}

	return result, nil
}

func (m *mongoDB) UpdateAccount(accountNumber string, name, phone string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{
			"$set": bson.M{
				"name":       name,
				"phone":      phone,
				"updated_at": time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (m *mongoDB) DeleteAccount(accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	if _, err := c.DeleteOne(ctx, bson.M{"account_number": accountNumber}); err != nil {
		return err
	}

	return nil
}
