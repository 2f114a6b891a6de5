package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifelink-inc/lifelink-api/schema"
)

var ErrArchiveNotExist = fmt.Errorf("archived case not exist")

type Archive interface {
	ListArchivedCases(limit int64) ([]schema.ArchivedCase, error)
	DeleteArchivedCase(id primitive.ObjectID) error
	CountArchivedCases() (int64, error)
}

// ListArchivedCases returns resolved cases, newest first. The admin
// dashboard is the only consumer.
func (m *mongoDB) ListArchivedCases(limit int64) ([]schema.ArchivedCase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ArchiveCollection)

	opts := options.Find().SetSort(bson.M{"resolved_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	cases := make([]schema.ArchivedCase, 0)
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}

	return cases, nil
}

// DeleteArchivedCase removes a terminal record. Only administrators
// reach this path.
func (m *mongoDB) DeleteArchivedCase(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ArchiveCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrArchiveNotExist
	}

	return nil
}

func (m *mongoDB) CountArchivedCases() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ArchiveCollection)

	return c.CountDocuments(ctx, bson.M{})
}
