package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/schema"
)

var (
	ErrHandshakeExists   = fmt.Errorf("a request to this organization already exists")
	ErrHandshakeNotExist = fmt.Errorf("handshake not exist")
)

type Handshake interface {
	CreateHandshake(h *schema.HandshakeRequest) (*schema.HandshakeRequest, error)
	ListHandshakesByRequest(requestID primitive.ObjectID) ([]schema.HandshakeRequest, error)
	ListHandshakesByOrg(orgID string) ([]schema.HandshakeRequest, error)
	CountPendingHandshakes(orgID string) (int64, error)
	ResolveHandshake(id primitive.ObjectID, orgID string) error
	ResolveOrphanedHandshakes(before time.Time) (int64, error)
}

// CreateHandshake records a direct contact from a requester to one
// organization. The unique index on (requester, request_id, org_id)
// makes a repeat tap a clean error instead of a duplicate row.
func (m *mongoDB) CreateHandshake(h *schema.HandshakeRequest) (*schema.HandshakeRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HandshakeCollection)

	h.ID = primitive.NewObjectID()
	h.Status = schema.HANDSHAKE_PENDING
	h.Timestamp = time.Now().Unix()

	if _, err := c.InsertOne(ctx, h); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrHandshakeExists
		}
		return nil, err
	}

	return h, nil
}

func (m *mongoDB) ListHandshakesByRequest(requestID primitive.ObjectID) ([]schema.HandshakeRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HandshakeCollection)

	cursor, err := c.Find(ctx, bson.M{"request_id": requestID})
	if err != nil {
		return nil, err
	}

	handshakes := make([]schema.HandshakeRequest, 0)
	if err := cursor.All(ctx, &handshakes); err != nil {
		return nil, err
	}

	return handshakes, nil
}

func (m *mongoDB) ListHandshakesByOrg(orgID string) ([]schema.HandshakeRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HandshakeCollection)

	cursor, err := c.Find(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return nil, err
	}

	handshakes := make([]schema.HandshakeRequest, 0)
	if err := cursor.All(ctx, &handshakes); err != nil {
		return nil, err
	}

	return handshakes, nil
}

// CountPendingHandshakes backs the organizer badge counter.
func (m *mongoDB) CountPendingHandshakes(orgID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HandshakeCollection)

	return c.CountDocuments(ctx, bson.M{
		"org_id": orgID,
		"status": schema.HANDSHAKE_PENDING,
	})
}

func (m *mongoDB) ResolveHandshake(id primitive.ObjectID, orgID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HandshakeCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{
			"_id":    id,
			"org_id": orgID,
			"status": schema.HANDSHAKE_PENDING,
		},
		bson.M{
			"$set": bson.M{"status": schema.HANDSHAKE_RESOLVED},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrHandshakeNotExist
	}

	return nil
}

// ResolveOrphanedHandshakes closes pending handshakes whose parent
// request is no longer open. Resolving a request does not touch its
// handshakes synchronously; the reconcile worker calls this instead.
func (m *mongoDB) ResolveOrphanedHandshakes(before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	handshakes := db.Collection(schema.HandshakeCollection)
	requests := db.Collection(schema.HelpRequestCollection)

	cursor, err := requests.Find(ctx, bson.M{"status": schema.REQUEST_OPEN})
	if err != nil {
		return 0, err
	}

	var open []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &open); err != nil {
		return 0, err
	}

	openIDs := make([]primitive.ObjectID, 0, len(open))
	for _, r := range open {
		openIDs = append(openIDs, r.ID)
	}

	result, err := handshakes.UpdateMany(ctx,
		bson.M{
			"status":     schema.HANDSHAKE_PENDING,
			"request_id": bson.M{"$nin": openIDs},
			"ts":         bson.M{"$lt": before.Unix()},
		},
		bson.M{
			"$set": bson.M{"status": schema.HANDSHAKE_RESOLVED},
		},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
