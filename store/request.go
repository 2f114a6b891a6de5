package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifelink-inc/lifelink-api/schema"
)

var (
	ErrRequestNotExist     = fmt.Errorf("request not exist")
	ErrMultipleRequestMade = fmt.Errorf("an open request already exists for this account")
	ErrRequestNotOpen      = fmt.Errorf("request is not open")
)

type HelpRequest interface {
	CreateHelpRequest(r *schema.HelpRequest) (*schema.HelpRequest, error)
	GetHelpRequest(id primitive.ObjectID) (*schema.HelpRequest, error)
	GetOpenHelpRequestByRequester(accountNumber string) (*schema.HelpRequest, error)
	ListOpenHelpRequests() ([]schema.HelpRequest, error)
	CancelHelpRequest(id primitive.ObjectID, requester string) error
	ResolveHelpRequest(id primitive.ObjectID, requester, resolvedBy string) (*schema.ArchivedCase, error)
}

// CreateHelpRequest inserts a new open request. The unique partial index
// on (requester, status=open) rejects a second open request atomically,
// so two concurrent submissions cannot both win.
func (m *mongoDB) CreateHelpRequest(r *schema.HelpRequest) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	r.ID = primitive.NewObjectID()
	r.Status = schema.REQUEST_OPEN
	r.CreatedAt = time.Now().UTC()

	if _, err := c.InsertOne(ctx, r); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrMultipleRequestMade
		}
		return nil, err
	}

	return r, nil
}

func (m *mongoDB) GetHelpRequest(id primitive.ObjectID) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	var r schema.HelpRequest
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &r, nil
}

func (m *mongoDB) GetOpenHelpRequestByRequester(accountNumber string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	var r schema.HelpRequest
	query := bson.M{
		"requester": accountNumber,
		"status":    schema.REQUEST_OPEN,
	}
	if err := c.FindOne(ctx, query).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &r, nil
}

func (m *mongoDB) ListOpenHelpRequests() ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	cursor, err := c.Find(ctx, bson.M{"status": schema.REQUEST_OPEN})
	if err != nil {
		return nil, err
	}

	requests := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// CancelHelpRequest flips an open request to cancelled. The status
// guard in the filter makes the write a no-op when the request was
// already resolved or cancelled by a concurrent caller.
func (m *mongoDB) CancelHelpRequest(id primitive.ObjectID, requester string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{
			"_id":       id,
			"requester": requester,
			"status":    schema.REQUEST_OPEN,
		},
		bson.M{
			"$set": bson.M{"status": schema.REQUEST_CANCELLED},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRequestNotExist
	}

	return nil
}

// ResolveHelpRequest archives an open request as a successful case and
// removes it from the live collection in one transaction. A reader
// never sees the case in both places, or in neither.
func (m *mongoDB) ResolveHelpRequest(id primitive.ObjectID, requester, resolvedBy string) (*schema.ArchivedCase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	requests := db.Collection(schema.HelpRequestCollection)
	archives := db.Collection(schema.ArchiveCollection)

	session, err := m.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	archived, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var r schema.HelpRequest
		query := bson.M{
			"_id":       id,
			"requester": requester,
			"status":    schema.REQUEST_OPEN,
		}
		if err := requests.FindOne(sc, query).Decode(&r); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrRequestNotExist
			}
			return nil, err
		}

		a := schema.ArchivedCase{
			ID:           primitive.NewObjectID(),
			RequestID:    r.ID,
			Requester:    r.Requester,
			Category:     r.Category,
			BloodGroup:   r.BloodGroup,
			Hospital:     r.Hospital,
			ContactName:  r.ContactName,
			ContactPhone: r.ContactPhone,
			CreatedAt:    r.CreatedAt,
			ResolvedBy:   resolvedBy,
			ResolvedAt:   time.Now().UTC(),
		}

		if _, err := archives.InsertOne(sc, a); err != nil {
			return nil, err
		}

		if _, err := requests.DeleteOne(sc, bson.M{"_id": r.ID}); err != nil {
			return nil, err
		}

		return &a, nil
	})
	if err != nil {
		return nil, err
	}

	return archived.(*schema.ArchivedCase), nil
}
