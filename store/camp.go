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
	ErrCampNotExist      = fmt.Errorf("camp not exist")
	ErrAlreadyRegistered = fmt.Errorf("already registered for this camp")
)

type Camp interface {
	CreateCamp(c *schema.DonationCamp) (*schema.DonationCamp, error)
	GetCamp(id primitive.ObjectID) (*schema.DonationCamp, error)
	ListActiveCamps() ([]schema.DonationCamp, error)
	CloseCamp(id primitive.ObjectID, createdBy string) error
	RegisterForCamp(r *schema.CampRegistration) (*schema.CampRegistration, error)
	ListCampRegistrations(campID primitive.ObjectID) ([]schema.CampRegistration, error)
}

func (m *mongoDB) CreateCamp(camp *schema.DonationCamp) (*schema.DonationCamp, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CampCollection)

	camp.ID = primitive.NewObjectID()
	camp.Status = schema.CAMP_ACTIVE
	camp.CreatedAt = time.Now().UTC()

	if _, err := c.InsertOne(ctx, camp); err != nil {
		return nil, err
	}

	return camp, nil
}

func (m *mongoDB) GetCamp(id primitive.ObjectID) (*schema.DonationCamp, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CampCollection)

	var camp schema.DonationCamp
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&camp); err != nil {
		return nil, ErrCampNotExist
	}

	return &camp, nil
}

func (m *mongoDB) ListActiveCamps() ([]schema.DonationCamp, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CampCollection)

	cursor, err := c.Find(ctx, bson.M{"status": schema.CAMP_ACTIVE})
	if err != nil {
		return nil, err
	}

	camps := make([]schema.DonationCamp, 0)
	if err := cursor.All(ctx, &camps); err != nil {
		return nil, err
	}

	return camps, nil
}

func (m *mongoDB) CloseCamp(id primitive.ObjectID, createdBy string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CampCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{
			"_id":        id,
			"created_by": createdBy,
			"status":     schema.CAMP_ACTIVE,
		},
		bson.M{
			"$set": bson.M{"status": schema.CAMP_CLOSED},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrCampNotExist
	}

	return nil
}

// RegisterForCamp adds a participant. The unique (user_id, camp_id)
// index turns a double tap into ErrAlreadyRegistered.
func (m *mongoDB) RegisterForCamp(r *schema.CampRegistration) (*schema.CampRegistration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CampRegistrationCollection)

	r.ID = primitive.NewObjectID()
	r.Status = schema.REGISTRATION_CONFIRMED
	r.RegisteredAt = time.Now().UTC()

	if _, err := c.InsertOne(ctx, r); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	return r, nil
}

func (m *mongoDB) ListCampRegistrations(campID primitive.ObjectID) ([]schema.CampRegistration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CampRegistrationCollection)

	cursor, err := c.Find(ctx, bson.M{"camp_id": campID})
	if err != nil {
		return nil, err
	}

	registrations := make([]schema.CampRegistration, 0)
	if err := cursor.All(ctx, &registrations); err != nil {
		return nil, err
	}

	return registrations, nil
}
