package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// LifeLinkStore - interface for mongodb operations
type LifeLinkStore interface {
	HelpRequest
	Stock
	Handshake
	Archive
	Camp
	Shop
	MongoAccount
	Geographic
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewLifeLinkStore - return mongo db operations
func NewLifeLinkStore(client *mongo.Client, database string) LifeLinkStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// isDuplicateKeyError reports whether a write failed on a unique index.
func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
