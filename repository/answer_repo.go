package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tranvd/askbot-be/database"
)

type cachedAnswer struct {
	Fingerprint string    `bson:"_id"`
	Answer      string    `bson:"answer"`
	ExpiresAt   time.Time `bson:"expires_at"`
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo returns a Mongo-backed answer cache. Expiry is enforced by
// a TTL index on expires_at; the index sweep runs periodically, so Get also
// treats a past expires_at as a miss.
func NewAnswerRepo(ctx context.Context, collection *mongo.Collection) (database.AnswerStore, error) {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return nil, err
	}
	return &answerRepo{collection: collection}, nil
}

func (r *answerRepo) Get(ctx context.Context, fingerprint string) (string, bool) {
	var doc cachedAnswer
	err := r.collection.FindOne(ctx, bson.M{"_id": fingerprint}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false
	}
	if err != nil {
		log.Printf("mongo error getting value for key %s: %v", fingerprint, err)
		return "", false
	}
	if time.Now().After(doc.ExpiresAt) {
		return "", false
	}
	return doc.Answer, true
}

func (r *answerRepo) Set(ctx context.Context, fingerprint, answer string, ttl time.Duration) {
	doc := cachedAnswer{
		Fingerprint: fingerprint,
		Answer:      answer,
		ExpiresAt:   time.Now().Add(ttl),
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": fingerprint}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		log.Printf("mongo error setting value for key %s: %v", fingerprint, err)
	}
}

func (r *answerRepo) Close(ctx context.Context) error {
	return r.collection.Database().Client().Disconnect(ctx)
}
