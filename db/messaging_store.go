package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"waniyilo/internal/nexus"
	"waniyilo/models"
	"waniyilo/stores"
)

// MessagingStore implements stores.MessagingStore: history lives in
// MongoDB, live delivery goes through the nexus broker.
type MessagingStore struct {
	global  *mongo.Collection
	private *mongo.Collection
	broker  nexus.Broker
}

// NewMessagingStore builds the store over the academy database and the
// given fan-out broker.
func NewMessagingStore(database *Database, broker nexus.Broker) *MessagingStore {
	return &MessagingStore{
		global:  database.Collection("nexus_messages"),
		private: database.Collection("private_messages"),
		broker:  broker,
	}
}

// FetchRecent returns the newest community messages in chronological
// order. Reads fail soft.
func (s *MessagingStore) FetchRecent(ctx context.Context, limit int) []models.NexusMessage {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.global.Find(ctx, bson.M{}, opts)
	if err != nil {
		logQueryError("nexus messages", err)
		return nil
	}
	defer cursor.Close(ctx)

	var msgs []models.NexusMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		logQueryError("nexus messages", err)
		return nil
	}
	// Query is newest-first for the limit; the channel reads oldest-first.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs
}

// SendGlobal persists a community message, then fans it out.
func (s *MessagingStore) SendGlobal(ctx context.Context, msg models.NexusMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if _, err := s.global.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("nexus message insert failed: %w", err)
	}
	return s.broker.PublishGlobal(ctx, msg)
}

// DeleteGlobal removes a community message.
func (s *MessagingStore) DeleteGlobal(ctx context.Context, id string) error {
	if _, err := s.global.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("nexus message delete failed: %w", err)
	}
	return nil
}

// FetchPrivate returns every conversation involving the matricule,
// oldest first.
func (s *MessagingStore) FetchPrivate(ctx context.Context, matricule string) []models.PrivateMessage {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_matricule": matricule},
		bson.M{"receiver_matricule": matricule},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.private.Find(ctx, filter, opts)
	if err != nil {
		logQueryError("private messages", err)
		return nil
	}
	defer cursor.Close(ctx)

	var msgs []models.PrivateMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		logQueryError("private messages", err)
		return nil
	}
	return msgs
}

// SendPrivate persists a private message, then fans it out to the
// receiver. The insert error is the caller's rollback signal.
func (s *MessagingStore) SendPrivate(ctx context.Context, msg models.PrivateMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if _, err := s.private.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("private message insert failed: %w", err)
	}
	return s.broker.PublishPrivate(ctx, msg)
}

// SubscribeGlobal registers a live community-channel listener.
func (s *MessagingStore) SubscribeGlobal(cb func(models.NexusMessage)) stores.Subscription {
	return s.broker.SubscribeGlobal(cb)
}

// SubscribePrivate registers a live inbox listener.
func (s *MessagingStore) SubscribePrivate(matricule string, cb func(models.PrivateMessage)) stores.Subscription {
	return s.broker.SubscribePrivate(matricule, cb)
}
