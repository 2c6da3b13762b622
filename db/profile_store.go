package db

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"waniyilo/models"
	"waniyilo/stores"
)

// matriculeAttempts bounds retries when a freshly generated matricule
// collides with an existing one.
const matriculeAttempts = 5

// ProfileStore implements stores.ProfileStore on the profiles collection.
type ProfileStore struct {
	col    *mongo.Collection
	prefix string
}

// NewProfileStore builds the store. prefix is the matricule cohort tag
// (e.g. "W26").
func NewProfileStore(database *Database, prefix string) *ProfileStore {
	return &ProfileStore{col: database.Collection("profiles"), prefix: prefix}
}

func (s *ProfileStore) newMatricule() string {
	return fmt.Sprintf("%s-%06d", s.prefix, rand.IntN(1000000))
}

// Upsert persists the profile. A profile without a matricule gets a
// fresh one; the matricule only exists once the insert has succeeded.
// A profile that already carries a matricule is replaced in place.
func (s *ProfileStore) Upsert(ctx context.Context, profile models.Profile) (string, error) {
	if profile.Matricule != "" {
		filter := bson.M{"matricule": profile.Matricule}
		opts := options.Replace().SetUpsert(true)
		if _, err := s.col.ReplaceOne(ctx, filter, profile, opts); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return "", stores.ErrDuplicate
			}
			return "", fmt.Errorf("profile upsert failed: %w", err)
		}
		return profile.Matricule, nil
	}

	for attempt := 0; attempt < matriculeAttempts; attempt++ {
		profile.Matricule = s.newMatricule()
		_, err := s.col.InsertOne(ctx, profile)
		if err == nil {
			return profile.Matricule, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			// Either the matricule collided (retry with a new one) or
			// the phone is already registered (give up).
			if s.phoneTaken(ctx, profile.Phone) {
				return "", stores.ErrDuplicate
			}
			continue
		}
		return "", fmt.Errorf("profile insert failed: %w", err)
	}
	return "", fmt.Errorf("could not allocate a unique matricule after %d attempts", matriculeAttempts)
}

func (s *ProfileStore) phoneTaken(ctx context.Context, phone string) bool {
	count, err := s.col.CountDocuments(ctx, bson.M{"phone": phone})
	return err == nil && count > 0
}

// GetByMatricule fetches one profile by its matricule.
func (s *ProfileStore) GetByMatricule(ctx context.Context, code string) (models.Profile, error) {
	var profile models.Profile
	err := s.col.FindOne(ctx, bson.M{"matricule": code}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Profile{}, stores.ErrNotFound
		}
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	profile.Stage = models.StageComplete
	return profile, nil
}

// IncrementXP adds WP atomically and recomputes the level inside the
// same update, so the stored level can never drift from the XP total.
func (s *ProfileStore) IncrementXP(ctx context.Context, matricule string, amount int) error {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"xp": bson.M{"$add": bson.A{"$xp", amount}},
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"level": bson.M{"$add": bson.A{
				bson.M{"$floor": bson.M{"$divide": bson.A{"$xp", 100}}}, 1,
			}},
		}}},
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"matricule": matricule}, pipeline)
	if err != nil {
		return fmt.Errorf("xp increment failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return stores.ErrNotFound
	}
	return nil
}

// GetLeaderboard returns the top profiles by XP, ADMIN archetypes
// excluded.
func (s *ProfileStore) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	filter := bson.M{"archetype": bson.M{"$ne": string(models.ArchetypeAdmin)}}
	opts := options.Find().
		SetSort(bson.D{{Key: "xp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("leaderboard query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.LeaderboardEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("leaderboard decode failed: %w", err)
	}
	return entries, nil
}

// UpdateAvatar stores the new avatar style.
func (s *ProfileStore) UpdateAvatar(ctx context.Context, matricule, style string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"matricule": matricule},
		bson.M{"$set": bson.M{"avatar_style": style}},
	)
	if err != nil {
		return fmt.Errorf("avatar update failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return stores.ErrNotFound
	}
	return nil
}

// FetchAllUsers lists every registered profile for the admin directory.
func (s *ProfileStore) FetchAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("user directory query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.UserSummary
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("user directory decode failed: %w", err)
	}
	return users, nil
}
