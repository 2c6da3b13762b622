package db

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"waniyilo/models"
)

// ContentStore implements stores.ContentStore on the content
// collections. Reads fail soft: any error is logged and an empty list
// returned, so a flaky database never blocks a view.
type ContentStore struct {
	news       *mongo.Collection
	courses    *mongo.Collection
	vocabulary *mongo.Collection
	partners   *mongo.Collection
	comments   *mongo.Collection
}

// NewContentStore builds the store over the academy database.
func NewContentStore(database *Database) *ContentStore {
	return &ContentStore{
		news:       database.Collection("news"),
		courses:    database.Collection("courses"),
		vocabulary: database.Collection("vocabulary"),
		partners:   database.Collection("partners"),
		comments:   database.Collection("comments"),
	}
}

func logQueryError(what string, err error) {
	log.Printf("%s query failed: %v", what, err)
}

// FetchNews returns published news, newest first.
func (s *ContentStore) FetchNews(ctx context.Context) []models.NewsItem {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.news.Find(ctx, bson.M{}, opts)
	if err != nil {
		logQueryError("news", err)
		return nil
	}
	defer cursor.Close(ctx)

	var items []models.NewsItem
	if err := cursor.All(ctx, &items); err != nil {
		logQueryError("news", err)
		return nil
	}
	return items
}

// FetchCourses returns the course catalogue in display order.
func (s *ContentStore) FetchCourses(ctx context.Context) []models.Course {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cursor, err := s.courses.Find(ctx, bson.M{}, opts)
	if err != nil {
		logQueryError("courses", err)
		return nil
	}
	defer cursor.Close(ctx)

	var items []models.Course
	if err := cursor.All(ctx, &items); err != nil {
		logQueryError("courses", err)
		return nil
	}
	return items
}

// FetchVocabulary returns the quiz words for one level.
func (s *ContentStore) FetchVocabulary(ctx context.Context, level int) []models.VocabularyItem {
	cursor, err := s.vocabulary.Find(ctx, bson.M{"level": level})
	if err != nil {
		logQueryError("vocabulary", err)
		return nil
	}
	defer cursor.Close(ctx)

	var items []models.VocabularyItem
	if err := cursor.All(ctx, &items); err != nil {
		logQueryError("vocabulary", err)
		return nil
	}
	return items
}

// FetchPartners returns the partner list.
func (s *ContentStore) FetchPartners(ctx context.Context) []models.Partner {
	cursor, err := s.partners.Find(ctx, bson.M{})
	if err != nil {
		logQueryError("partners", err)
		return nil
	}
	defer cursor.Close(ctx)

	var items []models.Partner
	if err := cursor.All(ctx, &items); err != nil {
		logQueryError("partners", err)
		return nil
	}
	return items
}

// FetchComments returns the comments attached to one news item, oldest
// first.
func (s *ContentStore) FetchComments(ctx context.Context, newsID string) []models.Comment {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.comments.Find(ctx, bson.M{"news_id": newsID}, opts)
	if err != nil {
		logQueryError("comments", err)
		return nil
	}
	defer cursor.Close(ctx)

	var items []models.Comment
	if err := cursor.All(ctx, &items); err != nil {
		logQueryError("comments", err)
		return nil
	}
	return items
}

// CreateNews publishes a news item.
func (s *ContentStore) CreateNews(ctx context.Context, item models.NewsItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if _, err := s.news.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("news insert failed: %w", err)
	}
	return nil
}

// DeleteNews removes a news item and its comments.
func (s *ContentStore) DeleteNews(ctx context.Context, id string) error {
	if _, err := s.news.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("news delete failed: %w", err)
	}
	if _, err := s.comments.DeleteMany(ctx, bson.M{"news_id": id}); err != nil {
		log.Printf("orphan comment cleanup failed for news %s: %v", id, err)
	}
	return nil
}

// AddVocabulary adds a quiz word.
func (s *ContentStore) AddVocabulary(ctx context.Context, item models.VocabularyItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if _, err := s.vocabulary.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("vocabulary insert failed: %w", err)
	}
	return nil
}

// DeleteVocabulary removes a quiz word.
func (s *ContentStore) DeleteVocabulary(ctx context.Context, id string) error {
	if _, err := s.vocabulary.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("vocabulary delete failed: %w", err)
	}
	return nil
}

// AddPartner registers a partner organisation.
func (s *ContentStore) AddPartner(ctx context.Context, partner models.Partner) error {
	if partner.ID == "" {
		partner.ID = uuid.NewString()
	}
	if _, err := s.partners.InsertOne(ctx, partner); err != nil {
		return fmt.Errorf("partner insert failed: %w", err)
	}
	return nil
}

// DeletePartner removes a partner.
func (s *ContentStore) DeletePartner(ctx context.Context, id string) error {
	if _, err := s.partners.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("partner delete failed: %w", err)
	}
	return nil
}

// AddComment attaches a comment to a news item.
func (s *ContentStore) AddComment(ctx context.Context, comment models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if _, err := s.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("comment insert failed: %w", err)
	}
	return nil
}
