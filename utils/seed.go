package utils

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"waniyilo/db"
	"waniyilo/models"
)

// SeedAcademyContent populates the content collections on first boot.
// Collections that already hold documents are left untouched.
func SeedAcademyContent(ctx context.Context, database *db.Database) {
	seedCourses(ctx, database)
	seedVocabulary(ctx, database)
	seedNews(ctx, database)
}

func seedCourses(ctx context.Context, database *db.Database) {
	collection := database.Collection("courses")
	count, _ := collection.CountDocuments(ctx, bson.M{})
	if count > 0 {
		return
	}

	courses := []models.Course{
		{ID: "course-langue", Title: "Langue Fongbé", Desc: "Vocabulaire quantique niveau 1.", Level: "Niveau 1", Status: "AVAILABLE", IconName: "Languages", SortOrder: 1},
		{ID: "course-code", Title: "Code & Algorithmes", Desc: "Les fondations du temple numérique.", Level: "Niveau 1", Status: "COMING_SOON", IconName: "Code", SortOrder: 2},
		{ID: "course-histoire", Title: "Histoire du Dahomey", Desc: "Les archives des Anciens.", Level: "Niveau 1", Status: "COMING_SOON", IconName: "Landmark", SortOrder: 3},
	}

	var documents []interface{}
	for _, course := range courses {
		documents = append(documents, course)
	}
	if _, err := collection.InsertMany(ctx, documents); err != nil {
		log.Printf("course seed failed: %v", err)
	}
}

func seedVocabulary(ctx context.Context, database *db.Database) {
	collection := database.Collection("vocabulary")
	count, _ := collection.CountDocuments(ctx, bson.M{})
	if count > 0 {
		return
	}

	words := []models.VocabularyItem{
		{ID: "vocab-ordinateur", Level: 1, Fr: "Ordinateur", Fon: "Wémá mɔ", Options: []string{"Wémá mɔ", "Gbedjé", "Zòkèké"}},
		{ID: "vocab-internet", Level: 1, Fr: "Internet", Fon: "Kan mɛ", Options: []string{"Agbaza", "Kan mɛ", "Yɛhwe"}},
		{ID: "vocab-savoir", Level: 1, Fr: "Savoir", Fon: "Nunyɔ", Options: []string{"Akkwɛ", "Nunyɔ", "Alɔ"}},
	}

	var documents []interface{}
	for _, word := range words {
		documents = append(documents, word)
	}
	if _, err := collection.InsertMany(ctx, documents); err != nil {
		log.Printf("vocabulary seed failed: %v", err)
	}
}

func seedNews(ctx context.Context, database *db.Database) {
	collection := database.Collection("news")
	count, _ := collection.CountDocuments(ctx, bson.M{})
	if count > 0 {
		return
	}

	item := models.NewsItem{
		ID:        "news-ouverture",
		Title:     "Ouverture des Archives Waniyilo",
		Category:  "Event",
		Excerpt:   "Le Nexus est en ligne. Initiés, le savoir vous attend.",
		Date:      "Jour 1",
		CreatedAt: time.Now(),
	}
	if _, err := collection.InsertOne(ctx, item); err != nil {
		log.Printf("news seed failed: %v", err)
	}
}
