// Package stores defines the remote collaborators the academy core
// talks to. Implementations live in db (MongoDB) and services (Gemini);
// tests substitute in-memory fakes.
package stores

import (
	"context"
	"errors"

	"waniyilo/models"
)

// ErrNotFound reports an unknown matricule. Shown inline, recoverable.
var ErrNotFound = errors.New("stores: profile not found")

// ErrDuplicate reports that a phone or matricule is already registered.
var ErrDuplicate = errors.New("stores: phone or matricule already registered")

// ProfileStore is the remote profile/leaderboard record. Writes are
// upsert-by-unique-key; XP is a best-effort increment. Last write wins
// under concurrent sessions for the same identity.
type ProfileStore interface {
	// Upsert persists the profile. When the profile has no matricule
	// yet, the store issues one and returns it; the matricule only
	// exists after a successful write.
	Upsert(ctx context.Context, profile models.Profile) (matricule string, err error)
	GetByMatricule(ctx context.Context, code string) (models.Profile, error)
	IncrementXP(ctx context.Context, matricule string, amount int) error
	// GetLeaderboard excludes ADMIN archetypes, orders by XP descending.
	GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	UpdateAvatar(ctx context.Context, matricule, style string) error
	FetchAllUsers(ctx context.Context) ([]models.UserSummary, error)
}

// ContentStore serves read-mostly lists. Reads degrade to an empty list
// on any failure; they never surface an error to the caller. Mutations
// are admin-only and do report errors.
type ContentStore interface {
	FetchNews(ctx context.Context) []models.NewsItem
	FetchCourses(ctx context.Context) []models.Course
	FetchVocabulary(ctx context.Context, level int) []models.VocabularyItem
	FetchPartners(ctx context.Context) []models.Partner
	FetchComments(ctx context.Context, newsID string) []models.Comment

	CreateNews(ctx context.Context, item models.NewsItem) error
	DeleteNews(ctx context.Context, id string) error
	AddVocabulary(ctx context.Context, item models.VocabularyItem) error
	DeleteVocabulary(ctx context.Context, id string) error
	AddPartner(ctx context.Context, partner models.Partner) error
	DeletePartner(ctx context.Context, id string) error
	AddComment(ctx context.Context, comment models.Comment) error
}

// Subscription is a live feed handle. Unsubscribe must be safe to call
// more than once.
type Subscription interface {
	Unsubscribe()
}

// MessagingStore carries the global community channel and the private
// matricule-to-matricule channel. Delivery order is whatever the
// underlying fan-out provides; consumers append, never reorder.
type MessagingStore interface {
	FetchRecent(ctx context.Context, limit int) []models.NexusMessage
	SendGlobal(ctx context.Context, msg models.NexusMessage) error
	DeleteGlobal(ctx context.Context, id string) error
	FetchPrivate(ctx context.Context, matricule string) []models.PrivateMessage
	SendPrivate(ctx context.Context, msg models.PrivateMessage) error

	SubscribeGlobal(cb func(models.NexusMessage)) Subscription
	SubscribePrivate(matricule string, cb func(models.PrivateMessage)) Subscription
}

// Oracle is the generative text collaborator. It never fails: every
// implementation answers with a user-facing fallback string on error.
type Oracle interface {
	Ask(ctx context.Context, text string, history []string) string
	LabReading(ctx context.Context, problem string) string
	Translate(ctx context.Context, text, targetLang string) string
}
