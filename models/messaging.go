package models

import "time"

// NexusMessage is a message on the global community channel.
type NexusMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	UserPhone string    `bson:"user_phone" json:"user_phone"`
	Archetype string    `bson:"archetype" json:"archetype"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// PrivateMessage is addressed matricule-to-matricule.
type PrivateMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Sender    string    `bson:"sender_matricule" json:"sender_matricule"`
	Receiver  string    `bson:"receiver_matricule" json:"receiver_matricule"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Read      bool      `bson:"read" json:"read"`
}

// AcademyEvent is pushed over the live-events websocket feed.
type AcademyEvent struct {
	Type      string    `json:"type"` // "xp_gained", "badge_unlocked", "nexus_message", "private_message"
	Matricule string    `json:"matricule,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	BadgeID   string    `json:"badgeId,omitempty"`
	NewXP     int       `json:"newXp,omitempty"`
	NewLevel  int       `json:"newLevel,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
