package models

import (
	"time"
)

// Archetype is the persona label assigned by the initiation quiz.
// ADMIN is never assigned by the quiz; it is granted out-of-band.
type Archetype string

const (
	ArchetypeArchitecte Archetype = "ARCHITECTE_NUMERIQUE"
	ArchetypeGardien    Archetype = "GARDIEN_DES_ARCHIVES"
	ArchetypeGriot      Archetype = "GRIOT_CYBERNETIQUE"
	ArchetypeAdmin      Archetype = "ADMIN"
)

// ProfileStage tracks how far a profile has progressed. Transitions only
// move forward; logout discards the profile entirely.
type ProfileStage int

const (
	// StageAnonymous is a pre-quiz visitor with no data at all.
	StageAnonymous ProfileStage = iota
	// StagePending has an archetype and tentative XP/badges but no
	// name, phone or matricule yet.
	StagePending
	// StageComplete has every field, including the matricule.
	StageComplete
)

// Profile is the central user entity. Level is always a pure function of
// XP (level = xp/100 + 1) and must never be written independently.
type Profile struct {
	Stage       ProfileStage `bson:"-" json:"-"`
	Name        string       `bson:"name" json:"name"`
	Phone       string       `bson:"phone" json:"phone"`
	Matricule   string       `bson:"matricule" json:"matricule"`
	Archetype   Archetype    `bson:"archetype" json:"archetype"`
	Level       int          `bson:"level" json:"level"`
	XP          int          `bson:"xp" json:"xp"`
	Badges      []string     `bson:"badges" json:"badges"`
	AvatarStyle string       `bson:"avatar_style" json:"avatar_style"`
	JoinedAt    time.Time    `bson:"created_at" json:"joinedAt"`
}

// NewPendingProfile builds the tentative profile produced by the quiz:
// the initiation reward is granted immediately, identity comes later.
func NewPendingProfile(archetype Archetype, now time.Time) Profile {
	return Profile{
		Stage:       StagePending,
		Archetype:   archetype,
		Level:       1,
		XP:          50,
		Badges:      []string{BadgeInitiation},
		AvatarStyle: "bottts",
		JoinedAt:    now,
	}
}

// Complete promotes a pending profile once the remote store has accepted
// it and issued a matricule. The matricule is assigned exactly once.
func (p Profile) Complete(name, phone, matricule string) Profile {
	p.Stage = StageComplete
	p.Name = name
	p.Phone = phone
	if p.Matricule == "" {
		p.Matricule = matricule
	}
	return p
}

// HasBadge reports whether the badge id is already in the set.
func (p Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// WithBadge returns a copy with the badge added. Badges are
// insertion-only; adding an existing badge is a no-op.
func (p Profile) WithBadge(id string) Profile {
	if p.HasBadge(id) {
		return p
	}
	badges := make([]string, len(p.Badges), len(p.Badges)+1)
	copy(badges, p.Badges)
	p.Badges = append(badges, id)
	return p
}

// Badge ids unlockable in-session. BadgeAdmin is display-only: it is
// derived from the archetype at render time and never stored.
const (
	BadgeInitiation = "badge_initiation"
	BadgeLangue1    = "badge_langue_1"
	BadgeNexus1     = "badge_nexus_1"
	BadgeSocial     = "badge_social"
	BadgeScholar    = "badge_scholar"
	BadgeGuardian   = "badge_guardian"
	BadgeCreator    = "badge_creator"
	BadgeAdmin      = "badge_admin"
)

// LeaderboardEntry is a public ranking row. Matricule doubles as the
// private-message address when a row is selected.
type LeaderboardEntry struct {
	Name        string    `bson:"name" json:"name"`
	Archetype   Archetype `bson:"archetype" json:"archetype"`
	XP          int       `bson:"xp" json:"xp"`
	Level       int       `bson:"level" json:"level"`
	AvatarStyle string    `bson:"avatar_style" json:"avatar_style"`
	Matricule   string    `bson:"matricule" json:"matricule"`
}

// UserSummary is the admin directory row.
type UserSummary struct {
	Matricule   string `bson:"matricule" json:"matricule"`
	Name        string `bson:"name" json:"name"`
	Phone       string `bson:"phone" json:"phone"`
	Level       int    `bson:"level" json:"level"`
	AvatarStyle string `bson:"avatar_style" json:"avatar_style"`
}
