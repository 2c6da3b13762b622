// Package rewards computes WP totals, derived levels and badge unlocks.
// Every function is pure; callers own persistence and notification.
package rewards

import (
	"errors"

	"waniyilo/models"
)

// ErrInvalidArgument is returned for negative WP amounts. Amounts are
// rejected rather than clamped: clamping skews the leaderboard.
var ErrInvalidArgument = errors.New("rewards: invalid argument")

// LevelStep is the WP cost of one level.
const LevelStep = 100

// ComputeLevel derives the level from a WP total. Level is never stored
// independently of this rule.
func ComputeLevel(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/LevelStep + 1
}

// ApplyXP returns a copy of the profile with the WP added and the level
// recomputed. A zero amount is a valid feedback-only event.
func ApplyXP(p models.Profile, amount int, reason string) (models.Profile, error) {
	if amount < 0 {
		return p, ErrInvalidArgument
	}
	p.XP += amount
	p.Level = ComputeLevel(p.XP)
	return p, nil
}

// Event triggers badge evaluation.
type Event string

const (
	EventInitiationComplete     Event = "initiation_complete"
	EventLanguageModulePassed   Event = "language_module_passed"
	EventCommunityMessageSent   Event = "community_message_sent"
	EventPrivateMessageSent     Event = "private_message_sent"
	EventLevelChanged           Event = "level_changed"
	EventAdminContentSubmission Event = "admin_content_submission"
)

// EvaluateBadges returns the profile with any newly unlocked badges
// added. Rules are one-shot: the first occurrence of an action unlocks
// its badge, re-occurrence is a no-op.
func EvaluateBadges(p models.Profile, event Event) models.Profile {
	switch event {
	case EventInitiationComplete:
		p = p.WithBadge(models.BadgeInitiation)
	case EventLanguageModulePassed:
		p = p.WithBadge(models.BadgeLangue1)
	case EventCommunityMessageSent:
		p = p.WithBadge(models.BadgeNexus1)
	case EventPrivateMessageSent:
		p = p.WithBadge(models.BadgeSocial)
	case EventLevelChanged:
		if p.Level >= 5 {
			p = p.WithBadge(models.BadgeScholar)
		}
		if p.Level >= 10 {
			p = p.WithBadge(models.BadgeGuardian)
		}
	case EventAdminContentSubmission:
		p = p.WithBadge(models.BadgeCreator)
	}
	return p
}

// DisplayBadges is the render-time badge set. The admin badge is derived
// from the archetype here instead of being stored, so it can never
// diverge from the archetype field.
func DisplayBadges(p models.Profile) []string {
	badges := make([]string, len(p.Badges))
	copy(badges, p.Badges)
	if p.Archetype == models.ArchetypeAdmin && !p.HasBadge(models.BadgeAdmin) {
		badges = append(badges, models.BadgeAdmin)
	}
	return badges
}

// AvatarStyles is the fixed rotation list. Styles are cycled, not freely
// set.
var AvatarStyles = []string{"bottts", "avataaars", "pixel-art", "lorelei", "notionists"}

// NextAvatarStyle returns the style following current in the rotation.
// Unknown styles restart the rotation.
func NextAvatarStyle(current string) string {
	for i, s := range AvatarStyles {
		if s == current {
			return AvatarStyles[(i+1)%len(AvatarStyles)]
		}
	}
	return AvatarStyles[0]
}
