package rewards

import (
	"testing"
	"time"

	"waniyilo/models"
)

func TestComputeLevel(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{999, 10},
		{1000, 11},
	}
	for _, c := range cases {
		if got := ComputeLevel(c.xp); got != c.want {
			t.Errorf("ComputeLevel(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestApplyXPAccumulates(t *testing.T) {
	p := models.NewPendingProfile(models.ArchetypeGriot, time.Now())
	start := p.XP

	p, err := ApplyXP(p, 30, "quiz")
	if err != nil {
		t.Fatalf("ApplyXP returned error: %v", err)
	}
	p, err = ApplyXP(p, 25, "bonus")
	if err != nil {
		t.Fatalf("ApplyXP returned error: %v", err)
	}

	if p.XP != start+55 {
		t.Errorf("expected xp %d, got %d", start+55, p.XP)
	}
	if p.Level != ComputeLevel(p.XP) {
		t.Errorf("level %d out of sync with xp %d", p.Level, p.XP)
	}
}

func TestApplyXPZeroAmount(t *testing.T) {
	p := models.NewPendingProfile(models.ArchetypeGardien, time.Now())
	got, err := ApplyXP(p, 0, "wrong answer feedback")
	if err != nil {
		t.Fatalf("zero amount must be accepted, got %v", err)
	}
	if got.XP != p.XP {
		t.Errorf("zero amount changed xp: %d -> %d", p.XP, got.XP)
	}
}

func TestApplyXPRejectsNegative(t *testing.T) {
	p := models.NewPendingProfile(models.ArchetypeArchitecte, time.Now())
	_, err := ApplyXP(p, -5, "cheat")
	if err != ErrInvalidArgument {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEvaluateBadgesIdempotent(t *testing.T) {
	p := models.NewPendingProfile(models.ArchetypeGriot, time.Now())

	p = EvaluateBadges(p, EventCommunityMessageSent)
	if !p.HasBadge(models.BadgeNexus1) {
		t.Fatal("first community message must unlock badge_nexus_1")
	}
	before := len(p.Badges)

	p = EvaluateBadges(p, EventCommunityMessageSent)
	if len(p.Badges) != before {
		t.Errorf("re-evaluating the same event duplicated a badge: %v", p.Badges)
	}
}

func TestEvaluateBadgesLevelThresholds(t *testing.T) {
	p := models.NewPendingProfile(models.ArchetypeGardien, time.Now())

	p, _ = ApplyXP(p, 400, "grind") // 450 xp, level 5
	p = EvaluateBadges(p, EventLevelChanged)
	if !p.HasBadge(models.BadgeScholar) {
		t.Error("level 5 must unlock badge_scholar")
	}
	if p.HasBadge(models.BadgeGuardian) {
		t.Error("badge_guardian must not unlock before level 10")
	}

	p, _ = ApplyXP(p, 500, "grind") // 950 xp, level 10
	p = EvaluateBadges(p, EventLevelChanged)
	if !p.HasBadge(models.BadgeGuardian) {
		t.Error("level 10 must unlock badge_guardian")
	}
}

func TestDisplayBadgesDerivesAdmin(t *testing.T) {
	p := models.NewPendingProfile(models.ArchetypeGriot, time.Now())
	for _, b := range DisplayBadges(p) {
		if b == models.BadgeAdmin {
			t.Fatal("non-admin profile must not display badge_admin")
		}
	}

	p.Archetype = models.ArchetypeAdmin
	found := false
	for _, b := range DisplayBadges(p) {
		if b == models.BadgeAdmin {
			found = true
		}
	}
	if !found {
		t.Error("admin archetype must imply badge_admin at display time")
	}
	if p.HasBadge(models.BadgeAdmin) {
		t.Error("badge_admin must not be written into the stored set")
	}
}

func TestNextAvatarStyleCycles(t *testing.T) {
	seen := map[string]bool{}
	style := AvatarStyles[0]
	for range AvatarStyles {
		seen[style] = true
		style = NextAvatarStyle(style)
	}
	if style != AvatarStyles[0] {
		t.Errorf("rotation did not wrap, ended on %q", style)
	}
	if len(seen) != len(AvatarStyles) {
		t.Errorf("rotation skipped styles: %v", seen)
	}
	if got := NextAvatarStyle("unknown"); got != AvatarStyles[0] {
		t.Errorf("unknown style must restart rotation, got %q", got)
	}
}
