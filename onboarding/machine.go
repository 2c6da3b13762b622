// Package onboarding drives the initiation funnel: lock, ritual quiz,
// registration, matricule reveal, dashboard. A returning visitor takes
// the login branch instead.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"waniyilo/models"
	"waniyilo/session"
	"waniyilo/stores"
)

type Stage string

const (
	StageLocked          Stage = "LOCKED"
	StageScanning        Stage = "SCANNING"
	StageQuiz            Stage = "QUIZ"
	StageRegistration    Stage = "REGISTRATION"
	StageSyncing         Stage = "SYNCING"
	StageMatriculeReveal Stage = "MATRICULE_REVEAL"
	StageLogin           Stage = "LOGIN_WITH_MATRICULE"
	StageDashboard       Stage = "DASHBOARD"
)

// ErrValidation blocks a transition before any remote call is made.
var ErrValidation = errors.New("onboarding: name and phone are required")

// ErrWrongStage reports an operation applied outside its stage.
var ErrWrongStage = errors.New("onboarding: operation not valid in current stage")

// Option is one quiz choice; its value votes for an archetype.
type Option struct {
	Label string
	Value models.Archetype
}

// Question is one step of the initiation ritual.
type Question struct {
	ID      int
	Text    string
	Options []Option
}

// Questions is the fixed ritual. ADMIN is deliberately absent from every
// option: the quiz can never assign it.
var Questions = []Question{
	{
		ID:   1,
		Text: "Devant l'inconnu, tu es...",
		Options: []Option{
			{Label: "Celui qui analyse le code.", Value: models.ArchetypeArchitecte},
			{Label: "Celui qui cherche l'origine.", Value: models.ArchetypeGardien},
			{Label: "Celui qui raconte l'histoire.", Value: models.ArchetypeGriot},
		},
	},
	{
		ID:   2,
		Text: "Ta force principale ?",
		Options: []Option{
			{Label: "La Logique Pure.", Value: models.ArchetypeArchitecte},
			{Label: "La Mémoire Ancestrale.", Value: models.ArchetypeGardien},
			{Label: "La Communication.", Value: models.ArchetypeGriot},
		},
	},
	{
		ID:   3,
		Text: "Ton but ultime ?",
		Options: []Option{
			{Label: "Construire des systèmes.", Value: models.ArchetypeArchitecte},
			{Label: "Préserver le savoir.", Value: models.ArchetypeGardien},
			{Label: "Unifier les peuples.", Value: models.ArchetypeGriot},
		},
	},
}

// ResolveArchetype tallies quiz answers in submission order. The
// archetype with the highest count wins; a tie goes to the archetype
// that first reached that count in submission order.
func ResolveArchetype(answers []models.Archetype) models.Archetype {
	counts := make(map[models.Archetype]int, len(answers))
	var order []models.Archetype
	for _, a := range answers {
		if counts[a] == 0 {
			order = append(order, a)
		}
		counts[a]++
	}
	var winner models.Archetype
	best := 0
	for _, a := range order {
		if counts[a] > best {
			winner = a
			best = counts[a]
		}
	}
	return winner
}

// NormalizePhone strips whitespace and applies the country code when the
// number carries no international prefix.
func NormalizePhone(phone, countryCode string) string {
	clean := strings.Join(strings.Fields(phone), "")
	if clean == "" {
		return ""
	}
	if !strings.HasPrefix(clean, "+") {
		clean = countryCode + clean
	}
	return clean
}

// Machine is the onboarding state machine for one visitor. It is driven
// from a single logical thread; remote calls are its only suspension
// points, and every failure there is recoverable.
type Machine struct {
	profiles stores.ProfileStore
	sessions *session.Store

	countryCode string
	now         func() time.Time

	stage    Stage
	quizStep int
	answers  []models.Archetype
	profile  models.Profile
	lastErr  string
}

// MachineOption tweaks machine construction.
type MachineOption func(*Machine)

// WithCountryCode overrides the default +229 prefix.
func WithCountryCode(code string) MachineOption {
	return func(m *Machine) { m.countryCode = code }
}

// WithClock substitutes the time source.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) { m.now = now }
}

// NewMachine starts a visitor at the locked screen.
func NewMachine(profiles stores.ProfileStore, sessions *session.Store, opts ...MachineOption) *Machine {
	m := &Machine{
		profiles:    profiles,
		sessions:    sessions,
		countryCode: "+229",
		now:         time.Now,
		stage:       StageLocked,
		profile:     models.Profile{Stage: models.StageAnonymous},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Stage returns the current stage.
func (m *Machine) Stage() Stage { return m.stage }

// Profile returns the in-memory profile as built so far.
func (m *Machine) Profile() models.Profile { return m.profile }

// LastError returns the error payload attached to the current stage for
// display, empty when there is none.
func (m *Machine) LastError() string { return m.lastErr }

// QuizStep returns the zero-based index of the pending question.
func (m *Machine) QuizStep() int { return m.quizStep }

// Start begins the ritual. The scan stage is purely presentational; a
// headless run passes through it immediately.
func (m *Machine) Start() error {
	if m.stage != StageLocked {
		return ErrWrongStage
	}
	m.stage = StageScanning
	m.stage = StageQuiz
	m.quizStep = 0
	m.answers = m.answers[:0]
	return nil
}

// GoToLogin switches to the returning-user branch.
func (m *Machine) GoToLogin() error {
	if m.stage != StageLocked {
		return ErrWrongStage
	}
	m.stage = StageLogin
	m.lastErr = ""
	return nil
}

// BackToLocked abandons login and returns to the locked screen.
func (m *Machine) BackToLocked() {
	if m.stage == StageLogin {
		m.stage = StageLocked
		m.lastErr = ""
	}
}

// Answer records one quiz choice. Answers are tallied in strict
// submission order; the final answer resolves the archetype and opens
// registration with the tentative profile.
func (m *Machine) Answer(value models.Archetype) error {
	if m.stage != StageQuiz {
		return ErrWrongStage
	}
	m.answers = append(m.answers, value)
	if m.quizStep < len(Questions)-1 {
		m.quizStep++
		return nil
	}
	m.profile = models.NewPendingProfile(ResolveArchetype(m.answers), m.now())
	m.stage = StageRegistration
	m.lastErr = ""
	return nil
}

// Register submits name and phone. Validation failures never reach the
// remote store. On remote success the matricule is revealed; on remote
// failure the machine returns here with the error surfaced and
// resubmission allowed.
func (m *Machine) Register(ctx context.Context, name, phone string) error {
	if m.stage != StageRegistration {
		return ErrWrongStage
	}
	name = strings.TrimSpace(name)
	phone = NormalizePhone(phone, m.countryCode)
	if name == "" || phone == "" {
		return ErrValidation
	}

	m.stage = StageSyncing
	m.lastErr = ""

	candidate := m.profile
	candidate.Name = name
	candidate.Phone = phone
	matricule, err := m.profiles.Upsert(ctx, candidate)
	if err != nil {
		m.stage = StageRegistration
		m.lastErr = err.Error()
		return fmt.Errorf("registration failed: %w", err)
	}

	m.profile = m.profile.Complete(name, phone, matricule)
	m.stage = StageMatriculeReveal
	return nil
}

// Acknowledge confirms the revealed matricule and enters the dashboard.
// The session identifier is persisted here, not before: the matricule is
// only durable once the user has seen it.
func (m *Machine) Acknowledge() error {
	if m.stage != StageMatriculeReveal {
		return ErrWrongStage
	}
	m.saveSession(m.profile.Matricule)
	m.stage = StageDashboard
	return nil
}

// saveSession persists the matricule when a durable store is attached.
// Server-side machines run without one; the browser owns persistence.
func (m *Machine) saveSession(matricule string) {
	if m.sessions == nil {
		return
	}
	if err := m.sessions.Save(matricule); err != nil {
		// A failed session write only costs the auto-login next visit.
		log.Printf("failed to persist session identifier: %v", err)
	}
}

// Login resolves a matricule for a returning user. Unknown codes stay at
// the login screen with an inline error.
func (m *Machine) Login(ctx context.Context, code string) (models.Profile, error) {
	if m.stage != StageLogin {
		return models.Profile{}, ErrWrongStage
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return models.Profile{}, ErrValidation
	}

	m.stage = StageSyncing
	m.lastErr = ""

	profile, err := m.profiles.GetByMatricule(ctx, code)
	if err != nil {
		m.stage = StageLogin
		if errors.Is(err, stores.ErrNotFound) {
			m.lastErr = "Matricule inconnu. Avez-vous passé le rituel ?"
		} else {
			m.lastErr = err.Error()
		}
		return models.Profile{}, err
	}

	profile.Stage = models.StageComplete
	m.profile = profile
	m.saveSession(profile.Matricule)
	m.stage = StageDashboard
	return profile, nil
}

// Logout discards the in-memory profile unconditionally and clears the
// durable session identifier. Valid from any stage.
func (m *Machine) Logout() {
	if m.sessions != nil {
		_ = m.sessions.Clear()
	}
	m.profile = models.Profile{Stage: models.StageAnonymous}
	m.answers = nil
	m.quizStep = 0
	m.lastErr = ""
	m.stage = StageLocked
}
