package dashboard

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"waniyilo/models"
	"waniyilo/session"
	"waniyilo/stores"
)

// --- fakes ---

type fakeProfiles struct {
	mu             sync.Mutex
	profiles       map[string]models.Profile
	getDelay       time.Duration
	incrementCalls []int
	avatarUpdates  []string
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: map[string]models.Profile{}}
}

func (f *fakeProfiles) Upsert(ctx context.Context, p models.Profile) (string, error) {
	return p.Matricule, nil
}

func (f *fakeProfiles) GetByMatricule(ctx context.Context, code string) (models.Profile, error) {
	if f.getDelay > 0 {
		select {
		case <-time.After(f.getDelay):
		case <-ctx.Done():
			return models.Profile{}, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[code]
	if !ok {
		return models.Profile{}, stores.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfiles) IncrementXP(ctx context.Context, matricule string, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incrementCalls = append(f.incrementCalls, amount)
	return nil
}

func (f *fakeProfiles) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	return []models.LeaderboardEntry{{Name: "Ayo", XP: 300, Level: 4, Matricule: "W26-000001"}}, nil
}

func (f *fakeProfiles) UpdateAvatar(ctx context.Context, matricule, style string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.avatarUpdates = append(f.avatarUpdates, style)
	return nil
}

func (f *fakeProfiles) FetchAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	return nil, nil
}

type fakeContent struct {
	mu         sync.Mutex
	newsCalls  int
	gate       chan struct{} // when non-nil, FetchNews blocks until closed
	comments   []models.Comment
	commentErr error
}

func (f *fakeContent) FetchNews(ctx context.Context) []models.NewsItem {
	f.mu.Lock()
	f.newsCalls++
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return []models.NewsItem{{ID: "n1", Title: "Lancement"}}
}

func (f *fakeContent) FetchCourses(ctx context.Context) []models.Course {
	return []models.Course{{ID: "c1", Title: "Langue Fongbé", Status: "AVAILABLE"}}
}

func (f *fakeContent) FetchVocabulary(ctx context.Context, level int) []models.VocabularyItem {
	return nil
}

func (f *fakeContent) FetchPartners(ctx context.Context) []models.Partner { return nil }

func (f *fakeContent) FetchComments(ctx context.Context, newsID string) []models.Comment {
	return nil
}

func (f *fakeContent) CreateNews(ctx context.Context, item models.NewsItem) error { return nil }
func (f *fakeContent) DeleteNews(ctx context.Context, id string) error            { return nil }
func (f *fakeContent) AddVocabulary(ctx context.Context, item models.VocabularyItem) error {
	return nil
}
func (f *fakeContent) DeleteVocabulary(ctx context.Context, id string) error     { return nil }
func (f *fakeContent) AddPartner(ctx context.Context, p models.Partner) error    { return nil }
func (f *fakeContent) DeletePartner(ctx context.Context, id string) error        { return nil }
func (f *fakeContent) AddComment(ctx context.Context, c models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.commentErr != nil {
		return f.commentErr
	}
	f.comments = append(f.comments, c)
	return nil
}

type fakeSub struct {
	mu    sync.Mutex
	calls int
}

func (s *fakeSub) Unsubscribe() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *fakeSub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeMessaging struct {
	mu          sync.Mutex
	globalSent  []models.NexusMessage
	privateSent []models.PrivateMessage
	privateErr  error
	globalSub   *fakeSub
	privateSub  *fakeSub
}

func newFakeMessaging() *fakeMessaging {
	return &fakeMessaging{globalSub: &fakeSub{}, privateSub: &fakeSub{}}
}

func (f *fakeMessaging) FetchRecent(ctx context.Context, limit int) []models.NexusMessage {
	return []models.NexusMessage{{ID: "m1", UserName: "Ayo", Content: "Bienvenue"}}
}

func (f *fakeMessaging) SendGlobal(ctx context.Context, msg models.NexusMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.globalSent = append(f.globalSent, msg)
	return nil
}

func (f *fakeMessaging) DeleteGlobal(ctx context.Context, id string) error { return nil }

func (f *fakeMessaging) FetchPrivate(ctx context.Context, matricule string) []models.PrivateMessage {
	return nil
}

func (f *fakeMessaging) SendPrivate(ctx context.Context, msg models.PrivateMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.privateErr != nil {
		return f.privateErr
	}
	f.privateSent = append(f.privateSent, msg)
	return nil
}

func (f *fakeMessaging) SubscribeGlobal(cb func(models.NexusMessage)) stores.Subscription {
	return f.globalSub
}

func (f *fakeMessaging) SubscribePrivate(matricule string, cb func(models.PrivateMessage)) stores.Subscription {
	return f.privateSub
}

// --- helpers ---

type fixture struct {
	controller *Controller
	profiles   *fakeProfiles
	content    *fakeContent
	messaging  *fakeMessaging
	sessions   *session.Store
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		profiles:  newFakeProfiles(),
		content:   &fakeContent{},
		messaging: newFakeMessaging(),
		sessions:  session.NewStore(filepath.Join(t.TempDir(), "session")),
	}
	f.controller = NewController(Stores{
		Profiles:  f.profiles,
		Content:   f.content,
		Messaging: f.messaging,
	}, f.sessions, opts...)
	return f
}

func testProfile(archetype models.Archetype) models.Profile {
	return models.Profile{
		Stage: models.StageComplete, Name: "Sika", Phone: "+22997000000",
		Matricule: "W26-424242", Archetype: archetype, Level: 1, XP: 50,
		Badges: []string{models.BadgeInitiation}, AvatarStyle: "bottts",
	}
}

func loggedIn(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := newFixture(t, opts...)
	f.controller.EnterDashboard(testProfile(models.ArchetypeGriot))
	return f
}

// --- resume ---

func TestResumeWithoutSessionSettlesLoggedOutOnce(t *testing.T) {
	settled := 0
	f := newFixture(t, WithLoggedOutHook(func() { settled++ }))

	if f.controller.Resume(context.Background()) {
		t.Fatal("Resume must fail without a stored session")
	}
	// A second attempt must not settle again.
	f.controller.Resume(context.Background())
	if settled != 1 {
		t.Errorf("logged-out transition fired %d times, want exactly 1", settled)
	}
}

func TestResumeRestoresStoredProfile(t *testing.T) {
	f := newFixture(t)
	f.profiles.profiles["W26-424242"] = testProfile(models.ArchetypeGriot)
	if err := f.sessions.Save("W26-424242"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !f.controller.Resume(context.Background()) {
		t.Fatal("Resume must succeed for a stored matricule")
	}
	if !f.controller.LoggedIn() {
		t.Error("controller must be logged in after resume")
	}
	if got := f.controller.Profile().Matricule; got != "W26-424242" {
		t.Errorf("profile matricule = %q", got)
	}
	if f.controller.CurrentView() != ViewHome {
		t.Errorf("view after resume = %s, want HOME", f.controller.CurrentView())
	}
}

func TestResumeTimesOutToLoggedOut(t *testing.T) {
	settled := 0
	f := newFixture(t,
		WithTimeouts(20*time.Millisecond, time.Second),
		WithLoggedOutHook(func() { settled++ }),
	)
	f.profiles.profiles["W26-424242"] = testProfile(models.ArchetypeGriot)
	f.profiles.getDelay = time.Second
	if err := f.sessions.Save("W26-424242"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	start := time.Now()
	if f.controller.Resume(context.Background()) {
		t.Fatal("Resume must give up when the fetch exceeds the ceiling")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Resume blocked %v, must respect the hard ceiling", elapsed)
	}
	if settled != 1 {
		t.Errorf("logged-out transition fired %d times, want 1", settled)
	}
}

func TestResumeUnknownMatriculeFails(t *testing.T) {
	f := newFixture(t)
	if err := f.sessions.Save("W26-999999"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if f.controller.Resume(context.Background()) {
		t.Fatal("Resume must fail for an unknown matricule")
	}
	if f.controller.LoggedIn() {
		t.Error("controller must stay logged out")
	}
}

// --- views ---

func TestSetViewRequiresLogin(t *testing.T) {
	f := newFixture(t)
	if err := f.controller.SetView(context.Background(), ViewNews); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestAdminViewGatedOnArchetype(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SetView(context.Background(), ViewAdmin); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("expected ErrAdminOnly for non-admin, got %v", err)
	}

	admin := newFixture(t)
	admin.controller.EnterDashboard(testProfile(models.ArchetypeAdmin))
	if err := admin.controller.SetView(context.Background(), ViewAdmin); err != nil {
		t.Errorf("admin must reach the admin view, got %v", err)
	}
}

func TestLeaderboardFetchOnViewEnter(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SetView(context.Background(), ViewLeaderboard); err != nil {
		t.Fatalf("SetView failed: %v", err)
	}
	board := f.controller.Leaderboard()
	if len(board) != 1 || board[0].Name != "Ayo" {
		t.Errorf("leaderboard = %+v", board)
	}
}

func TestVocabularyFallsBackWhenStoreEmpty(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SetView(context.Background(), ViewLearning); err != nil {
		t.Fatalf("SetView failed: %v", err)
	}
	vocab := f.controller.Vocabulary()
	if len(vocab) != len(FallbackVocabulary) {
		t.Fatalf("expected fallback vocabulary, got %d items", len(vocab))
	}
}

func TestSingleFlightDeduplicatesConcurrentFetch(t *testing.T) {
	f := loggedIn(t)
	f.content.gate = make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = f.controller.SetView(context.Background(), ViewNews)
	}()

	// Wait for the first fetch to be in flight, then re-enter the view.
	deadline := time.After(time.Second)
	for {
		f.content.mu.Lock()
		started := f.content.newsCalls > 0
		f.content.mu.Unlock()
		if started {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first fetch never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	_ = f.controller.SetView(context.Background(), ViewNews)

	close(f.content.gate)
	<-done

	f.content.mu.Lock()
	calls := f.content.newsCalls
	f.content.mu.Unlock()
	if calls != 1 {
		t.Errorf("concurrent re-entry ran %d fetches, want 1", calls)
	}
}

// --- subscriptions ---

func TestLeavingNexusTearsDownSubscriptions(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SetView(context.Background(), ViewNexus); err != nil {
		t.Fatalf("SetView(NEXUS) failed: %v", err)
	}
	if got := len(f.controller.NexusMessages()); got != 1 {
		t.Errorf("nexus history = %d messages, want 1", got)
	}

	if err := f.controller.SetView(context.Background(), ViewHome); err != nil {
		t.Fatalf("SetView(HOME) failed: %v", err)
	}
	if f.messaging.globalSub.count() != 1 || f.messaging.privateSub.count() != 1 {
		t.Errorf("leaving NEXUS must release both feeds, got global=%d private=%d",
			f.messaging.globalSub.count(), f.messaging.privateSub.count())
	}
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SetView(context.Background(), ViewNexus); err != nil {
		t.Fatalf("SetView(NEXUS) failed: %v", err)
	}
	f.controller.Close()
	if f.messaging.globalSub.count() != 1 || f.messaging.privateSub.count() != 1 {
		t.Error("Close must release live subscriptions")
	}
}

func TestLogoutReleasesSubscriptionsAndClearsSession(t *testing.T) {
	f := loggedIn(t)
	if err := f.sessions.Save("W26-424242"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := f.controller.SetView(context.Background(), ViewNexus); err != nil {
		t.Fatalf("SetView(NEXUS) failed: %v", err)
	}

	f.controller.Logout()

	if f.controller.LoggedIn() {
		t.Error("Logout must drop the profile")
	}
	if _, ok := f.sessions.Load(); ok {
		t.Error("Logout must clear the durable session")
	}
	if f.messaging.globalSub.count() != 1 || f.messaging.privateSub.count() != 1 {
		t.Error("Logout must release live subscriptions")
	}
}

// --- rewards ---

func TestAddXPUpdatesLocallyAndSyncsRemotely(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.AddXP(context.Background(), 10, "Niveau Terminé !"); err != nil {
		t.Fatalf("AddXP failed: %v", err)
	}
	if got := f.controller.Profile().XP; got != 60 {
		t.Errorf("XP = %d, want 60", got)
	}
	notifs := f.controller.Notifications()
	if len(notifs) != 1 || notifs[0].Amount != 10 {
		t.Fatalf("notifications = %+v, want one +10 toast", notifs)
	}
	if notifs[0].ID == "" {
		t.Error("notification must carry a unique id")
	}

	f.controller.Close() // waits for the background sync
	f.profiles.mu.Lock()
	defer f.profiles.mu.Unlock()
	if len(f.profiles.incrementCalls) != 1 || f.profiles.incrementCalls[0] != 10 {
		t.Errorf("remote increments = %v, want [10]", f.profiles.incrementCalls)
	}
}

func TestNotificationExpires(t *testing.T) {
	f := loggedIn(t, WithNotificationTTL(20*time.Millisecond))
	if err := f.controller.AddXP(context.Background(), 5, "Bonus Quotidien"); err != nil {
		t.Fatalf("AddXP failed: %v", err)
	}
	if len(f.controller.Notifications()) != 1 {
		t.Fatal("toast must be visible immediately")
	}

	deadline := time.After(time.Second)
	for len(f.controller.Notifications()) != 0 {
		select {
		case <-deadline:
			t.Fatal("toast never expired")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	f.controller.Close()
}

func TestZeroAmountSkipsRemoteSync(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.LockedModuleNotice(context.Background()); err != nil {
		t.Fatalf("LockedModuleNotice failed: %v", err)
	}
	if len(f.controller.Notifications()) != 1 {
		t.Error("zero-WP feedback must still toast")
	}
	f.controller.Close()
	f.profiles.mu.Lock()
	defer f.profiles.mu.Unlock()
	if len(f.profiles.incrementCalls) != 0 {
		t.Errorf("zero amounts must not hit the remote store, got %v", f.profiles.incrementCalls)
	}
}

func TestNegativeXPRejected(t *testing.T) {
	f := loggedIn(t)
	before := f.controller.Profile().XP
	if err := f.controller.AddXP(context.Background(), -5, "nope"); err == nil {
		t.Fatal("negative amounts must be rejected")
	}
	if got := f.controller.Profile().XP; got != before {
		t.Errorf("XP changed on rejected amount: %d -> %d", before, got)
	}
}

func TestLevelUpUnlocksThresholdBadge(t *testing.T) {
	f := newFixture(t)
	p := testProfile(models.ArchetypeGriot)
	p.XP = 390
	p.Level = 4
	f.controller.EnterDashboard(p)

	if err := f.controller.AddXP(context.Background(), 20, "Participation"); err != nil {
		t.Fatalf("AddXP failed: %v", err)
	}
	got := f.controller.Profile()
	if got.Level != 5 {
		t.Fatalf("level = %d, want 5", got.Level)
	}
	if !got.HasBadge(models.BadgeScholar) {
		t.Error("reaching level 5 must unlock the scholar badge")
	}
	f.controller.Close()
}

// --- messaging ---

func TestSendGlobalIsOptimisticAndUnlocksBadge(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SendGlobal(context.Background(), "  Bonjour le Nexus  "); err != nil {
		t.Fatalf("SendGlobal failed: %v", err)
	}

	msgs := f.controller.NexusMessages()
	if len(msgs) != 1 {
		t.Fatalf("local list = %d messages, want optimistic entry", len(msgs))
	}
	if msgs[0].Content != "Bonjour le Nexus" {
		t.Errorf("content = %q, want trimmed", msgs[0].Content)
	}
	if msgs[0].ID == "" {
		t.Error("optimistic entry must carry an id")
	}
	if !f.controller.Profile().HasBadge(models.BadgeNexus1) {
		t.Error("first community message must unlock its badge")
	}

	f.controller.Close()
	f.messaging.mu.Lock()
	defer f.messaging.mu.Unlock()
	if len(f.messaging.globalSent) != 1 {
		t.Errorf("remote sends = %d, want 1", len(f.messaging.globalSent))
	}
}

func TestSendGlobalRejectsBlank(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SendGlobal(context.Background(), "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if len(f.controller.NexusMessages()) != 0 {
		t.Error("blank sends must not touch the local list")
	}
}

func TestSendPrivateSuccessUnlocksBadge(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SendPrivate(context.Background(), "w26-111111", "Salut"); err != nil {
		t.Fatalf("SendPrivate failed: %v", err)
	}
	msgs := f.controller.PrivateMessages()
	if len(msgs) != 1 || msgs[0].Receiver != "W26-111111" {
		t.Fatalf("private list = %+v, want one normalized entry", msgs)
	}
	if !f.controller.Profile().HasBadge(models.BadgeSocial) {
		t.Error("first private message must unlock its badge")
	}
}

func TestSendPrivateFailureRollsBack(t *testing.T) {
	f := loggedIn(t)
	f.messaging.privateErr = errors.New("write refused")

	err := f.controller.SendPrivate(context.Background(), "W26-111111", "Salut")
	if err == nil {
		t.Fatal("remote failure must surface")
	}
	if got := len(f.controller.PrivateMessages()); got != 0 {
		t.Errorf("optimistic entry must be rolled back, %d left", got)
	}
	if f.controller.Profile().HasBadge(models.BadgeSocial) {
		t.Error("failed send must not unlock the badge")
	}
}

func TestSendPrivateToSelfRejected(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.SendPrivate(context.Background(), "W26-424242", "echo"); !errors.Is(err, ErrSelfMessage) {
		t.Errorf("expected ErrSelfMessage, got %v", err)
	}
}

// --- learning and participation ---

func TestAnswerVocabularyScoring(t *testing.T) {
	f := loggedIn(t)
	item := FallbackVocabulary[0]

	correct, err := f.controller.AnswerVocabulary(context.Background(), item, item.Fon)
	if err != nil || !correct {
		t.Fatalf("correct answer: got (%v, %v)", correct, err)
	}
	if got := f.controller.Profile().XP; got != 52 {
		t.Errorf("XP after correct answer = %d, want 52", got)
	}

	correct, err = f.controller.AnswerVocabulary(context.Background(), item, "wrong")
	if err != nil || correct {
		t.Fatalf("wrong answer: got (%v, %v)", correct, err)
	}
	if got := f.controller.Profile().XP; got != 52 {
		t.Errorf("wrong answers must award nothing, XP = %d", got)
	}
	f.controller.Close()
}

func TestCompleteVocabularyModuleUnlocksLanguageBadge(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.CompleteVocabularyModule(context.Background()); err != nil {
		t.Fatalf("CompleteVocabularyModule failed: %v", err)
	}
	p := f.controller.Profile()
	if p.XP != 60 {
		t.Errorf("XP = %d, want 60 after module completion", p.XP)
	}
	if !p.HasBadge(models.BadgeLangue1) {
		t.Error("module completion must unlock the language badge")
	}
	f.controller.Close()
}

func TestPostCommentGrantsParticipationXP(t *testing.T) {
	f := loggedIn(t)
	if err := f.controller.PostComment(context.Background(), "n1", "Très bon article"); err != nil {
		t.Fatalf("PostComment failed: %v", err)
	}
	if got := f.controller.Profile().XP; got != 51 {
		t.Errorf("XP = %d, want 51", got)
	}
	f.content.mu.Lock()
	defer f.content.mu.Unlock()
	if len(f.content.comments) != 1 || f.content.comments[0].UserName != "Sika" {
		t.Errorf("comments = %+v", f.content.comments)
	}
	f.controller.Close()
}

func TestPostCommentFailureGrantsNothing(t *testing.T) {
	f := loggedIn(t)
	f.content.commentErr = errors.New("store down")
	if err := f.controller.PostComment(context.Background(), "n1", "oops"); err == nil {
		t.Fatal("store failure must surface")
	}
	if got := f.controller.Profile().XP; got != 50 {
		t.Errorf("failed comment must not award WP, XP = %d", got)
	}
}

func TestCycleAvatarRotatesAndSyncs(t *testing.T) {
	f := loggedIn(t)
	next, err := f.controller.CycleAvatar(context.Background())
	if err != nil {
		t.Fatalf("CycleAvatar failed: %v", err)
	}
	if next != "avataaars" {
		t.Errorf("next style = %q, want avataaars after bottts", next)
	}
	if got := f.controller.Profile().AvatarStyle; got != "avataaars" {
		t.Errorf("profile style = %q", got)
	}
	f.controller.Close()
	f.profiles.mu.Lock()
	defer f.profiles.mu.Unlock()
	if len(f.profiles.avatarUpdates) != 1 || f.profiles.avatarUpdates[0] != "avataaars" {
		t.Errorf("avatar updates = %v", f.profiles.avatarUpdates)
	}
}

// --- admin gating ---

func TestAdminMutationsGated(t *testing.T) {
	f := loggedIn(t) // griot, not admin
	ctx := context.Background()

	if err := f.controller.CreateNews(ctx, "t", "Tech", "e"); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("CreateNews: expected ErrAdminOnly, got %v", err)
	}
	if err := f.controller.DeleteNews(ctx, "n1"); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("DeleteNews: expected ErrAdminOnly, got %v", err)
	}
	if err := f.controller.AddVocabulary(ctx, "Eau", "Sin", []string{"Sin"}); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("AddVocabulary: expected ErrAdminOnly, got %v", err)
	}
	if err := f.controller.DeleteNexusMessage(ctx, "m1"); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("DeleteNexusMessage: expected ErrAdminOnly, got %v", err)
	}
}

func TestAdminContentSubmissionUnlocksCreatorBadge(t *testing.T) {
	f := newFixture(t)
	f.controller.EnterDashboard(testProfile(models.ArchetypeAdmin))

	if err := f.controller.CreateNews(context.Background(), "Lancement", "Event", "..."); err != nil {
		t.Fatalf("CreateNews failed: %v", err)
	}
	if !f.controller.Profile().HasBadge(models.BadgeCreator) {
		t.Error("first content submission must unlock the creator badge")
	}
}
