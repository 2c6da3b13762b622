// Package dashboard coordinates everything behind the matricule wall:
// view switching, XP toasts, optimistic writes against the remote store
// and the lifecycle of the realtime message subscriptions.
package dashboard

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"waniyilo/models"
	"waniyilo/rewards"
	"waniyilo/session"
	"waniyilo/stores"
)

// View selects the visible dashboard panel.
type View string

const (
	ViewHome        View = "HOME"
	ViewLab         View = "LAB"
	ViewNews        View = "NEWS"
	ViewLearning    View = "LEARNING_LANGUE"
	ViewLeaderboard View = "LEADERBOARD"
	ViewNexus       View = "NEXUS"
	ViewAdmin       View = "ADMIN"
)

var (
	// ErrNotLoggedIn guards every operation that needs a profile.
	ErrNotLoggedIn = errors.New("dashboard: no active profile")
	// ErrAdminOnly is the client-side display gate. Real authorization
	// is the remote store's job, not this controller's.
	ErrAdminOnly = errors.New("dashboard: admin archetype required")
	// ErrEmptyMessage rejects blank sends before any remote call.
	ErrEmptyMessage = errors.New("dashboard: message content is empty")
	// ErrSelfMessage rejects private messages addressed to the sender.
	ErrSelfMessage = errors.New("dashboard: cannot message yourself")
)

// FallbackNews is shown while the archives are unreachable.
var FallbackNews = []models.NewsItem{
	{ID: "1", Title: "Connexion aux Archives...", Date: "...", Category: "Tech", Excerpt: "Chargement du flux d'actualités en cours."},
}

// FallbackVocabulary keeps the language module playable when the content
// store is unreachable.
var FallbackVocabulary = []models.VocabularyItem{
	{ID: "fallback-1", Level: 1, Fr: "Ordinateur", Fon: "Wémá mɔ", Options: []string{"Wémá mɔ", "Gbedjé", "Zòkèké"}},
	{ID: "fallback-2", Level: 1, Fr: "Internet", Fon: "Kan mɛ", Options: []string{"Agbaza", "Kan mɛ", "Yɛhwe"}},
	{ID: "fallback-3", Level: 1, Fr: "Savoir", Fon: "Nunyɔ", Options: []string{"Akkwɛ", "Nunyɔ", "Alɔ"}},
}

// Stores bundles the remote collaborators the controller mediates.
type Stores struct {
	Profiles  stores.ProfileStore
	Content   stores.ContentStore
	Messaging stores.MessagingStore
}

// Controller owns one user's dashboard session. It is constructed at
// startup with its dependencies injected; there is no process-wide
// client singleton.
type Controller struct {
	stores   Stores
	sessions *session.Store

	resumeTimeout time.Duration
	fetchTimeout  time.Duration
	notifTTL      time.Duration
	now           func() time.Time

	onEnter     func(models.Profile)
	onLogout    func()
	onLoggedOut func()
	emit        func(models.AcademyEvent)

	mu            sync.Mutex
	loggedIn      bool
	resumeDecided bool
	profile       models.Profile
	view          View

	notifications []models.XPNotification

	leaderboard     []models.LeaderboardEntry
	news            []models.NewsItem
	courses         []models.Course
	vocabulary      []models.VocabularyItem
	partners        []models.Partner
	users           []models.UserSummary
	nexusMessages   []models.NexusMessage
	privateMessages []models.PrivateMessage

	inflight map[View]bool
	subs     []stores.Subscription

	bg sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeouts overrides the resume ceiling and the content fetch bound.
func WithTimeouts(resume, fetch time.Duration) Option {
	return func(c *Controller) {
		c.resumeTimeout = resume
		c.fetchTimeout = fetch
	}
}

// WithNotificationTTL overrides how long XP toasts live.
func WithNotificationTTL(ttl time.Duration) Option {
	return func(c *Controller) { c.notifTTL = ttl }
}

// WithCallbacks wires the surrounding application's enter/logout hooks.
func WithCallbacks(onEnter func(models.Profile), onLogout func()) Option {
	return func(c *Controller) {
		c.onEnter = onEnter
		c.onLogout = onLogout
	}
}

// WithLoggedOutHook observes the (single) transition to the logged-out
// state after a failed or timed-out resume.
func WithLoggedOutHook(fn func()) Option {
	return func(c *Controller) { c.onLoggedOut = fn }
}

// WithEventSink receives academy events for the live feed.
func WithEventSink(fn func(models.AcademyEvent)) Option {
	return func(c *Controller) { c.emit = fn }
}

// WithClock substitutes the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController builds a logged-out controller.
func NewController(s Stores, sessions *session.Store, opts ...Option) *Controller {
	c := &Controller{
		stores:        s,
		sessions:      sessions,
		resumeTimeout: 3 * time.Second,
		fetchTimeout:  10 * time.Second,
		notifTTL:      models.NotificationTTL,
		now:           time.Now,
		view:          ViewHome,
		inflight:      map[View]bool{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resume attempts the silent auto-login. The profile fetch is bounded by
// a hard ceiling; when it neither resolves nor fails in time the
// controller settles on the logged-out state, exactly once, and never
// revisits that decision.
func (c *Controller) Resume(ctx context.Context) bool {
	id, ok := c.sessions.Load()
	if !ok {
		c.settleLoggedOut()
		return false
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.resumeTimeout)
	defer cancel()

	type result struct {
		profile models.Profile
		err     error
	}
	ch := make(chan result, 1)
	go func() {
		p, err := c.stores.Profiles.GetByMatricule(fetchCtx, id)
		ch <- result{p, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			c.settleLoggedOut()
			return false
		}
		r.profile.Stage = models.StageComplete
		c.EnterDashboard(r.profile)
		return true
	case <-fetchCtx.Done():
		c.settleLoggedOut()
		return false
	}
}

func (c *Controller) settleLoggedOut() {
	c.mu.Lock()
	already := c.resumeDecided || c.loggedIn
	c.resumeDecided = true
	c.mu.Unlock()
	if already {
		return
	}
	if c.onLoggedOut != nil {
		c.onLoggedOut()
	}
}

// EnterDashboard activates a session for the given complete profile.
func (c *Controller) EnterDashboard(profile models.Profile) {
	c.mu.Lock()
	c.loggedIn = true
	c.resumeDecided = true
	c.profile = profile
	c.view = ViewHome
	c.mu.Unlock()
	if c.onEnter != nil {
		c.onEnter(profile)
	}
}

// Logout discards the in-memory profile unconditionally, clears the
// durable session identifier and releases any live subscriptions.
func (c *Controller) Logout() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.loggedIn = false
	c.profile = models.Profile{Stage: models.StageAnonymous}
	c.view = ViewHome
	c.notifications = nil
	c.nexusMessages = nil
	c.privateMessages = nil
	c.mu.Unlock()

	unsubscribeAll(subs)
	if err := c.sessions.Clear(); err != nil {
		log.Printf("failed to clear session: %v", err)
	}
	if c.onLogout != nil {
		c.onLogout()
	}
}

// Close releases resources. Safe after Logout; subscriptions are torn
// down on every exit path.
func (c *Controller) Close() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	unsubscribeAll(subs)
	c.bg.Wait()
}

func unsubscribeAll(subs []stores.Subscription) {
	for _, s := range subs {
		s.Unsubscribe()
	}
}

// SetView switches the visible panel. Entering a data-backed view
// triggers at most one fetch even under concurrent re-entry; leaving
// NEXUS deterministically tears down both realtime subscriptions.
func (c *Controller) SetView(ctx context.Context, v View) error {
	c.mu.Lock()
	if !c.loggedIn {
		c.mu.Unlock()
		return ErrNotLoggedIn
	}
	if v == ViewAdmin && c.profile.Archetype != models.ArchetypeAdmin {
		c.mu.Unlock()
		return ErrAdminOnly
	}
	prev := c.view
	c.view = v
	var subs []stores.Subscription
	if prev == ViewNexus && v != ViewNexus {
		subs = c.subs
		c.subs = nil
	}
	c.mu.Unlock()

	unsubscribeAll(subs)
	c.enterView(ctx, v, prev)
	return nil
}

func (c *Controller) enterView(ctx context.Context, v, prev View) {
	switch v {
	case ViewLeaderboard:
		c.singleFlight(ctx, v, c.loadLeaderboard)
	case ViewNews, ViewHome:
		c.singleFlight(ctx, v, c.loadContent)
	case ViewLearning:
		c.singleFlight(ctx, v, c.loadVocabulary)
	case ViewAdmin:
		c.singleFlight(ctx, v, c.loadAdminData)
	case ViewNexus:
		if prev != ViewNexus {
			c.singleFlight(ctx, v, c.enterNexus)
		}
	}
}

// singleFlight runs fn unless a fetch for the same view is already in
// progress.
func (c *Controller) singleFlight(ctx context.Context, v View, fn func(context.Context)) {
	c.mu.Lock()
	if c.inflight[v] {
		c.mu.Unlock()
		return
	}
	c.inflight[v] = true
	c.mu.Unlock()

	fctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	fn(fctx)
	cancel()

	c.mu.Lock()
	delete(c.inflight, v)
	c.mu.Unlock()
}

func (c *Controller) loadLeaderboard(ctx context.Context) {
	entries, err := c.stores.Profiles.GetLeaderboard(ctx, 10)
	if err != nil {
		// Fail soft: an empty board beats a spinner that never ends.
		log.Printf("leaderboard fetch failed: %v", err)
		entries = nil
	}
	c.mu.Lock()
	c.leaderboard = entries
	c.mu.Unlock()
}

func (c *Controller) loadContent(ctx context.Context) {
	news := c.stores.Content.FetchNews(ctx)
	if len(news) == 0 {
		news = FallbackNews
	}
	courses := c.stores.Content.FetchCourses(ctx)
	c.mu.Lock()
	c.news = news
	c.courses = courses
	c.mu.Unlock()
}

func (c *Controller) loadVocabulary(ctx context.Context) {
	vocab := c.stores.Content.FetchVocabulary(ctx, 1)
	if len(vocab) == 0 {
		vocab = FallbackVocabulary
	}
	c.mu.Lock()
	c.vocabulary = vocab
	c.mu.Unlock()
}

func (c *Controller) loadAdminData(ctx context.Context) {
	news := c.stores.Content.FetchNews(ctx)
	vocab := c.stores.Content.FetchVocabulary(ctx, 1)
	partners := c.stores.Content.FetchPartners(ctx)
	users, err := c.stores.Profiles.FetchAllUsers(ctx)
	if err != nil {
		log.Printf("user directory fetch failed: %v", err)
		users = nil
	}
	c.mu.Lock()
	c.news = news
	c.vocabulary = vocab
	c.partners = partners
	c.users = users
	c.mu.Unlock()
}

// enterNexus loads message history and acquires both realtime feeds.
// The handles live until the view changes or the controller closes.
func (c *Controller) enterNexus(ctx context.Context) {
	c.mu.Lock()
	matricule := c.profile.Matricule
	c.mu.Unlock()

	recent := c.stores.Messaging.FetchRecent(ctx, 50)
	private := c.stores.Messaging.FetchPrivate(ctx, matricule)

	subGlobal := c.stores.Messaging.SubscribeGlobal(func(msg models.NexusMessage) {
		c.mu.Lock()
		c.nexusMessages = append(c.nexusMessages, msg)
		c.mu.Unlock()
	})
	subPrivate := c.stores.Messaging.SubscribePrivate(matricule, func(msg models.PrivateMessage) {
		c.mu.Lock()
		c.privateMessages = append(c.privateMessages, msg)
		c.mu.Unlock()
	})

	c.mu.Lock()
	stillNexus := c.view == ViewNexus && c.loggedIn
	if stillNexus {
		c.nexusMessages = recent
		c.privateMessages = private
		c.subs = append(c.subs, subGlobal, subPrivate)
	}
	c.mu.Unlock()
	if !stillNexus {
		// The view moved on while we were fetching.
		subGlobal.Unsubscribe()
		subPrivate.Unsubscribe()
	}
}

// AddXP applies WP locally first, shows a toast, and mirrors the gain to
// the remote store in the background. The remote write may lag or fail
// without blocking local state.
func (c *Controller) AddXP(ctx context.Context, amount int, reason string) error {
	c.mu.Lock()
	if !c.loggedIn {
		c.mu.Unlock()
		return ErrNotLoggedIn
	}
	updated, err := rewards.ApplyXP(c.profile, amount, reason)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	leveled := updated.Level > c.profile.Level
	c.profile = updated
	if leveled {
		c.applyBadgeEventLocked(rewards.EventLevelChanged)
	}
	notif := models.XPNotification{
		ID:        uuid.NewString(),
		Amount:    amount,
		Reason:    reason,
		CreatedAt: c.now(),
	}
	c.notifications = append(c.notifications, notif)
	matricule := c.profile.Matricule
	newXP, newLevel := c.profile.XP, c.profile.Level
	c.mu.Unlock()

	time.AfterFunc(c.notifTTL, func() { c.expireNotification(notif.ID) })

	if amount > 0 && matricule != "" {
		c.bg.Add(1)
		go func() {
			defer c.bg.Done()
			syncCtx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
			defer cancel()
			if err := c.stores.Profiles.IncrementXP(syncCtx, matricule, amount); err != nil {
				log.Printf("xp sync failed for %s: %v", matricule, err)
			}
		}()
	}

	c.emitEvent(models.AcademyEvent{
		Type: "xp_gained", Matricule: matricule, Amount: amount,
		Reason: reason, NewXP: newXP, NewLevel: newLevel, Timestamp: c.now(),
	})
	return nil
}

// applyBadgeEventLocked runs the reward engine for an event and emits an
// event per newly unlocked badge. Caller holds c.mu.
func (c *Controller) applyBadgeEventLocked(event rewards.Event) {
	before := len(c.profile.Badges)
	c.profile = rewards.EvaluateBadges(c.profile, event)
	for _, id := range c.profile.Badges[before:] {
		evt := models.AcademyEvent{
			Type: "badge_unlocked", Matricule: c.profile.Matricule,
			BadgeID: id, Timestamp: c.now(),
		}
		if c.emit != nil {
			// Emit without the lock later; queue is tiny so inline is fine.
			go c.emit(evt)
		}
	}
}

func (c *Controller) emitEvent(evt models.AcademyEvent) {
	if c.emit != nil {
		c.emit(evt)
	}
}

func (c *Controller) expireNotification(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.notifications[:0]
	for _, n := range c.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notifications = kept
}

// LockedModuleNotice emits the zero-WP toast shown for unopened modules.
func (c *Controller) LockedModuleNotice(ctx context.Context) error {
	return c.AddXP(ctx, 0, "🚧 Module en construction.")
}

// DailyBonus grants the daily WP gift.
func (c *Controller) DailyBonus(ctx context.Context) error {
	return c.AddXP(ctx, 5, "Bonus Quotidien")
}

// SendGlobal posts to the community channel. The local list is updated
// immediately; the remote write is fire-and-forget.
func (c *Controller) SendGlobal(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyMessage
	}
	c.mu.Lock()
	if !c.loggedIn {
		c.mu.Unlock()
		return ErrNotLoggedIn
	}
	msg := models.NexusMessage{
		ID:        uuid.NewString(),
		UserName:  c.profile.Name,
		UserPhone: c.profile.Phone,
		Archetype: string(c.profile.Archetype),
		Content:   content,
		CreatedAt: c.now(),
	}
	c.nexusMessages = append(c.nexusMessages, msg)
	c.applyBadgeEventLocked(rewards.EventCommunityMessageSent)
	c.mu.Unlock()

	c.bg.Add(1)
	go func() {
		defer c.bg.Done()
		sendCtx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
		defer cancel()
		if err := c.stores.Messaging.SendGlobal(sendCtx, msg); err != nil {
			log.Printf("global send failed: %v", err)
		}
	}()
	return nil
}

// SendPrivate posts a matricule-addressed message. The optimistic entry
// is rolled back when the remote write fails, so the local list never
// shows a message the recipient can never receive.
func (c *Controller) SendPrivate(ctx context.Context, to, content string) error {
	content = strings.TrimSpace(content)
	to = strings.ToUpper(strings.TrimSpace(to))
	if content == "" || to == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	if !c.loggedIn {
		c.mu.Unlock()
		return ErrNotLoggedIn
	}
	if to == c.profile.Matricule {
		c.mu.Unlock()
		return ErrSelfMessage
	}
	msg := models.PrivateMessage{
		ID:        uuid.NewString(),
		Sender:    c.profile.Matricule,
		Receiver:  to,
		Content:   content,
		CreatedAt: c.now(),
		Read:      true,
	}
	c.privateMessages = append(c.privateMessages, msg)
	c.mu.Unlock()

	if err := c.stores.Messaging.SendPrivate(ctx, msg); err != nil {
		c.mu.Lock()
		kept := c.privateMessages[:0]
		for _, m := range c.privateMessages {
			if m.ID != msg.ID {
				kept = append(kept, m)
			}
		}
		c.privateMessages = kept
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.applyBadgeEventLocked(rewards.EventPrivateMessageSent)
	c.mu.Unlock()
	return nil
}

// AnswerVocabulary scores one quiz answer: +2 WP when correct, a
// zero-WP feedback toast otherwise.
func (c *Controller) AnswerVocabulary(ctx context.Context, item models.VocabularyItem, selected string) (bool, error) {
	if item.Fon == selected {
		return true, c.AddXP(ctx, 2, "Bonne réponse !")
	}
	return false, c.AddXP(ctx, 0, "Oups, essaie encore.")
}

// CompleteVocabularyModule rewards finishing the module and unlocks the
// language badge on first completion.
func (c *Controller) CompleteVocabularyModule(ctx context.Context) error {
	if err := c.AddXP(ctx, 10, "Niveau Terminé !"); err != nil {
		return err
	}
	c.mu.Lock()
	c.applyBadgeEventLocked(rewards.EventLanguageModulePassed)
	c.mu.Unlock()
	return nil
}

// PostComment attaches a comment to a news item and grants the
// participation WP on success.
func (c *Controller) PostComment(ctx context.Context, newsID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyMessage
	}
	c.mu.Lock()
	if !c.loggedIn {
		c.mu.Unlock()
		return ErrNotLoggedIn
	}
	name := c.profile.Name
	c.mu.Unlock()

	comment := models.Comment{NewsID: newsID, UserName: name, Content: content, CreatedAt: c.now()}
	if err := c.stores.Content.AddComment(ctx, comment); err != nil {
		return err
	}
	return c.AddXP(ctx, 1, "Participation")
}

// CycleAvatar advances the avatar style rotation and mirrors it
// remotely, best effort.
func (c *Controller) CycleAvatar(ctx context.Context) (string, error) {
	c.mu.Lock()
	if !c.loggedIn {
		c.mu.Unlock()
		return "", ErrNotLoggedIn
	}
	next := rewards.NextAvatarStyle(c.profile.AvatarStyle)
	c.profile.AvatarStyle = next
	matricule := c.profile.Matricule
	c.mu.Unlock()

	c.bg.Add(1)
	go func() {
		defer c.bg.Done()
		syncCtx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
		defer cancel()
		if err := c.stores.Profiles.UpdateAvatar(syncCtx, matricule, next); err != nil {
			log.Printf("avatar sync failed: %v", err)
		}
	}()
	return next, nil
}

func (c *Controller) requireAdmin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loggedIn {
		return ErrNotLoggedIn
	}
	if c.profile.Archetype != models.ArchetypeAdmin {
		return ErrAdminOnly
	}
	return nil
}

// CreateNews publishes a news item. Admin gate is a UX convenience; the
// store enforces the real rule.
func (c *Controller) CreateNews(ctx context.Context, title, category, excerpt string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	item := models.NewsItem{Title: title, Category: category, Excerpt: excerpt, Date: "Direct", CreatedAt: c.now()}
	if err := c.stores.Content.CreateNews(ctx, item); err != nil {
		return err
	}
	c.mu.Lock()
	c.applyBadgeEventLocked(rewards.EventAdminContentSubmission)
	c.mu.Unlock()
	return nil
}

// DeleteNews removes a news item and drops it from the local list.
func (c *Controller) DeleteNews(ctx context.Context, id string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	if err := c.stores.Content.DeleteNews(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	kept := c.news[:0]
	for _, n := range c.news {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.news = kept
	c.mu.Unlock()
	return nil
}

// AddVocabulary adds a quiz word.
func (c *Controller) AddVocabulary(ctx context.Context, fr, fon string, options []string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	item := models.VocabularyItem{Level: 1, Fr: fr, Fon: fon, Options: options}
	if err := c.stores.Content.AddVocabulary(ctx, item); err != nil {
		return err
	}
	c.mu.Lock()
	c.applyBadgeEventLocked(rewards.EventAdminContentSubmission)
	c.mu.Unlock()
	return nil
}

// DeleteVocabulary removes a quiz word.
func (c *Controller) DeleteVocabulary(ctx context.Context, id string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	if err := c.stores.Content.DeleteVocabulary(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	kept := c.vocabulary[:0]
	for _, v := range c.vocabulary {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	c.vocabulary = kept
	c.mu.Unlock()
	return nil
}

// AddPartner registers a partner organisation.
func (c *Controller) AddPartner(ctx context.Context, name, partnerType string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	return c.stores.Content.AddPartner(ctx, models.Partner{Name: name, Type: partnerType})
}

// DeletePartner removes a partner.
func (c *Controller) DeletePartner(ctx context.Context, id string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	if err := c.stores.Content.DeletePartner(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	kept := c.partners[:0]
	for _, p := range c.partners {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.partners = kept
	c.mu.Unlock()
	return nil
}

// DeleteNexusMessage removes a community message, optimistically. On
// remote failure the list is reconciled by re-fetching.
func (c *Controller) DeleteNexusMessage(ctx context.Context, id string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	c.mu.Lock()
	kept := c.nexusMessages[:0]
	for _, m := range c.nexusMessages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	c.nexusMessages = kept
	c.mu.Unlock()

	if err := c.stores.Messaging.DeleteGlobal(ctx, id); err != nil {
		recent := c.stores.Messaging.FetchRecent(ctx, 50)
		c.mu.Lock()
		c.nexusMessages = recent
		c.mu.Unlock()
		return err
	}
	return nil
}

// --- read-only snapshot ---

// LoggedIn reports whether a profile is active.
func (c *Controller) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loggedIn
}

// Profile returns the active profile.
func (c *Controller) Profile() models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// CurrentView returns the selected panel.
func (c *Controller) CurrentView() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Notifications returns the live XP toasts.
func (c *Controller) Notifications() []models.XPNotification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.XPNotification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// Leaderboard returns the last fetched ranking.
func (c *Controller) Leaderboard() []models.LeaderboardEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.LeaderboardEntry, len(c.leaderboard))
	copy(out, c.leaderboard)
	return out
}

// News returns the last fetched news list.
func (c *Controller) News() []models.NewsItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.NewsItem, len(c.news))
	copy(out, c.news)
	return out
}

// Courses returns the last fetched course list.
func (c *Controller) Courses() []models.Course {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Vocabulary returns the active vocabulary set.
func (c *Controller) Vocabulary() []models.VocabularyItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.VocabularyItem, len(c.vocabulary))
	copy(out, c.vocabulary)
	return out
}

// Partners returns the partner list.
func (c *Controller) Partners() []models.Partner {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Partner, len(c.partners))
	copy(out, c.partners)
	return out
}

// Users returns the admin user directory.
func (c *Controller) Users() []models.UserSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.UserSummary, len(c.users))
	copy(out, c.users)
	return out
}

// NexusMessages returns the global channel history.
func (c *Controller) NexusMessages() []models.NexusMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.NexusMessage, len(c.nexusMessages))
	copy(out, c.nexusMessages)
	return out
}

// PrivateMessages returns the private channel history.
func (c *Controller) PrivateMessages() []models.PrivateMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.PrivateMessage, len(c.privateMessages))
	copy(out, c.privateMessages)
	return out
}
