// Package gameserver owns the live game: the character, location registry,
// calendar, inventory and event log, and the clock that advances them.
package gameserver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wonders/internal/game/activity"
	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/dice"
	"github.com/cory-johannsen/wonders/internal/game/gametime"
	"github.com/cory-johannsen/wonders/internal/game/inventory"
	"github.com/cory-johannsen/wonders/internal/game/location"
	"github.com/cory-johannsen/wonders/internal/save"
	"github.com/cory-johannsen/wonders/internal/storage"
	"github.com/cory-johannsen/wonders/internal/storage/memory"
)

const (
	// HourlyStamina is regenerated at every hour rollover.
	HourlyStamina = 1
	// DawnHour is the hour at which the character wakes fully restored.
	DawnHour = 6
	// DefaultTickInterval is the real time per simulated minute.
	DefaultTickInterval = 3 * time.Second
	// DefaultEventLogCap bounds the in-memory event log.
	DefaultEventLogCap = 100
	// DefaultSavedEventTail is how many events a snapshot keeps.
	DefaultSavedEventTail = 50
)

// ActionCreate labels the result of CreateCharacter.
const ActionCreate location.Action = "create"

// Options configures a Game. Zero fields take the documented defaults.
type Options struct {
	// Store defaults to an in-memory store.
	Store storage.Store
	// Key defaults to save.Key.
	Key string
	// Catalog defaults to location.DefaultCatalog().
	Catalog *location.Catalog
	// Shop defaults to inventory.DefaultShop().
	Shop *inventory.Registry
	// Roller defaults to a crypto-random logged roller.
	Roller activity.Roller
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// TickInterval defaults to DefaultTickInterval.
	TickInterval time.Duration
	// Start is the calendar position of a new game; a zero Day means gametime.New().
	Start gametime.GameTime
	// DisableAutosave turns the top-of-hour save off for new games.
	DisableAutosave bool
	// EventLogCap defaults to DefaultEventLogCap.
	EventLogCap int
	// SavedEventTail defaults to DefaultSavedEventTail when below 1.
	SavedEventTail int
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Store == nil {
		o.Store = memory.New()
	}
	if o.Key == "" {
		o.Key = save.Key
	}
	if o.Catalog == nil {
		o.Catalog = location.DefaultCatalog()
	}
	if o.Shop == nil {
		o.Shop = inventory.DefaultShop()
	}
	if o.Roller == nil {
		o.Roller = dice.NewLoggedRoller(dice.NewCryptoSource(), o.Logger)
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.Start.Day < 1 {
		o.Start = gametime.New()
	}
	if o.EventLogCap < 1 {
		o.EventLogCap = DefaultEventLogCap
	}
	if o.SavedEventTail < 1 {
		o.SavedEventTail = DefaultSavedEventTail
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// TimeUpdate is delivered to subscribers after every tick.
type TimeUpdate struct {
	Time     gametime.GameTime
	Daylight gametime.Daylight
}

// LocationView pairs a catalog location with its discovery state.
type LocationView struct {
	Location  *location.Location
	Discovery location.Discovery
	Current   bool
}

// Game is the aggregate root of a single save.
//
// Game is safe for concurrent use: one mutex serializes every state
// transition, so clock ticks and player activities never interleave.
type Game struct {
	opts   Options
	logger *zap.Logger
	clock  *Clock

	mu        sync.Mutex
	player    *character.Character
	registry  *location.Registry
	time      gametime.GameTime
	quests    []save.Quest
	inventory *inventory.Inventory
	settings  save.Settings
	events    *EventLog
	subs      map[chan<- TimeUpdate]struct{}
}

// NewGame creates a Game in its baseline state. Nothing is loaded until Init.
func NewGame(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		opts:     opts,
		logger:   opts.Logger,
		registry: location.NewRegistry(opts.Catalog),
		events:   NewEventLog(opts.EventLogCap),
		subs:     make(map[chan<- TimeUpdate]struct{}),
	}
	g.clock = NewClock(opts.TickInterval, g.Tick)
	g.resetLocked(g.baselineSettings())
	return g
}

func (g *Game) baselineSettings() save.Settings {
	s := save.DefaultSettings()
	s.AutosaveEnabled = !g.opts.DisableAutosave
	return s
}

// resetLocked returns every field to baseline.
func (g *Game) resetLocked(settings save.Settings) {
	g.player = nil
	g.registry.Reset()
	g.time = g.opts.Start
	g.quests = []save.Quest{}
	g.inventory = inventory.New()
	g.settings = settings
	g.events.Clear()
}

// Init restores the saved game, if any, and starts the clock when the save
// has a character. A missing or unreadable snapshot leaves the baseline in
// place.
//
// Postcondition: Returns true when a snapshot was restored. The error is
// non-nil only when the store itself failed.
func (g *Game) Init(ctx context.Context) (bool, error) {
	data, err := g.opts.Store.Get(ctx, g.opts.Key)
	if errors.Is(err, storage.ErrNotFound) {
		g.logger.Info("no saved game", zap.String("key", g.opts.Key))
		return false, nil
	}
	if err != nil {
		g.logger.Error("reading snapshot", zap.String("key", g.opts.Key), zap.Error(err))
		return false, fmt.Errorf("reading snapshot: %w", err)
	}

	snap, err := save.Decode(data, g.opts.Catalog)
	if err != nil {
		g.logger.Error("discarding unreadable snapshot", zap.String("key", g.opts.Key), zap.Error(err))
		return false, nil
	}

	g.mu.Lock()
	g.applyLocked(snap)
	hasPlayer := g.player != nil
	g.mu.Unlock()

	g.logger.Info("snapshot loaded",
		zap.String("key", g.opts.Key),
		zap.Bool("character", hasPlayer),
		zap.Time("saved_at", snap.SavedAt),
		zap.Stringer("game_time", snap.GameTime),
	)
	if hasPlayer {
		g.StartClock(ctx)
	}
	return true, nil
}

func (g *Game) applyLocked(snap *save.Snapshot) {
	g.resetLocked(snap.Settings)
	if snap.Player != nil {
		g.player = snap.Player.Character()
	}
	g.time = snap.GameTime
	g.registry.Restore(snap.Discoveries(), snap.CurrentLocation)
	g.quests = append([]save.Quest{}, snap.Quests...)
	for _, id := range snap.Inventory {
		if _, ok := g.opts.Shop.Upgrade(id); !ok {
			g.logger.Warn("dropping unknown inventory item", zap.String("item", id))
			continue
		}
		g.inventory.Add(id)
	}
	g.events.Restore(snap.EventLog)
}

// Snapshot returns the persisted form of the current state.
func (g *Game) Snapshot() *save.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() *save.Snapshot {
	s := save.Baseline(g.opts.Catalog)
	s.SavedAt = g.opts.Now().UTC()
	s.Player = save.PlayerFrom(g.player)
	s.GameTime = g.time
	states, current := g.registry.Export()
	s.SetDiscoveries(g.opts.Catalog, states)
	s.CurrentLocation = current
	s.Quests = append([]save.Quest{}, g.quests...)
	s.Inventory = g.inventory.IDs()
	s.Settings = g.settings
	s.EventLog = g.events.Tail(g.opts.SavedEventTail)
	return s
}

// Save writes a snapshot to the store. Failures are logged and reported as
// false; in-memory state is never rolled back.
func (g *Game) Save(ctx context.Context) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saveLocked(ctx)
}

func (g *Game) saveLocked(ctx context.Context) bool {
	snap := g.snapshotLocked()
	data, err := save.Encode(snap)
	if err != nil {
		g.logger.Error("encoding snapshot", zap.Error(err))
		return false
	}
	if err := g.opts.Store.Put(ctx, g.opts.Key, data); err != nil {
		g.logger.Error("writing snapshot", zap.String("key", g.opts.Key), zap.Error(err))
		return false
	}
	g.logger.Info("game saved",
		zap.String("key", g.opts.Key),
		zap.Stringer("game_time", g.time),
		zap.Int("bytes", len(data)),
	)
	return true
}

// Reset deletes the saved game, returns every field to baseline, and stops
// the clock. Settings return to their defaults.
//
// Postcondition: in-memory state is reset even when the store delete fails.
func (g *Game) Reset(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clock.Stop()
	g.resetLocked(g.baselineSettings())
	if err := g.opts.Store.Delete(ctx, g.opts.Key); err != nil {
		g.logger.Error("deleting snapshot", zap.String("key", g.opts.Key), zap.Error(err))
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	g.logger.Info("game reset")
	return nil
}

// Close stops the clock and saves a game that has a character.
func (g *Game) Close(ctx context.Context) {
	g.clock.Stop()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.player != nil {
		g.saveLocked(ctx)
	}
}

// CreateCharacter starts a new game with a level-1 character, keeping the
// current settings. Any previous progress is discarded. The new game is
// saved and the clock started.
func (g *Game) CreateCharacter(ctx context.Context, name string, class character.Class) activity.Result {
	c, err := character.New(name, class)
	if err != nil {
		reason := activity.ReasonInvalidClass
		if errors.Is(err, character.ErrEmptyName) {
			reason = activity.ReasonInvalidName
		}
		return activity.Result{Action: ActionCreate, Reason: reason, Message: err.Error()}
	}

	g.mu.Lock()
	g.resetLocked(g.settings)
	g.player = c
	msg := fmt.Sprintf("Welcome to the City of Wonders, %s!", c.Name)
	g.logLocked(KindSuccess, msg)
	g.saveLocked(ctx)
	g.mu.Unlock()

	g.logger.Info("character created",
		zap.String("name", c.Name),
		zap.String("class", string(c.Class)),
	)
	g.StartClock(ctx)
	return activity.Result{Action: ActionCreate, Success: true, Mutated: true, Message: msg, Events: []string{msg}}
}

// Explore performs an exploration at the current location.
func (g *Game) Explore(ctx context.Context) activity.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commitLocked(ctx, activity.Explore(g.player, g.registry, g.opts.Roller))
}

// Rest recovers stamina.
func (g *Game) Rest(ctx context.Context) activity.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commitLocked(ctx, activity.Rest(g.player, g.registry))
}

// Beg asks passers-by for coin.
func (g *Game) Beg(ctx context.Context) activity.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commitLocked(ctx, activity.Beg(g.player, g.registry, g.opts.Roller))
}

// PickPocket lifts coin from passers-by.
func (g *Game) PickPocket(ctx context.Context) activity.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commitLocked(ctx, activity.PickPocket(g.player, g.registry, g.opts.Roller))
}

// Trade lists the shop's offers at the current location.
func (g *Game) Trade(ctx context.Context) activity.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commitLocked(ctx, activity.Trade(g.player, g.registry, g.inventory, g.opts.Shop))
}

// Purchase buys the upgrade itemID.
func (g *Game) Purchase(ctx context.Context, itemID string) activity.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commitLocked(ctx, activity.Purchase(g.player, g.registry, g.inventory, g.opts.Shop, itemID))
}

// Study attempts to study at the current location.
func (g *Game) Study(ctx context.Context) activity.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commitLocked(ctx, activity.Study(g.registry))
}

// ChangeLocation travels to a discovered location.
func (g *Game) ChangeLocation(ctx context.Context, id location.ID) activity.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commitLocked(ctx, activity.ChangeLocation(g.registry, id))
}

// DiscoverNewLocation reveals a random undiscovered location, or returns nil
// once every location is known.
func (g *Game) DiscoverNewLocation(ctx context.Context) *location.Location {
	g.mu.Lock()
	defer g.mu.Unlock()
	found := activity.DiscoverNewLocation(g.registry, g.opts.Roller)
	if found == nil {
		return nil
	}
	g.logLocked(KindDiscovery, activity.DiscoveryMessage(found))
	g.saveLocked(ctx)
	return found
}

// Perform dispatches a location verb to its activity.
func (g *Game) Perform(ctx context.Context, action location.Action) activity.Result {
	switch action {
	case location.ActionExplore:
		return g.Explore(ctx)
	case location.ActionRest:
		return g.Rest(ctx)
	case location.ActionBeg:
		return g.Beg(ctx)
	case location.ActionPickPocket:
		return g.PickPocket(ctx)
	case location.ActionTrade:
		return g.Trade(ctx)
	case location.ActionStudy:
		return g.Study(ctx)
	default:
		return activity.Result{
			Action:  action,
			Reason:  activity.ReasonNotPermitted,
			Message: fmt.Sprintf("%q is not something you can do.", action),
		}
	}
}

// commitLocked records res in the event log and saves when it changed state.
func (g *Game) commitLocked(ctx context.Context, res activity.Result) activity.Result {
	lines := res.Events
	if len(lines) == 0 && !res.Success && res.Message != "" {
		lines = []string{res.Message}
	}
	for _, line := range lines {
		kind := KindSuccess
		switch {
		case !res.Success:
			kind = KindWarning
		case line == activity.LevelUpMessage:
			kind = KindLevelUp
		case res.Discovered != nil && line == activity.DiscoveryMessage(res.Discovered):
			kind = KindDiscovery
		}
		g.logLocked(kind, line)
	}

	g.logger.Debug("activity",
		zap.String("action", string(res.Action)),
		zap.Bool("success", res.Success),
		zap.String("reason", string(res.Reason)),
		zap.Int("stamina", res.Deltas.Stamina),
		zap.Int("gold", res.Deltas.Gold),
		zap.Int("experience", res.Deltas.Experience),
	)

	if res.Success && res.Mutated {
		g.saveLocked(ctx)
	}
	return res
}

func (g *Game) logLocked(kind EventKind, msg string) {
	g.events.Append(kind, msg, g.opts.Now(), g.time.String())
}

// Tick advances the calendar by one minute. Hour rollovers regenerate
// stamina, or fully restore the character at dawn; day rollovers are logged.
// At the top of each hour the game autosaves when enabled. Subscribers are
// then notified without blocking.
//
// A tick whose ctx is already cancelled does nothing.
func (g *Game) Tick(ctx context.Context) {
	g.mu.Lock()
	if ctx.Err() != nil {
		g.mu.Unlock()
		return
	}
	g.time.Advance(1, gametime.Hooks{OnHour: g.onHourLocked, OnDay: g.onDayLocked})
	if g.time.TopOfHour() && g.settings.AutosaveEnabled {
		g.saveLocked(ctx)
	}
	update := TimeUpdate{Time: g.time, Daylight: g.time.Daylight()}
	subs := make([]chan<- TimeUpdate, 0, len(g.subs))
	for ch := range g.subs {
		subs = append(subs, ch)
	}
	g.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- update:
		default:
		}
	}
}

func (g *Game) onHourLocked(t gametime.GameTime) {
	if g.player == nil {
		return
	}
	if t.Hour%gametime.HoursPerDay == DawnHour {
		g.player.RestoreResources()
		g.logLocked(KindTime, "Dawn breaks over the city. You wake fully rested.")
		return
	}
	g.player.ModifyStamina(HourlyStamina)
}

func (g *Game) onDayLocked(t gametime.GameTime) {
	g.logLocked(KindTime, fmt.Sprintf("A new day begins: Day %d.", t.Day))
}

// StartClock starts ticking, replacing any running clock. The clock outlives
// ctx's cancellation but keeps its values.
func (g *Game) StartClock(ctx context.Context) {
	g.clock.Start(context.WithoutCancel(ctx))
}

// StopClock stops ticking. It is idempotent.
func (g *Game) StopClock() {
	g.clock.Stop()
}

// ClockRunning reports whether the clock is ticking.
func (g *Game) ClockRunning() bool {
	return g.clock.Running()
}

// Subscribe registers ch for a TimeUpdate after every tick. A full channel
// misses that update.
//
// Precondition: ch must not be nil.
func (g *Game) Subscribe(ch chan<- TimeUpdate) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs[ch] = struct{}{}
}

// Unsubscribe removes ch.
func (g *Game) Unsubscribe(ch chan<- TimeUpdate) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.subs, ch)
}

// Character returns a copy of the character, or false before creation.
func (g *Game) Character() (*character.Character, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.player == nil {
		return nil, false
	}
	return g.player.Clone(), true
}

// Time returns the current calendar position.
func (g *Game) Time() gametime.GameTime {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.time
}

// CurrentLocation returns where the player is.
func (g *Game) CurrentLocation() *location.Location {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.registry.Current()
}

// Locations returns every catalog location with its discovery state, in
// catalog order.
func (g *Game) Locations() []LocationView {
	g.mu.Lock()
	defer g.mu.Unlock()
	current := g.registry.Current().ID
	var out []LocationView
	for _, l := range g.opts.Catalog.All() {
		out = append(out, LocationView{Location: l, Discovery: g.registry.State(l.ID), Current: l.ID == current})
	}
	return out
}

// Inventory returns the owned item IDs in acquisition order.
func (g *Game) Inventory() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inventory.IDs()
}

// Shop returns the upgrade catalog.
func (g *Game) Shop() *inventory.Registry {
	return g.opts.Shop
}

// Quests returns a copy of the quest list.
func (g *Game) Quests() []save.Quest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]save.Quest{}, g.quests...)
}

// Events returns the event log, oldest first.
func (g *Game) Events() []Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.events.Entries()
}

// Settings returns the current preferences.
func (g *Game) Settings() save.Settings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings
}

// UpdateSettings replaces the preferences and saves.
func (g *Game) UpdateSettings(ctx context.Context, s save.Settings) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.settings = s
	return g.saveLocked(ctx)
}
