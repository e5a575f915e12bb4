package game

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/assistant"
	"github.com/samdwyer/codekingdoms/internal/battle"
	"github.com/samdwyer/codekingdoms/internal/challenge"
	"github.com/samdwyer/codekingdoms/internal/clock"
	"github.com/samdwyer/codekingdoms/internal/entity"
	"github.com/samdwyer/codekingdoms/internal/gamedata"
	"github.com/samdwyer/codekingdoms/internal/input"
	"github.com/samdwyer/codekingdoms/internal/progression"
	"github.com/samdwyer/codekingdoms/internal/quest"
	"github.com/samdwyer/codekingdoms/internal/telemetry"
	"github.com/samdwyer/codekingdoms/internal/ui"
	"github.com/samdwyer/codekingdoms/internal/world"
)

// Sprite sizes used when art is missing.
const (
	playerW, playerH = 3, 3
	bossW, bossH     = 9, 5
	iconW, iconH     = 3, 2
)

// messageDuration is how long a bottom-line notice stays up.
const messageDuration = 2 * time.Second

// Default screen size until the first frame reports the real one.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Game holds the entire game state. All methods run on the loop goroutine.
type Game struct {
	clock     clock.Clock
	logger    *log.Logger
	tracer    trace.Tracer
	ctx       context.Context
	sessionID string
	fps       int

	registry  *gamedata.KingdomRegistry
	art       *assets.Provider
	assistant *assistant.Launcher

	state    State
	running  bool
	width    int
	height   int
	now      time.Time
	lastTick time.Time

	worldMap *world.Map
	progress KingdomProgress
	tracker  *progression.Tracker
	meter    *ui.Meter

	kingdom *gamedata.KingdomDef
	quests  *quest.Sequencer
	widget  *challenge.Widget
	battle  *battle.Sequencer

	player *entity.Player
	boss   *entity.Boss
	level  *entity.Scene

	icons      map[string]*entity.MapIcon
	playerIcon *entity.MapIcon
	mapScene   *entity.Scene

	held       *input.Held
	translator input.Translator

	message   string
	messageAt time.Time
}

// New creates a game on the splash screen.
func New(cfg Config) (*Game, error) {
	if cfg.Registry == nil || cfg.Registry.Count() == 0 {
		return nil, gamedata.ErrNoKingdoms
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Art == nil {
		cfg.Art = assets.NewProvider(nil, cfg.Logger)
	}
	if cfg.Assistant == nil {
		cfg.Assistant = assistant.New("")
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}

	g := &Game{
		clock:     cfg.Clock,
		logger:    cfg.Logger.With("session", cfg.SessionID),
		tracer:    telemetry.Tracer("game"),
		ctx:       context.Background(),
		sessionID: cfg.SessionID,
		fps:       cfg.FPS,
		registry:  cfg.Registry,
		art:       cfg.Art,
		assistant: cfg.Assistant,
		state:     StateSplash,
		running:   true,
		width:     defaultWidth,
		height:    defaultHeight,
		progress:  NewKingdomProgress(cfg.Registry.Names()),
		tracker:   progression.NewTracker(),
		meter:     ui.NewMeter(cfg.FPS),
		held:      input.NewHeld(input.DefaultHoldWindow),
		icons:     make(map[string]*entity.MapIcon),
	}
	g.now = g.clock.Now()

	g.player = entity.NewPlayer(
		g.art.Animation("player.idle", playerW, playerH, tcell.ColorHotPink),
		g.art.Animation("player.walk", playerW, playerH, tcell.ColorHotPink),
	)
	g.boss = entity.NewBoss(assets.Placeholder(bossW, bossH, tcell.ColorRed))
	g.level = entity.NewScene(g.player, g.boss)

	sites := make([]world.Site, 0, cfg.Registry.Count())
	g.mapScene = entity.NewScene()
	for _, k := range cfg.Registry.All() {
		sites = append(sites, world.Site{
			Name:   k.Name,
			Region: world.Region{X: k.Region.X, Y: k.Region.Y, W: k.Region.W, H: k.Region.H},
			Icon:   world.Point{X: k.BossIcon.X, Y: k.BossIcon.Y},
		})
		icon := &entity.MapIcon{Art: g.art.Art(k.Boss, iconW, iconH, tcell.ColorRed)}
		g.icons[k.Name] = icon
		g.mapScene.Add(icon)
	}
	g.worldMap = world.NewMap(sites)
	g.playerIcon = &entity.MapIcon{Art: g.art.Art("player.idle", playerW, playerH, tcell.ColorHotPink)}
	g.mapScene.Add(g.playerIcon)

	g.logger.Info("game created", "kingdoms", cfg.Registry.Count(), "fps", cfg.FPS)
	return g, nil
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// Stop ends the loop at the next iteration boundary.
func (g *Game) Stop() {
	g.running = false
}

// Resize records the screen size used for layout and hit-testing. Inside a
// kingdom the player keeps its relative position and the boss its start
// point, so the boss stays reachable after the terminal shrinks.
func (g *Game) Resize(width, height int) {
	oldW, oldH := g.width, g.height
	g.width, g.height = width, height
	if g.kingdom == nil {
		return
	}
	if oldW > 0 && oldH > 0 {
		g.player.X *= float64(width) / float64(oldW)
		g.player.Y *= float64(height) / float64(oldH)
	}
	g.player.SetArena(world.Arena{Width: width, Height: height})
	g.boss.X, g.boss.Y = world.BossStart.Scale(width, height)
}

// Tracker returns the player's progression.
func (g *Game) Tracker() *progression.Tracker {
	return g.tracker
}

// Quests returns the active kingdom's quest sequencer, or nil on the map.
func (g *Game) Quests() *quest.Sequencer {
	return g.quests
}

// Progress returns which kingdoms have been cleared.
func (g *Game) Progress() KingdomProgress {
	return g.progress
}

// Kingdom returns the kingdom being played, or nil.
func (g *Game) Kingdom() *gamedata.KingdomDef {
	return g.kingdom
}

// Message returns the current bottom-line notice.
func (g *Game) Message() string {
	return g.message
}

// SessionID returns the identifier of this run.
func (g *Game) SessionID() string {
	return g.sessionID
}

// =============================================================================
// Input
// =============================================================================

// HandleEvent routes one input event to the active state.
func (g *Game) HandleEvent(ev input.Event) {
	if ev.Kind == input.KindQuit || (ev.Kind == input.KindKey && ev.Key == input.KeyEscape) {
		g.logger.Info("quit requested", "state", g.state)
		g.Stop()
		return
	}

	switch g.state {
	case StateSplash:
		g.transition(StateWorldMap)

	case StateWorldMap:
		if ev.Kind == input.KindPointer {
			g.selectKingdom(ev.X, ev.Y)
		}

	case StateLevel:
		if d, ok := input.MovementOf(ev); ok {
			g.held.Press(d, g.clock.Now())
		}

	case StateChallenge:
		g.handleChallengeEvent(ev)
	}
}

func (g *Game) selectKingdom(x, y int) {
	site, ok := g.worldMap.SiteAt(x, y, g.width, g.height)
	if !ok || g.progress.IsComplete(site.Name) {
		return
	}
	k := g.registry.GetByName(site.Name)
	if k == nil {
		g.logger.Warn("map site without kingdom", "kingdom", site.Name)
		return
	}
	g.enterKingdom(k)
}

func (g *Game) enterKingdom(k *gamedata.KingdomDef) {
	g.kingdom = k
	g.quests = quest.NewSequencer(k.Curriculum())

	px, py := world.PlayerStart.Scale(g.width, g.height)
	g.player.SetPos(px, py)
	g.player.SetArena(world.Arena{Width: g.width, Height: g.height})
	g.boss.SetArt(g.art.Art(k.Boss, bossW, bossH, tcell.ColorRed))
	g.boss.SetPos(world.BossStart.Scale(g.width, g.height))
	g.held.Reset()
	g.meter.Snap(g.tracker.Fraction())

	g.logger.Info("kingdom entered", "kingdom", k.Name, "challenges", g.quests.Len())
	g.transition(StateLevel)
}

func (g *Game) handleChallengeEvent(ev input.Event) {
	now := g.clock.Now()

	if g.isHintRequest(ev) {
		g.requestHint()
		return
	}
	if ev.Kind != input.KindKey {
		return
	}

	verdict := g.widget.HandleEvent(ev, now)
	if verdict == challenge.VerdictNone {
		return
	}

	c := g.widget.Challenge()
	_, span := g.tracer.Start(g.ctx, "challenge.submit")
	span.SetAttributes(
		attribute.String("kingdom", g.kingdom.Name),
		attribute.String("quest", c.QuestName),
		attribute.Bool("correct", verdict == challenge.VerdictCorrect),
	)
	span.End()
	g.logger.Info("challenge submitted", "quest", c.QuestName, "verdict", verdict)

	if verdict == challenge.VerdictCorrect {
		g.startBattle(now)
	}
}

func (g *Game) isHintRequest(ev input.Event) bool {
	switch ev.Kind {
	case input.KindKey:
		return ev.Key == input.KeyF1
	case input.KindPointer:
		return g.hintButton().Contains(ev.X, ev.Y)
	}
	return false
}

func (g *Game) hintButton() world.Rect {
	hint := g.hintArt()
	return ui.HintButton(ui.ChallengeBox(g.width, g.height), hint.Width(), hint.Height())
}

func (g *Game) hintArt() assets.Art {
	return g.art.Art("hint", 3, 1, tcell.ColorDarkViolet)
}

func (g *Game) requestHint() {
	prompt := g.widget.Challenge().HintPrompt()

	ctx, span := g.tracer.Start(g.ctx, "assistant.launch")
	defer span.End()

	err := g.assistant.Launch(ctx, prompt)
	span.SetAttributes(attribute.Bool("launched", err == nil))
	switch {
	case err == nil:
		g.logger.Info("assistant launched")
	case errors.Is(err, assistant.ErrAlreadyRunning):
		g.logger.Debug("assistant already running")
	default:
		span.RecordError(err)
		g.logger.Warn("hint unavailable", "err", err)
		g.showMessage("No hint available")
	}
}

func (g *Game) showMessage(msg string) {
	g.message = msg
	g.messageAt = g.clock.Now()
}

// =============================================================================
// Update
// =============================================================================

// Update advances the active state to now.
func (g *Game) Update(now time.Time) {
	var dt time.Duration
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now
	g.now = now

	g.tracker.Update(now)
	if g.message != "" && now.Sub(g.messageAt) >= messageDuration {
		g.message = ""
	}

	switch g.state {
	case StateWorldMap:
		g.layoutMap()

	case StateLevel:
		g.player.SetArena(world.Arena{Width: g.width, Height: g.height})
		g.player.SetDirection(g.held.Vector(now))
		g.level.Update(now, dt)
		g.meter.Update(g.tracker.Fraction())
		if g.player.Bounds().Intersects(g.boss.Bounds()) && !g.quests.AllComplete() {
			g.startChallenge(now)
		}

	case StateChallenge:
		g.widget.Update(now)
		g.meter.Update(g.tracker.Fraction())

	case StateBattle:
		g.level.Update(now, dt)
		g.meter.Update(g.tracker.Fraction())
		for _, ev := range g.battle.Update(now) {
			g.handleBattleEvent(ev)
		}
	}
}

func (g *Game) layoutMap() {
	for _, s := range g.worldMap.Sites {
		icon := g.icons[s.Name]
		icon.X, icon.Y = s.Icon.Scale(g.width, g.height)
		icon.Cleared = g.progress.IsComplete(s.Name)
	}
	g.playerIcon.X, g.playerIcon.Y = ui.PlayerMapIcon().Scale(g.width, g.height)
}

func (g *Game) startChallenge(now time.Time) {
	c, ok := g.quests.Current()
	if !ok {
		return
	}
	g.held.Reset()
	g.player.SetDirection(0, 0)
	g.widget = challenge.New(c, now)
	g.logger.Debug("challenge started", "quest", c.QuestName)
	g.transition(StateChallenge)
}

func (g *Game) startBattle(now time.Time) {
	_, span := g.tracer.Start(g.ctx, "battle.start")
	span.SetAttributes(
		attribute.String("kingdom", g.kingdom.Name),
		attribute.Int("quest_index", g.quests.Index()),
	)
	span.End()

	g.battle = battle.NewSequencer(battle.Encounter{
		Attacker: g.player,
		Target:   g.boss,
		Bounds:   world.Rect{Width: g.width, Height: g.height},
		Weapon:   g.art.Art("weapon", 2, 1, tcell.ColorAqua),
		FPS:      g.fps,
	}, g.tracker, g.quests, now)
	g.widget = nil
	g.transition(StateBattle)
}

func (g *Game) handleBattleEvent(ev battle.Event) {
	switch ev.Kind {
	case battle.EventVictory:
		_, span := g.tracer.Start(g.ctx, "battle.victory")
		span.SetAttributes(
			attribute.String("kingdom", g.kingdom.Name),
			attribute.Int("reward", ev.Reward),
			attribute.Int("level", g.tracker.Level),
			attribute.Bool("leveled_up", ev.LeveledUp),
		)
		span.End()
		g.logger.Info("battle won", "reward", ev.Reward, "level", g.tracker.Level, "leveled_up", ev.LeveledUp)

	case battle.EventResolved:
		g.finishBattle()

	default:
		g.logger.Debug("battle event", "event", ev.Kind)
	}
}

func (g *Game) finishBattle() {
	g.battle = nil
	if !g.quests.AllComplete() {
		g.transition(StateLevel)
		return
	}

	g.progress.Complete(g.kingdom.Name)
	g.logger.Info("kingdom cleared", "kingdom", g.kingdom.Name, "cleared", g.progress.Cleared())
	g.transition(StateWorldMap)
	if g.progress.AllComplete() {
		g.transition(StateGameOver)
	}
}

func (g *Game) transition(to State) {
	from := g.state
	g.state = to

	attrs := []attribute.KeyValue{
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	}
	if g.kingdom != nil {
		attrs = append(attrs, attribute.String("kingdom", g.kingdom.Name))
	}
	_, span := g.tracer.Start(g.ctx, "state.transition", trace.WithAttributes(attrs...))
	span.End()

	g.logger.Debug("state.transition", "from", from, "to", to)
	if to == StateWorldMap {
		g.layoutMap()
	}
}

// =============================================================================
// Render
// =============================================================================

// Render draws the current state. It does not change game state.
func (g *Game) Render(c ui.Canvas) {
	r := ui.NewRenderer(c, g.now)

	switch g.state {
	case StateSplash:
		r.Splash(g.art.Art("splash", 40, 6, tcell.ColorGold))

	case StateWorldMap:
		r.WorldMap(g.worldMap, g.progress.IsComplete, g.mapScene)

	case StateLevel, StateChallenge, StateBattle:
		r.Level(g.kingdom.BackgroundColor(), g.level)
		r.HUD(ui.NewHUD(g.tracker, g.quests, g.meter.Value()))
		switch g.state {
		case StateChallenge:
			r.Challenge(g.widget, g.hintArt())
		case StateBattle:
			r.Battle(g.battle.Stage(), g.battle.Projectile())
		}

	case StateGameOver:
		r.GameOver()
	}

	r.Message(g.message)
}
