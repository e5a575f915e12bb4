package battle

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/progression"
	"github.com/samdwyer/codekingdoms/internal/quest"
	"github.com/samdwyer/codekingdoms/internal/world"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type point struct{ x, y float64 }

func (p point) Center() (float64, float64) { return p.x, p.y }

type fakeTarget struct {
	point
	hits []time.Time
}

func (f *fakeTarget) Hit(now time.Time) { f.hits = append(f.hits, now) }

type fixture struct {
	seq     *Sequencer
	target  *fakeTarget
	tracker *progression.Tracker
	quests  *quest.Sequencer
}

func newFixture(bounds world.Rect, from, to point) fixture {
	tracker := progression.NewTracker()
	quests := quest.NewSequencer(quest.NewCurriculum(
		quest.Challenge{QuestName: "one", XPReward: 50},
		quest.Challenge{QuestName: "two", XPReward: 75},
	))
	target := &fakeTarget{point: to}
	enc := Encounter{
		Attacker: from,
		Target:   target,
		Bounds:   bounds,
		Weapon:   assets.Art{Lines: []string{"=>"}, Color: tcell.ColorAqua},
		FPS:      60,
	}
	return fixture{
		seq:     NewSequencer(enc, tracker, quests, epoch),
		target:  target,
		tracker: tracker,
		quests:  quests,
	}
}

func defaultFixture() fixture {
	return newFixture(world.Rect{Width: 80, Height: 24}, point{8, 18}, point{72, 18})
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage    Stage
		expected string
	}{
		{StageForging, "forging"},
		{StageAttacking, "attacking"},
		{StageImpact, "impact"},
		{StageVictory, "victory"},
		{StageResolved, "resolved"},
		{Stage(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.expected {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.expected)
		}
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventImpact.String(); got != "impact" {
		t.Errorf("EventImpact.String() = %q, want %q", got, "impact")
	}
	if got := EventKind(42).String(); got != "unknown" {
		t.Errorf("EventKind(42).String() = %q, want %q", got, "unknown")
	}
}

func TestForgingWaits(t *testing.T) {
	f := defaultFixture()

	if events := f.seq.Update(epoch.Add(499 * time.Millisecond)); len(events) != 0 {
		t.Errorf("Update() before 500ms = %v, want no events", kinds(events))
	}
	if f.seq.Stage() != StageForging {
		t.Errorf("Stage() = %v, want forging", f.seq.Stage())
	}
	if f.seq.Projectile() != nil {
		t.Error("Projectile() should be nil while forging")
	}
}

func TestForgingSpawnsOneProjectile(t *testing.T) {
	f := defaultFixture()
	at := epoch.Add(ForgingDuration)

	events := f.seq.Update(at)
	if len(events) != 1 || events[0].Kind != EventProjectileSpawned {
		t.Fatalf("Update() at 500ms = %v, want [projectile_spawned]", kinds(events))
	}
	if f.seq.Stage() != StageAttacking {
		t.Errorf("Stage() = %v, want attacking", f.seq.Stage())
	}
	if !f.seq.StageStart().Equal(at) {
		t.Errorf("StageStart() = %v, want %v", f.seq.StageStart(), at)
	}

	p := f.seq.Projectile()
	if p == nil {
		t.Fatal("Projectile() = nil after spawning")
	}
	vx, vy := p.Velocity()
	if math.Abs(math.Hypot(vx, vy)-ProjectileSpeed) > 1e-9 {
		t.Errorf("projectile speed = %v, want %v", math.Hypot(vx, vy), ProjectileSpeed)
	}
	if vx <= 0 || vy != 0 {
		t.Errorf("velocity = (%v, %v), want aimed right", vx, vy)
	}

	// A second update in the same frame must not spawn another one.
	events = f.seq.Update(at)
	for _, e := range events {
		if e.Kind == EventProjectileSpawned {
			t.Error("second update spawned another projectile")
		}
	}
}

func TestAttackTimesOut(t *testing.T) {
	f := defaultFixture()
	f.seq.Update(epoch.Add(ForgingDuration))

	events := f.seq.Update(epoch.Add(ForgingDuration + AttackingTimeout))
	got := kinds(events)
	if len(got) != 2 || got[0] != EventProjectileRemoved || got[1] != EventImpact {
		t.Fatalf("Update() at timeout = %v, want [projectile_removed impact]", got)
	}
	if f.seq.Projectile() != nil {
		t.Error("projectile should be removed when the stage advances")
	}
	if len(f.target.hits) != 1 {
		t.Errorf("target hit %d times, want 1", len(f.target.hits))
	}
}

func TestProjectileLeavingBoundsEndsAttack(t *testing.T) {
	// Tiny arena: the projectile leaves within a few frames.
	f := newFixture(world.Rect{Width: 10, Height: 5}, point{5, 2}, point{50, 2})
	f.seq.Update(epoch.Add(ForgingDuration))

	now := epoch.Add(ForgingDuration)
	for i := 0; i < 30 && f.seq.Stage() == StageAttacking; i++ {
		now = now.Add(16 * time.Millisecond)
		f.seq.Update(now)
	}

	if f.seq.Stage() != StageImpact {
		t.Fatalf("Stage() = %v, want impact", f.seq.Stage())
	}
	if now.Sub(epoch.Add(ForgingDuration)) >= AttackingTimeout {
		t.Error("attack should end before the timeout")
	}
}

func TestFullSequencePaysOnce(t *testing.T) {
	f := defaultFixture()
	f.tracker.XP = 90

	now := epoch
	var all []Event
	for i := 0; i < 400 && !f.seq.Resolved(); i++ {
		now = now.Add(16 * time.Millisecond)
		all = append(all, f.seq.Update(now)...)
	}

	if !f.seq.Resolved() {
		t.Fatalf("sequence did not resolve, stage %v", f.seq.Stage())
	}

	victories := 0
	for _, e := range all {
		if e.Kind == EventVictory {
			victories++
			if e.Reward != 50 || !e.LeveledUp {
				t.Errorf("victory event = %+v, want reward 50 with level-up", e)
			}
		}
	}
	if victories != 1 {
		t.Errorf("got %d victory events, want 1", victories)
	}

	if f.tracker.Level != 2 || f.tracker.XP != 40 || f.tracker.NextLevelXP != 150 {
		t.Errorf("tracker = %+v, want level 2 xp 40 next 150", f.tracker)
	}
	if f.quests.Index() != 1 {
		t.Errorf("quest index = %d, want 1", f.quests.Index())
	}

	// Resolved is terminal.
	if events := f.seq.Update(now.Add(time.Hour)); len(events) != 0 {
		t.Errorf("Update() after resolution = %v, want none", kinds(events))
	}
}

func TestStageTimings(t *testing.T) {
	f := defaultFixture()
	t0 := epoch.Add(ForgingDuration)
	f.seq.Update(t0)

	t1 := t0.Add(AttackingTimeout)
	f.seq.Update(t1)
	if f.seq.Stage() != StageImpact {
		t.Fatalf("Stage() = %v, want impact", f.seq.Stage())
	}

	f.seq.Update(t1.Add(ImpactDuration - time.Millisecond))
	if f.seq.Stage() != StageImpact {
		t.Errorf("left impact early")
	}

	t2 := t1.Add(ImpactDuration)
	f.seq.Update(t2)
	if f.seq.Stage() != StageVictory {
		t.Fatalf("Stage() = %v, want victory", f.seq.Stage())
	}

	f.seq.Update(t2.Add(VictoryDuration - time.Millisecond))
	if f.seq.Resolved() {
		t.Error("resolved before the victory banner finished")
	}
	f.seq.Update(t2.Add(VictoryDuration))
	if !f.seq.Resolved() {
		t.Error("not resolved after the victory banner")
	}
}

func TestProjectileMovesTowardTarget(t *testing.T) {
	p := NewProjectile(0, 0, 3, 4, 60, assets.Art{Lines: []string{"*"}})
	p.Update(epoch, time.Second/60)

	x, y := p.Position()
	// One frame at 60 fps covers a sixtieth of the speed along (0.6, 0.8).
	wantX := 0.6 * ProjectileSpeed / 60
	wantY := 0.8 * ProjectileSpeed / 60
	if math.Abs(x-wantX) > 1e-6 || math.Abs(y-wantY) > 1e-6 {
		t.Errorf("Position() = (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}
}

func TestProjectileStepsByElapsedTime(t *testing.T) {
	frame := time.Second / 60
	tests := []struct {
		name   string
		dts    []time.Duration
		frames float64
	}{
		{"no time", []time.Duration{0}, 0},
		{"dropped ticks", []time.Duration{3 * frame}, 3},
		{"half frames carry over", []time.Duration{frame / 2, frame / 2}, 1},
		{"short of a frame", []time.Duration{frame - time.Millisecond}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(0, 0, 10, 0, 60, assets.Art{Lines: []string{"*"}})
			for _, dt := range tt.dts {
				p.Update(epoch, dt)
			}
			x, _ := p.Position()
			want := tt.frames * ProjectileSpeed / 60
			if math.Abs(x-want) > 1e-6 {
				t.Errorf("x = %v, want %v", x, want)
			}
		})
	}
}

func TestProjectileWithCoincidentEndsStaysPut(t *testing.T) {
	p := NewProjectile(5, 5, 5, 5, 60, assets.Art{Lines: []string{"*"}})
	p.Update(epoch, time.Second)
	if x, y := p.Position(); x != 5 || y != 5 {
		t.Errorf("Position() = (%v, %v), want (5, 5)", x, y)
	}
}
