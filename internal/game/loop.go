package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/codekingdoms/internal/ui"
)

// Screen is the terminal the loop reads events from and draws on.
type Screen interface {
	ui.Canvas
	PollEvent() tcell.Event
	Clear()
	Show()
	Sync()
}

// Run executes the fixed-rate main loop until the player quits or ctx is
// cancelled. Each iteration waits for the frame ticker, drains pending
// events in order, updates, then renders.
func (g *Game) Run(ctx context.Context, screen Screen) error {
	g.ctx = ctx
	_, initSpan := g.tracer.Start(ctx, "game.init")
	g.Resize(screen.Size())
	initSpan.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("kingdoms", g.registry.Count()),
		attribute.Int("fps", g.fps),
		attribute.Int("screen.width", g.width),
		attribute.Int("screen.height", g.height),
	)
	initSpan.End()

	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.fps))
	defer ticker.Stop()
	defer g.shutdown()

	for g.running {
		select {
		case <-ctx.Done():
			g.logger.Info("context cancelled", "err", ctx.Err())
			g.Stop()
			continue
		case <-ticker.C:
		}

		g.drainEvents(screen, events)
		if !g.running {
			break
		}

		g.Update(g.clock.Now())
		screen.Clear()
		g.Render(screen)
		screen.Show()
	}
	return nil
}

// pollEvents forwards terminal events until the screen is closed or the
// loop is done. It never touches game state.
func pollEvents(screen Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) drainEvents(screen Screen, events <-chan tcell.Event) {
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				g.Resize(screen.Size())
				continue
			}
			if e, ok := g.translator.Translate(ev); ok {
				g.HandleEvent(e)
			}
		default:
			return
		}
	}
}

func (g *Game) shutdown() {
	if err := g.assistant.TerminateAndWait(); err != nil {
		g.logger.Warn("assistant shutdown", "err", err)
	}
	g.logger.Info("game stopped", "state", g.state, "level", g.tracker.Level, "cleared", g.progress.Cleared())
}
