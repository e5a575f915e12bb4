package game

import (
	"github.com/charmbracelet/log"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/assistant"
	"github.com/samdwyer/codekingdoms/internal/clock"
	"github.com/samdwyer/codekingdoms/internal/gamedata"
)

// Config holds game configuration and collaborators. Only Registry is
// required; everything else has a working default.
type Config struct {
	// Registry supplies the kingdoms and their curricula.
	Registry *gamedata.KingdomRegistry
	// Art supplies sprites. Missing art renders as placeholders.
	Art *assets.Provider
	// Assistant launches hint requests. Nil disables hints.
	Assistant *assistant.Launcher
	// Clock is the time source for the loop and all timers.
	Clock clock.Clock
	// Logger receives structured game logs.
	Logger *log.Logger

	// FPS is the fixed frame rate of the main loop.
	FPS int
	// SessionID tags the logs and spans of one run. Generated when empty.
	SessionID string
}
