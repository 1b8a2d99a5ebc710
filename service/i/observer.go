package i

import (
	"time"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
)

// Observer receives game session events. Calls are delivered serially.
type Observer interface {
	// OnGridChanged fires once per new game.
	OnGridChanged(grid *maze.Grid)

	// OnPlayerMoved fires on every accepted move.
	OnPlayerMoved(pos maze.Position)

	// OnTick fires once per clock period while the game is running.
	OnTick(secondsRemaining int)

	// OnFinished fires exactly once per session.
	OnFinished(won bool)
}

// Clock schedules periodic callbacks.
type Clock interface {
	// Every calls fn once per period d until the returned cancel func is called.
	// Cancel is idempotent and takes effect immediately.
	Every(d time.Duration, fn func()) (cancel func())
}

// Logger is the logging surface used across the gate.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
