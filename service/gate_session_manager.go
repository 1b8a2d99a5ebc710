package service

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/beka-birhanu/vinom-maze-gate/service/i"
	"github.com/google/uuid"
)

const defaultEventBuffer = 64

// GateSessionManager owns the single gate session and serializes every
// command, tick and input repeat through one Loop.
type GateSessionManager struct {
	loop        *Loop
	game        *Game
	broadcaster *Broadcaster
	logger      i.Logger
}

// Config configures a GateSessionManager. Game.Clock and Game.Observer are
// replaced by the manager's loop and observers.
type Config struct {
	Game        GameConfig
	Observers   []i.Observer // Notified on the loop goroutine, before subscribers.
	EventBuffer int          // Per-subscriber event buffer.
	Logger      i.Logger
}

// NewGateSessionManager validates the game settings and wires the loop,
// the game and the broadcaster together. Call Run to start processing.
func NewGateSessionManager(c *Config) (*GateSessionManager, error) {
	logger := c.Logger
	if logger == nil {
		logger = discardLogger{}
	}
	buffer := c.EventBuffer
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}

	gsm := &GateSessionManager{
		loop:   NewLoop(buffer),
		logger: logger,
	}

	gameCfg := c.Game
	gameCfg.Clock = gsm.loop
	if gameCfg.Logger == nil {
		gameCfg.Logger = logger
	}
	gsm.broadcaster = NewBroadcaster(buffer, gsm.sessionID, logger)
	observers := make(Observers, 0, len(c.Observers)+1)
	observers = append(observers, c.Observers...)
	gameCfg.Observer = append(observers, gsm.broadcaster)

	game, err := NewGame(&gameCfg)
	if err != nil {
		return nil, err
	}
	gsm.game = game
	return gsm, nil
}

func (g *GateSessionManager) sessionID() uuid.UUID {
	return g.game.SessionID()
}

// Run processes events until ctx is done or Stop is called.
func (g *GateSessionManager) Run(ctx context.Context) {
	g.logger.Info("gate session manager running")
	g.loop.Run(ctx)
	g.logger.Info("gate session manager stopped")
}

// Stop halts the loop and every pending tick or repeat.
func (g *GateSessionManager) Stop() {
	g.loop.Stop()
}

// StartGame discards any current game and starts a fresh one.
func (g *GateSessionManager) StartGame(ctx context.Context) error {
	var startErr error
	if err := g.loop.Do(ctx, func() { startErr = g.game.StartGame() }); err != nil {
		return err
	}
	if startErr != nil {
		g.logger.Error(fmt.Sprintf("starting game: %s", startErr))
	}
	return startErr
}

// AttemptMove tries one step and reports whether it was accepted.
func (g *GateSessionManager) AttemptMove(ctx context.Context, dir maze.Direction) (bool, error) {
	var accepted bool
	err := g.loop.Do(ctx, func() { accepted = g.game.AttemptMove(dir) })
	return accepted, err
}

// HoldDirection starts repeating moves in dir until released.
func (g *GateSessionManager) HoldDirection(ctx context.Context, dir maze.Direction) error {
	return g.loop.Do(ctx, func() { g.game.HoldDirection(dir) })
}

// ReleaseDirection stops the repeat started by HoldDirection.
func (g *GateSessionManager) ReleaseDirection(ctx context.Context, dir maze.Direction) error {
	return g.loop.Do(ctx, func() { g.game.ReleaseDirection(dir) })
}

// Snapshot returns a copy of the current session.
func (g *GateSessionManager) Snapshot(ctx context.Context) (Session, error) {
	var s Session
	err := g.loop.Do(ctx, func() { s = g.game.Snapshot() })
	return s, err
}

// Watch subscribes to events and returns the session state they start from.
// No event is lost or repeated between the snapshot and the first event.
func (g *GateSessionManager) Watch(ctx context.Context) (Session, <-chan Event, func(), error) {
	var (
		s      Session
		events <-chan Event
		cancel func()
	)
	err := g.loop.Do(ctx, func() {
		s = g.game.Snapshot()
		events, cancel = g.broadcaster.Subscribe()
	})
	if err != nil {
		if cancel != nil {
			cancel()
		}
		return Session{}, nil, nil, err
	}
	return s, events, cancel, nil
}

// TimeBudget returns the configured countdown start.
func (g *GateSessionManager) TimeBudget() int {
	return g.game.TimeBudget()
}
