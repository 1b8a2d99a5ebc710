package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/beka-birhanu/vinom-maze-gate/service/i"
	"github.com/google/uuid"
)

// Game-related errors.
var (
	ErrInvalidConfiguration = maze.ErrInvalidConfiguration
	ErrNoClock              = errors.New("game requires a clock")
)

// Game defaults.
const (
	DefaultMazeSize    = 33
	DefaultTimeBudget  = 25
	DefaultTickPeriod  = time.Second
	DefaultRepeatDelay = 110 * time.Millisecond
)

// Status is the lifecycle stage of a session.
type Status uint8

// Session statuses.
const (
	Idle Status = iota
	Running
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Session is the state of one game.
type Session struct {
	ID            uuid.UUID
	Status        Status
	TimeRemaining int
	Player        maze.Position
	Won           bool
	Grid          *maze.Grid
}

// MazeFactory builds the grid for a new game.
type MazeFactory func(maze.Config) (*maze.Grid, error)

// GameConfig holds the settings and collaborators of a Game.
type GameConfig struct {
	MazeSize    int
	Decoys      int
	Seed        int64
	TimeBudget  int           // Countdown start, in ticks.
	TickPeriod  time.Duration // Time between countdown ticks.
	RepeatDelay time.Duration // Cadence of held-direction moves.

	Clock       i.Clock
	MazeFactory MazeFactory
	Observer    i.Observer
	Logger      i.Logger
}

// Game is the gate's session controller. It is not safe for concurrent use;
// callers deliver events serially, see Loop.
type Game struct {
	cfg      GameConfig
	session  Session
	stopTick func()
	repeat   *repeater
	seeds    int64
}

// NewGame validates the configuration and returns an idle game.
func NewGame(c *GameConfig) (*Game, error) {
	cfg := *c
	if err := maze.ValidateSize(cfg.MazeSize); err != nil {
		return nil, err
	}
	if cfg.Decoys < 0 {
		return nil, fmt.Errorf("%w: decoys must not be negative, got %d", ErrInvalidConfiguration, cfg.Decoys)
	}
	if cfg.TimeBudget <= 0 {
		return nil, fmt.Errorf("%w: time budget must be positive, got %d", ErrInvalidConfiguration, cfg.TimeBudget)
	}
	if cfg.TickPeriod <= 0 || cfg.RepeatDelay <= 0 {
		return nil, fmt.Errorf("%w: tick period and repeat delay must be positive", ErrInvalidConfiguration)
	}
	if cfg.Clock == nil {
		return nil, ErrNoClock
	}
	if cfg.MazeFactory == nil {
		cfg.MazeFactory = maze.Generate
	}
	if cfg.Observer == nil {
		cfg.Observer = Observers(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger{}
	}

	g := &Game{cfg: cfg}
	g.repeat = newRepeater(g)
	return g, nil
}

// StartGame discards the current session, if any, and starts a new one.
// It is accepted in every state.
func (g *Game) StartGame() error {
	g.release()

	grid, err := g.cfg.MazeFactory(maze.Config{Size: g.cfg.MazeSize, Decoys: g.cfg.Decoys, Seed: g.nextSeed()})
	if err != nil {
		g.session = Session{}
		return fmt.Errorf("generating maze: %w", err)
	}

	id := uuid.New()
	g.session = Session{
		ID:            id,
		Status:        Running,
		TimeRemaining: g.cfg.TimeBudget,
		Player:        grid.Start(),
		Grid:          grid,
	}

	g.cfg.Observer.OnGridChanged(grid.Clone())
	g.stopTick = g.cfg.Clock.Every(g.cfg.TickPeriod, func() { g.tickSession(id) })
	g.cfg.Logger.Info(fmt.Sprintf("started session %s: size %d, budget %ds", id, grid.Size(), g.cfg.TimeBudget))
	return nil
}

// nextSeed derives a per-game seed from a fixed configured seed.
func (g *Game) nextSeed() int64 {
	if g.cfg.Seed == 0 {
		return 0
	}
	g.seeds++
	return g.cfg.Seed + g.seeds - 1
}

// Tick advances the countdown by one period.
func (g *Game) Tick() {
	if g.session.Status != Running {
		return
	}
	g.session.TimeRemaining--
	g.cfg.Observer.OnTick(g.session.TimeRemaining)
	if g.session.TimeRemaining <= 0 {
		g.finish(false)
	}
}

func (g *Game) tickSession(id uuid.UUID) {
	if g.session.ID != id {
		return
	}
	g.Tick()
}

// AttemptMove tries to step the player one cell in dir. Moves into walls or
// off the grid, and moves outside a running session, are ignored.
func (g *Game) AttemptMove(dir maze.Direction) bool {
	if g.session.Status != Running || !dir.Valid() {
		return false
	}
	next := g.session.Player.Add(dir.Delta())
	if !g.session.Grid.IsOpen(next) {
		return false
	}

	g.session.Player = next
	g.cfg.Observer.OnPlayerMoved(next)
	if next == g.session.Grid.Goal() {
		g.finish(true)
	}
	return true
}

// HoldDirection moves once in dir and keeps repeating until released.
func (g *Game) HoldDirection(dir maze.Direction) {
	g.repeat.hold(dir)
}

// ReleaseDirection stops a repeat started with the same direction.
func (g *Game) ReleaseDirection(dir maze.Direction) {
	g.repeat.release(dir)
}

// Snapshot returns a copy of the current session.
func (g *Game) Snapshot() Session {
	s := g.session
	if s.Grid != nil {
		s.Grid = s.Grid.Clone()
	}
	return s
}

// SessionID returns the ID of the current session, uuid.Nil before the first game.
func (g *Game) SessionID() uuid.UUID {
	return g.session.ID
}

// TimeBudget returns the configured countdown start.
func (g *Game) TimeBudget() int {
	return g.cfg.TimeBudget
}

func (g *Game) finish(won bool) {
	g.release()
	g.session.Status = Finished
	g.session.Won = won
	g.cfg.Observer.OnFinished(won)

	outcome := "lost"
	if won {
		outcome = "won"
	}
	g.cfg.Logger.Info(fmt.Sprintf("session %s %s with %ds left", g.session.ID, outcome, g.session.TimeRemaining))
}

// release cancels every recurring callback bound to the current session.
func (g *Game) release() {
	if g.stopTick != nil {
		g.stopTick()
		g.stopTick = nil
	}
	g.repeat.stop()
}

type discardLogger struct{}

func (discardLogger) Info(string)    {}
func (discardLogger) Warning(string) {}
func (discardLogger) Error(string)   {}
