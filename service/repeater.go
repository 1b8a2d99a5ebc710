package service

import (
	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/google/uuid"
)

// repeater turns a held direction into moves at a fixed cadence.
type repeater struct {
	game   *Game
	held   maze.Direction
	cancel func()
}

func newRepeater(g *Game) *repeater {
	return &repeater{game: g}
}

func (r *repeater) hold(dir maze.Direction) {
	g := r.game
	if g.session.Status != Running || !dir.Valid() {
		return
	}
	if r.held == dir && r.cancel != nil {
		return
	}

	r.stop()
	r.held = dir
	g.AttemptMove(dir)
	// The first step may have finished the game.
	if g.session.Status != Running {
		r.held = maze.NoDirection
		return
	}

	id := g.session.ID
	r.cancel = g.cfg.Clock.Every(g.cfg.RepeatDelay, func() { r.step(id, dir) })
}

func (r *repeater) step(id uuid.UUID, dir maze.Direction) {
	if r.game.session.ID != id || r.held != dir {
		return
	}
	r.game.AttemptMove(dir)
}

func (r *repeater) release(dir maze.Direction) {
	if dir != r.held {
		return
	}
	r.stop()
}

func (r *repeater) stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.held = maze.NoDirection
}
