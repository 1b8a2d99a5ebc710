package service

import (
	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/beka-birhanu/vinom-maze-gate/service/i"
)

// Observers fans every event out to each observer in order.
type Observers []i.Observer

func (o Observers) OnGridChanged(grid *maze.Grid) {
	for _, ob := range o {
		ob.OnGridChanged(grid)
	}
}

func (o Observers) OnPlayerMoved(pos maze.Position) {
	for _, ob := range o {
		ob.OnPlayerMoved(pos)
	}
}

func (o Observers) OnTick(secondsRemaining int) {
	for _, ob := range o {
		ob.OnTick(secondsRemaining)
	}
}

func (o Observers) OnFinished(won bool) {
	for _, ob := range o {
		ob.OnFinished(won)
	}
}
