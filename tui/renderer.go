// Package tui draws the gate session on a terminal and maps keys to commands.
package tui

import (
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/gdamore/tcell/v2"
)

// Screen is the subset of tcell.Screen the renderer draws with.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

const (
	originX  = 2
	originY  = 2
	barWidth = 24
)

const (
	phaseIdle = iota
	phaseRunning
	phaseWon
	phaseLost
)

var (
	styleBase   = tcell.StyleDefault
	styleTitle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x7e, 0xfc, 0xff)).Bold(true)
	styleWall   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x00, 0xf2, 0xff))
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleGoal   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleWon    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLost   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer is an Observer that redraws the maze on every session event.
// It is safe to call from the game loop and the input goroutine at once.
type Renderer struct {
	mu        sync.Mutex
	screen    Screen
	budget    int
	grid      *maze.Grid
	player    maze.Position
	remaining int
	phase     int
	hint      bool
	path      map[maze.Position]bool
}

// NewRenderer creates a renderer for games with the given countdown budget.
func NewRenderer(screen Screen, budget int) *Renderer {
	return &Renderer{screen: screen, budget: budget}
}

func (r *Renderer) OnGridChanged(grid *maze.Grid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grid = grid
	r.player = grid.Start()
	r.remaining = r.budget
	r.phase = phaseRunning
	r.updatePath()
	r.draw()
}

func (r *Renderer) OnPlayerMoved(pos maze.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.player = pos
	r.updatePath()
	r.draw()
}

func (r *Renderer) OnTick(secondsRemaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining = secondsRemaining
	r.draw()
}

func (r *Renderer) OnFinished(won bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if won {
		r.phase = phaseWon
	} else {
		r.phase = phaseLost
	}
	r.draw()
}

// ToggleHint shows or hides the shortest path to the goal.
func (r *Renderer) ToggleHint() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hint = !r.hint
	r.updatePath()
	r.draw()
}

// Draw repaints the whole screen.
func (r *Renderer) Draw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draw()
}

func (r *Renderer) updatePath() {
	r.path = nil
	if !r.hint || r.grid == nil {
		return
	}
	r.path = make(map[maze.Position]bool)
	for _, p := range maze.Solve(r.grid, r.player, r.grid.Goal()) {
		r.path[p] = true
	}
}

func (r *Renderer) draw() {
	r.screen.Clear()
	r.text(originX, 0, "VINOM // MAZE GATE", styleTitle)

	if r.grid == nil {
		r.text(originX, originY, "Solve the maze before the timer expires to proceed.", styleBase)
		r.text(originX, originY+2, "press ENTER to solve the gate, q to quit", styleBase)
		r.screen.Show()
		return
	}

	size := r.grid.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := maze.Position{X: x, Y: y}
			ch, style := ' ', styleBase
			switch {
			case p == r.player:
				ch, style = '@', stylePlayer
			case p == r.grid.Goal():
				ch, style = '$', styleGoal
			case r.grid.At(p) == maze.Wall:
				ch, style = '█', styleWall
			case r.path[p]:
				ch, style = '·', styleHint
			}
			r.screen.SetContent(originX+2*x, originY+y, ch, nil, style)
			fill := ch
			if ch != '█' {
				fill = ' '
			}
			r.screen.SetContent(originX+2*x+1, originY+y, fill, nil, style)
		}
	}

	line := originY + size + 1
	r.text(originX, line, fmt.Sprintf("TIME %2ds ", r.remaining), styleBase)
	r.text(originX+9, line, r.progressBar(), styleWall)

	switch r.phase {
	case phaseWon:
		r.text(originX, line+2, "ACCESS GRANTED  press ENTER to play again", styleWon)
	case phaseLost:
		r.text(originX, line+2, "ACCESS DENIED  press ENTER to try again", styleLost)
	default:
		r.text(originX, line+2, "arrows/WASD move  h hint  r restart  q quit", styleBase)
	}
	r.screen.Show()
}

func (r *Renderer) progressBar() string {
	filled := 0
	if r.budget > 0 && r.remaining > 0 {
		filled = r.remaining * barWidth / r.budget
	}
	bar := make([]rune, barWidth)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
