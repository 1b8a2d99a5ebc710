package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Config controls maze generation.
type Config struct {
	Size   int   // Odd side length, at least 5.
	Decoys int   // Extra interior cells opened after carving.
	Seed   int64 // 0 seeds from the wall clock.
}

// carve steps between nodes of the odd sublattice.
var carveSteps = [4]Position{{X: 0, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: 0}}

type frame struct {
	at   Position
	dirs [4]Position
	next int
}

// Generate returns a perfect maze carved from Start, spliced onto Goal and
// optionally seeded with decoy openings. Start always reaches Goal.
func Generate(cfg Config) (*Grid, error) {
	if cfg.Decoys < 0 {
		return nil, fmt.Errorf("%w: decoys must not be negative, got %d", ErrInvalidConfiguration, cfg.Decoys)
	}
	g, err := NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	carve(g, g.Start(), rng)
	spliceGoal(g, rng)
	scatterDecoys(g, cfg.Decoys, rng)
	return g, nil
}

// carve runs an iterative recursive backtracker. Each frame keeps its own
// shuffled direction order so backtracking resumes where it left off.
func carve(g *Grid, start Position, rng *rand.Rand) {
	g.set(start, Open)
	stack := []*frame{newFrame(start, rng)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		n := top.at.Add(d)
		if !g.interior(n) || g.At(n) != Wall {
			continue
		}
		g.set(top.at.Add(Position{X: d.X / 2, Y: d.Y / 2}), Open)
		g.set(n, Open)
		stack = append(stack, newFrame(n, rng))
	}
}

func newFrame(at Position, rng *rand.Rand) *frame {
	f := &frame{at: at, dirs: carveSteps}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// spliceGoal force-opens Goal and one of the cells above or left of it.
func spliceGoal(g *Grid, rng *rand.Rand) {
	goal := g.Goal()
	g.set(goal, Open)
	if rng.Intn(2) == 0 {
		g.set(goal.Add(Position{X: 0, Y: -1}), Open)
	} else {
		g.set(goal.Add(Position{X: -1, Y: 0}), Open)
	}
}

func scatterDecoys(g *Grid, n int, rng *rand.Rand) {
	span := g.size - 2
	for i := 0; i < n; i++ {
		g.set(Position{X: 1 + rng.Intn(span), Y: 1 + rng.Intn(span)}, Open)
	}
}

func (g *Grid) interior(p Position) bool {
	return p.X >= 1 && p.X <= g.size-2 && p.Y >= 1 && p.Y <= g.size-2
}
