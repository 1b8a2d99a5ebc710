package tui

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/gdamore/tcell/v2"
)

type fakeScreen struct {
	cells map[[2]int]rune
	shown int
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: make(map[[2]int]rune)}
}

func (s *fakeScreen) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	s.cells[[2]int{x, y}] = primary
}

func (s *fakeScreen) Clear() { s.cells = make(map[[2]int]rune) }

func (s *fakeScreen) Show() { s.shown++ }

func (s *fakeScreen) at(x, y int) rune { return s.cells[[2]int{x, y}] }

func (s *fakeScreen) line(y int) string {
	var b strings.Builder
	for x := 0; x < 120; x++ {
		if r, ok := s.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func cellAt(s *fakeScreen, p maze.Position) rune {
	return s.at(originX+2*p.X, originY+p.Y)
}

func testGrid(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.ParseGrid([]string{
		"#####",
		"#...#",
		"###.#",
		"###.#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseGrid returned error: %v", err)
	}
	return g
}

func TestRendererIdleScreen(t *testing.T) {
	s := newFakeScreen()
	r := NewRenderer(s, 25)
	r.Draw()

	if !strings.Contains(s.line(originY+2), "press ENTER") {
		t.Errorf("Expected the idle prompt, got %q", s.line(originY+2))
	}
	if s.shown != 1 {
		t.Errorf("Expected one Show, got %d", s.shown)
	}
}

func TestRendererDrawsGridAndPlayer(t *testing.T) {
	s := newFakeScreen()
	r := NewRenderer(s, 20)
	g := testGrid(t)
	r.OnGridChanged(g)

	if got := cellAt(s, g.Start()); got != '@' {
		t.Errorf("Expected player glyph at start, got %q", got)
	}
	if got := cellAt(s, g.Goal()); got != '$' {
		t.Errorf("Expected goal glyph, got %q", got)
	}
	if got := cellAt(s, maze.Position{X: 0, Y: 0}); got != '█' {
		t.Errorf("Expected wall glyph, got %q", got)
	}
	if !strings.Contains(s.line(originY+6), "TIME 20s") {
		t.Errorf("Expected full countdown, got %q", s.line(originY+6))
	}

	r.OnPlayerMoved(maze.Position{X: 2, Y: 1})
	if cellAt(s, g.Start()) != ' ' || cellAt(s, maze.Position{X: 2, Y: 1}) != '@' {
		t.Error("Expected the player glyph to follow the move")
	}
}

func TestRendererCountdownAndProgress(t *testing.T) {
	s := newFakeScreen()
	r := NewRenderer(s, 4)
	r.OnGridChanged(testGrid(t))
	r.OnTick(1)

	line := s.line(originY + 6)
	if !strings.Contains(line, "TIME  1s") {
		t.Errorf("Expected one second left, got %q", line)
	}
	if filled := strings.Count(line, "█"); filled != barWidth/4 {
		t.Errorf("Expected %d filled bar cells, got %d", barWidth/4, filled)
	}
}

func TestRendererFinishMessages(t *testing.T) {
	for won, want := range map[bool]string{true: "ACCESS GRANTED", false: "ACCESS DENIED"} {
		s := newFakeScreen()
		r := NewRenderer(s, 4)
		r.OnGridChanged(testGrid(t))
		r.OnFinished(won)
		if got := s.line(originY + 8); !strings.Contains(got, want) {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestRendererHint(t *testing.T) {
	s := newFakeScreen()
	r := NewRenderer(s, 4)
	r.OnGridChanged(testGrid(t))

	r.ToggleHint()
	if got := cellAt(s, maze.Position{X: 3, Y: 2}); got != '·' {
		t.Errorf("Expected hint glyph on the path, got %q", got)
	}
	r.ToggleHint()
	if got := cellAt(s, maze.Position{X: 3, Y: 2}); got != ' ' {
		t.Errorf("Expected hint to be hidden, got %q", got)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Command
	}{
		{tcell.KeyUp, 0, Command{Kind: CommandMove, Dir: maze.Up}},
		{tcell.KeyDown, 0, Command{Kind: CommandMove, Dir: maze.Down}},
		{tcell.KeyLeft, 0, Command{Kind: CommandMove, Dir: maze.Left}},
		{tcell.KeyRight, 0, Command{Kind: CommandMove, Dir: maze.Right}},
		{tcell.KeyRune, 'W', Command{Kind: CommandMove, Dir: maze.Up}},
		{tcell.KeyRune, 's', Command{Kind: CommandMove, Dir: maze.Down}},
		{tcell.KeyRune, 'a', Command{Kind: CommandMove, Dir: maze.Left}},
		{tcell.KeyRune, 'd', Command{Kind: CommandMove, Dir: maze.Right}},
		{tcell.KeyEnter, 0, Command{Kind: CommandStart}},
		{tcell.KeyRune, 'r', Command{Kind: CommandStart}},
		{tcell.KeyRune, 'h', Command{Kind: CommandHint}},
		{tcell.KeyRune, 'q', Command{Kind: CommandQuit}},
		{tcell.KeyEscape, 0, Command{Kind: CommandQuit}},
		{tcell.KeyCtrlC, 0, Command{Kind: CommandQuit}},
		{tcell.KeyRune, 'x', Command{}},
		{tcell.KeyTab, 0, Command{}},
	}
	for _, tt := range tests {
		if got := Translate(tt.key, tt.r); got != tt.want {
			t.Errorf("Translate(%v, %q) = %+v, expected %+v", tt.key, tt.r, got, tt.want)
		}
	}
}
