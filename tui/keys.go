package tui

import (
	"unicode"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/gdamore/tcell/v2"
)

// CommandKind is what a key press asks the front end to do.
type CommandKind uint8

// Command kinds.
const (
	CommandNone CommandKind = iota
	CommandMove
	CommandStart
	CommandHint
	CommandQuit
)

// Command is a translated key press.
type Command struct {
	Kind CommandKind
	Dir  maze.Direction
}

// TranslateEvent maps a tcell key event to a command.
func TranslateEvent(ev *tcell.EventKey) Command {
	return Translate(ev.Key(), ev.Rune())
}

// Translate maps a key, and its rune for tcell.KeyRune, to a command.
func Translate(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyUp:
		return Command{Kind: CommandMove, Dir: maze.Up}
	case tcell.KeyDown:
		return Command{Kind: CommandMove, Dir: maze.Down}
	case tcell.KeyLeft:
		return Command{Kind: CommandMove, Dir: maze.Left}
	case tcell.KeyRight:
		return Command{Kind: CommandMove, Dir: maze.Right}
	case tcell.KeyEnter:
		return Command{Kind: CommandStart}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CommandQuit}
	case tcell.KeyRune:
	default:
		return Command{}
	}

	switch unicode.ToLower(r) {
	case 'w':
		return Command{Kind: CommandMove, Dir: maze.Up}
	case 's':
		return Command{Kind: CommandMove, Dir: maze.Down}
	case 'a':
		return Command{Kind: CommandMove, Dir: maze.Left}
	case 'd':
		return Command{Kind: CommandMove, Dir: maze.Right}
	case 'r':
		return Command{Kind: CommandStart}
	case 'h':
		return Command{Kind: CommandHint}
	case 'q':
		return Command{Kind: CommandQuit}
	}
	return Command{}
}
