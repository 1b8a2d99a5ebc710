// Command mazegate-tui plays the maze gate in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/beka-birhanu/vinom-maze-gate/config"
	"github.com/beka-birhanu/vinom-maze-gate/service"
	"github.com/beka-birhanu/vinom-maze-gate/service/i"
	"github.com/beka-birhanu/vinom-maze-gate/tui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	// The screen owns stdout, so logs go to a file.
	logPath := filepath.Join(os.TempDir(), "mazegate-tui.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	tuiLogger, err := logger.New("TUI", config.ColorPurple, logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating logger: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	renderer := tui.NewRenderer(screen, config.Envs.TimeBudget)
	manager, err := service.NewGateSessionManager(&service.Config{
		Game: service.GameConfig{
			MazeSize:    config.Envs.MazeSize,
			Decoys:      config.Envs.MazeDecoys,
			Seed:        config.Envs.MazeSeed,
			TimeBudget:  config.Envs.TimeBudget,
			TickPeriod:  config.Envs.TickPeriod(),
			RepeatDelay: config.Envs.MoveRepeatDelay(),
		},
		Observers:   []i.Observer{renderer},
		EventBuffer: config.Envs.EventBufferSize,
		Logger:      tuiLogger,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Creating gate session manager: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		manager.Run(ctx)
	}()

	run(ctx, screen, renderer, manager, tuiLogger)

	cancel()
	<-done
	screen.Fini()
}

func run(ctx context.Context, screen tcell.Screen, renderer *tui.Renderer, manager *service.GateSessionManager, log i.Logger) {
	renderer.Draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			renderer.Draw()
		case *tcell.EventKey:
			cmd := tui.TranslateEvent(ev)
			switch cmd.Kind {
			case tui.CommandQuit:
				return
			case tui.CommandStart:
				if err := manager.StartGame(ctx); err != nil {
					log.Error(fmt.Sprintf("starting game: %v", err))
				}
			case tui.CommandMove:
				// Terminals repeat held keys themselves, so each key event is one step.
				if _, err := manager.AttemptMove(ctx, cmd.Dir); err != nil {
					log.Error(fmt.Sprintf("moving %s: %v", cmd.Dir, err))
				}
			case tui.CommandHint:
				renderer.ToggleHint()
			}
		}
	}
}
