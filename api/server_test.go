package api

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/beka-birhanu/vinom-maze-gate/service"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func corridorFactory(maze.Config) (*maze.Grid, error) {
	return maze.ParseGrid([]string{
		"#####",
		"#...#",
		"###.#",
		"###.#",
		"#####",
	})
}

func newTestClient(t *testing.T) *GateClient {
	t.Helper()
	gsm, err := service.NewGateSessionManager(&service.Config{
		Game: service.GameConfig{
			MazeSize:    5,
			TimeBudget:  30,
			TickPeriod:  time.Hour,
			RepeatDelay: time.Hour,
			MazeFactory: corridorFactory,
		},
	})
	if err != nil {
		t.Fatalf("NewGateSessionManager returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	go gsm.Run(ctx)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	if err := RegisterNewGateServer(srv, gsm, nopLogger{}); err != nil {
		t.Fatalf("RegisterNewGateServer returned error: %v", err)
	}
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
		cancel()
	})
	return NewGateClient(conn)
}

func field(s *structpb.Struct, name string) *structpb.Value {
	return s.GetFields()[name]
}

func position(s *structpb.Struct, name string) maze.Position {
	p := field(s, name).GetStructValue()
	return maze.Position{
		X: int(field(p, "x").GetNumberValue()),
		Y: int(field(p, "y").GetNumberValue()),
	}
}

func TestStartGameReturnsRunningSnapshot(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	idle, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if got := field(idle, "status").GetStringValue(); got != "idle" {
		t.Errorf("Expected idle status, got %q", got)
	}

	snap, err := c.StartGame(ctx)
	if err != nil {
		t.Fatalf("StartGame returned error: %v", err)
	}
	if got := field(snap, "status").GetStringValue(); got != "running" {
		t.Errorf("Expected running status, got %q", got)
	}
	if got := field(snap, "time_remaining").GetNumberValue(); got != 30 {
		t.Errorf("Expected 30s remaining, got %v", got)
	}
	if got := position(snap, "player"); got != (maze.Position{X: 1, Y: 1}) {
		t.Errorf("Expected player at start, got %v", got)
	}
	if got := position(snap, "goal"); got != (maze.Position{X: 3, Y: 3}) {
		t.Errorf("Expected goal at (3,3), got %v", got)
	}
	if rows := field(snap, "rows").GetListValue().GetValues(); len(rows) != 5 || rows[1].GetStringValue() != "#...#" {
		t.Errorf("Expected grid rows in the snapshot, got %v", rows)
	}
	if field(snap, "session_id").GetStringValue() == "" {
		t.Error("Expected a session ID")
	}
}

func TestAttemptMove(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	_, _ = c.StartGame(ctx)

	rejected, err := c.AttemptMove(ctx, "up")
	if err != nil {
		t.Fatalf("AttemptMove returned error: %v", err)
	}
	if field(rejected, "accepted").GetBoolValue() {
		t.Error("Expected a move into the wall to be rejected")
	}

	accepted, err := c.AttemptMove(ctx, "ArrowRight")
	if err != nil {
		t.Fatalf("AttemptMove returned error: %v", err)
	}
	if !field(accepted, "accepted").GetBoolValue() || position(accepted, "player") != (maze.Position{X: 2, Y: 1}) {
		t.Errorf("Expected the player to step right, got %v", accepted)
	}
}

func TestInvalidDirectionIsInvalidArgument(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	for _, call := range []func(context.Context, string, ...grpc.CallOption) (*structpb.Struct, error){
		c.AttemptMove, c.HoldDirection, c.ReleaseDirection,
	} {
		_, err := call(ctx, "north")
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("Expected InvalidArgument, got %v", err)
		}
	}
}

func TestEventsStream(t *testing.T) {
	c := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := c.Events(ctx)
	if err != nil {
		t.Fatalf("Events returned error: %v", err)
	}
	first, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv returned error: %v", err)
	}
	if got := field(first, "kind").GetStringValue(); got != "snapshot" {
		t.Fatalf("Expected the stream to open with a snapshot, got %q", got)
	}

	if _, err := c.StartGame(ctx); err != nil {
		t.Fatalf("StartGame returned error: %v", err)
	}
	grid, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv returned error: %v", err)
	}
	if field(grid, "kind").GetStringValue() != "grid" || position(grid, "start") != (maze.Position{X: 1, Y: 1}) {
		t.Errorf("Expected a grid event, got %v", grid)
	}

	for _, dir := range []string{"right", "right", "down", "down"} {
		if _, err := c.AttemptMove(ctx, dir); err != nil {
			t.Fatalf("AttemptMove returned error: %v", err)
		}
	}
	var kinds []string
	for len(kinds) < 5 {
		msg, err := stream.Recv()
		if err != nil {
			t.Fatalf("Recv returned error: %v", err)
		}
		kinds = append(kinds, field(msg, "kind").GetStringValue())
		if field(msg, "kind").GetStringValue() == "finished" && !field(msg, "won").GetBoolValue() {
			t.Error("Expected a winning finish")
		}
	}
	want := []string{"moved", "moved", "moved", "moved", "finished"}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d: expected %q, got %q", i, want[i], kinds[i])
		}
	}
}

func TestHoldAndReleaseDirection(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	_, _ = c.StartGame(ctx)

	snap, err := c.HoldDirection(ctx, "d")
	if err != nil {
		t.Fatalf("HoldDirection returned error: %v", err)
	}
	if position(snap, "player") != (maze.Position{X: 2, Y: 1}) {
		t.Errorf("Expected holding to move immediately, got %v", position(snap, "player"))
	}
	if _, err := c.ReleaseDirection(ctx, "d"); err != nil {
		t.Errorf("ReleaseDirection returned error: %v", err)
	}
}

func TestRegisterNewGateServerValidates(t *testing.T) {
	if err := RegisterNewGateServer(grpc.NewServer(), nil, nopLogger{}); err == nil {
		t.Error("Expected an error without a session manager")
	}
}
