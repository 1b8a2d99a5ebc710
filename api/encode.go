package api

import (
	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/beka-birhanu/vinom-maze-gate/service"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"
)

func encodePosition(p maze.Position) map[string]any {
	return map[string]any{"x": p.X, "y": p.Y}
}

func encodeID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func encodeRows(g *maze.Grid) []any {
	rows := g.Rows()
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

// encodeSession renders a session snapshot as a protobuf Struct.
func encodeSession(s service.Session, extra map[string]any) (*structpb.Struct, error) {
	m := map[string]any{
		"kind":           "snapshot",
		"session_id":     encodeID(s.ID),
		"status":         s.Status.String(),
		"time_remaining": s.TimeRemaining,
		"won":            s.Won,
		"player":         encodePosition(s.Player),
	}
	if s.Grid != nil {
		m["size"] = s.Grid.Size()
		m["goal"] = encodePosition(s.Grid.Goal())
		m["rows"] = encodeRows(s.Grid)
	}
	for k, v := range extra {
		m[k] = v
	}
	return structpb.NewStruct(m)
}

// encodeEvent renders one session event as a protobuf Struct.
func encodeEvent(e service.Event) (*structpb.Struct, error) {
	m := map[string]any{
		"kind":       e.Kind.String(),
		"session_id": encodeID(e.SessionID),
	}
	switch e.Kind {
	case service.EventGrid:
		if e.Grid != nil {
			m["size"] = e.Grid.Size()
			m["start"] = encodePosition(e.Grid.Start())
			m["goal"] = encodePosition(e.Grid.Goal())
			m["rows"] = encodeRows(e.Grid)
		}
	case service.EventMoved:
		m["player"] = encodePosition(e.Position)
	case service.EventTick:
		m["time_remaining"] = e.Remaining
	case service.EventFinished:
		m["won"] = e.Won
	}
	return structpb.NewStruct(m)
}
