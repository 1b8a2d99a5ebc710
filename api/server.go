package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/beka-birhanu/vinom-maze-gate/service"
	"github.com/beka-birhanu/vinom-maze-gate/service/i"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// SessionManager is the gate session the server exposes.
type SessionManager interface {
	StartGame(ctx context.Context) error
	AttemptMove(ctx context.Context, dir maze.Direction) (bool, error)
	HoldDirection(ctx context.Context, dir maze.Direction) error
	ReleaseDirection(ctx context.Context, dir maze.Direction) error
	Snapshot(ctx context.Context) (service.Session, error)
	Watch(ctx context.Context) (service.Session, <-chan service.Event, func(), error)
}

type Server struct {
	gateSessionManager SessionManager
	logger             i.Logger
}

// RegisterNewGateServer registers a Gate server backed by gsm.
func RegisterNewGateServer(gsr grpc.ServiceRegistrar, gsm SessionManager, logger i.Logger) error {
	if gsm == nil {
		return errors.New("gate server requires a session manager")
	}
	if logger == nil {
		return errors.New("gate server requires a logger")
	}
	RegisterGateServer(gsr, &Server{gateSessionManager: gsm, logger: logger})
	return nil
}

func (s *Server) StartGame(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	if err := s.gateSessionManager.StartGame(ctx); err != nil {
		return nil, toStatus(err)
	}
	return s.snapshot(ctx, nil)
}

func (s *Server) AttemptMove(ctx context.Context, r *wrapperspb.StringValue) (*structpb.Struct, error) {
	dir, err := maze.ParseDirection(r.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	accepted, err := s.gateSessionManager.AttemptMove(ctx, dir)
	if err != nil {
		return nil, toStatus(err)
	}
	return s.snapshot(ctx, map[string]any{"accepted": accepted})
}

func (s *Server) HoldDirection(ctx context.Context, r *wrapperspb.StringValue) (*structpb.Struct, error) {
	dir, err := maze.ParseDirection(r.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.gateSessionManager.HoldDirection(ctx, dir); err != nil {
		return nil, toStatus(err)
	}
	return s.snapshot(ctx, nil)
}

func (s *Server) ReleaseDirection(ctx context.Context, r *wrapperspb.StringValue) (*structpb.Struct, error) {
	dir, err := maze.ParseDirection(r.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.gateSessionManager.ReleaseDirection(ctx, dir); err != nil {
		return nil, toStatus(err)
	}
	return s.snapshot(ctx, nil)
}

func (s *Server) Snapshot(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.snapshot(ctx, nil)
}

// Events streams the current snapshot followed by every session event.
func (s *Server) Events(_ *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	ctx := stream.Context()
	snap, events, cancel, err := s.gateSessionManager.Watch(ctx)
	if err != nil {
		return toStatus(err)
	}
	defer cancel()

	msg, err := encodeSession(snap, nil)
	if err != nil {
		return toStatus(err)
	}
	if err := stream.Send(msg); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				s.logger.Warning("event stream closed: subscriber fell behind")
				return status.Error(codes.ResourceExhausted, "event subscriber fell behind")
			}
			msg, err := encodeEvent(e)
			if err != nil {
				return toStatus(err)
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		}
	}
}

func (s *Server) snapshot(ctx context.Context, extra map[string]any) (*structpb.Struct, error) {
	snap, err := s.gateSessionManager.Snapshot(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	msg, err := encodeSession(snap, extra)
	if err != nil {
		s.logger.Error(fmt.Sprintf("encoding snapshot: %s", err))
		return nil, toStatus(err)
	}
	return msg, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, maze.ErrInvalidDirection):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrLoopStopped):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
