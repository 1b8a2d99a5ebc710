package api

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Full method names of the mazegate.Gate service.
const (
	Gate_StartGame_FullMethodName        = "/mazegate.Gate/StartGame"
	Gate_AttemptMove_FullMethodName      = "/mazegate.Gate/AttemptMove"
	Gate_HoldDirection_FullMethodName    = "/mazegate.Gate/HoldDirection"
	Gate_ReleaseDirection_FullMethodName = "/mazegate.Gate/ReleaseDirection"
	Gate_Snapshot_FullMethodName         = "/mazegate.Gate/Snapshot"
	Gate_Events_FullMethodName           = "/mazegate.Gate/Events"
)

// GateServer is the server API for the mazegate.Gate service.
type GateServer interface {
	StartGame(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	AttemptMove(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	HoldDirection(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ReleaseDirection(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Snapshot(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Events(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error
}

// RegisterGateServer registers srv on s.
func RegisterGateServer(s grpc.ServiceRegistrar, srv GateServer) {
	s.RegisterService(&Gate_ServiceDesc, srv)
}

func unaryHandler[Req any](method string, newReq func() *Req, call func(GateServer, context.Context, *Req) (*structpb.Struct, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GateServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GateServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func newEmpty() *emptypb.Empty             { return new(emptypb.Empty) }
func newString() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }

func _Gate_Events_Handler(srv any, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(GateServer).Events(m, &grpc.GenericServerStream[emptypb.Empty, structpb.Struct]{ServerStream: stream})
}

// Gate_ServiceDesc is the grpc.ServiceDesc for the mazegate.Gate service.
var Gate_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mazegate.Gate",
	HandlerType: (*GateServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartGame",
			Handler:    unaryHandler(Gate_StartGame_FullMethodName, newEmpty, GateServer.StartGame),
		},
		{
			MethodName: "AttemptMove",
			Handler:    unaryHandler(Gate_AttemptMove_FullMethodName, newString, GateServer.AttemptMove),
		},
		{
			MethodName: "HoldDirection",
			Handler:    unaryHandler(Gate_HoldDirection_FullMethodName, newString, GateServer.HoldDirection),
		},
		{
			MethodName: "ReleaseDirection",
			Handler:    unaryHandler(Gate_ReleaseDirection_FullMethodName, newString, GateServer.ReleaseDirection),
		},
		{
			MethodName: "Snapshot",
			Handler:    unaryHandler(Gate_Snapshot_FullMethodName, newEmpty, GateServer.Snapshot),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Events",
			Handler:       _Gate_Events_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "mazegate.proto",
}

// GateClient is the client API for the mazegate.Gate service.
type GateClient struct {
	cc grpc.ClientConnInterface
}

// NewGateClient wraps a client connection.
func NewGateClient(cc grpc.ClientConnInterface) *GateClient {
	return &GateClient{cc: cc}
}

func (c *GateClient) invoke(ctx context.Context, method string, in any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *GateClient) StartGame(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Gate_StartGame_FullMethodName, &emptypb.Empty{}, opts...)
}

func (c *GateClient) AttemptMove(ctx context.Context, dir string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Gate_AttemptMove_FullMethodName, wrapperspb.String(dir), opts...)
}

func (c *GateClient) HoldDirection(ctx context.Context, dir string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Gate_HoldDirection_FullMethodName, wrapperspb.String(dir), opts...)
}

func (c *GateClient) ReleaseDirection(ctx context.Context, dir string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Gate_ReleaseDirection_FullMethodName, wrapperspb.String(dir), opts...)
}

func (c *GateClient) Snapshot(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, Gate_Snapshot_FullMethodName, &emptypb.Empty{}, opts...)
}

// Events opens the event stream. The first message is the current snapshot.
func (c *GateClient) Events(ctx context.Context, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &Gate_ServiceDesc.Streams[0], Gate_Events_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(&emptypb.Empty{}); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
