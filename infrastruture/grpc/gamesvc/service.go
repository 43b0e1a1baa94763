package gamesvc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "game.Game"

const (
	startGameFullMethodName = "/game.Game/StartGame"
	playGameFullMethodName  = "/game.Game/PlayGame"
)

// GameServer is the server API for the game service.
type GameServer interface {
	StartGame(context.Context, *StartGameRequest) (*StartGameResponse, error)
	PlayGame(context.Context, *PlayGameRequest) (*PlayGameResponse, error)
}

// RegisterGameServer registers srv on s.
func RegisterGameServer(s grpc.ServiceRegistrar, srv GameServer) {
	s.RegisterService(&gameServiceDesc, srv)
}

func startGameHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServer).StartGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: startGameFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServer).StartGame(ctx, req.(*StartGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func playGameHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PlayGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServer).PlayGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: playGameFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServer).PlayGame(ctx, req.(*PlayGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var gameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartGame",
			Handler:    startGameHandler,
		},
		{
			MethodName: "PlayGame",
			Handler:    playGameHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "game.proto",
}

// GameClient is the client API for the game service.
type GameClient interface {
	StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*StartGameResponse, error)
	PlayGame(ctx context.Context, in *PlayGameRequest, opts ...grpc.CallOption) (*PlayGameResponse, error)
}

type gameClient struct {
	cc grpc.ClientConnInterface
}

// NewGameClient creates a GameClient over cc.
func NewGameClient(cc grpc.ClientConnInterface) GameClient {
	return &gameClient{cc}
}

func (c *gameClient) StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*StartGameResponse, error) {
	out := new(StartGameResponse)
	if err := c.cc.Invoke(ctx, startGameFullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameClient) PlayGame(ctx context.Context, in *PlayGameRequest, opts ...grpc.CallOption) (*PlayGameResponse, error) {
	out := new(PlayGameResponse)
	if err := c.cc.Invoke(ctx, playGameFullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.ForceCodec(protoCodec{})}, opts...)
}
