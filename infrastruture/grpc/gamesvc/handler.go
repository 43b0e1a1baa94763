package gamesvc

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-world/game"
	"github.com/beka-birhanu/vinom-world/service"
	"github.com/beka-birhanu/vinom-world/service/i"
	"github.com/beka-birhanu/vinom-world/world"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// handler adapts an i.GameService to the gRPC GameServer API.
type handler struct {
	games i.GameService
}

var _ GameServer = &handler{}

// StartGame implements GameServer.
func (h *handler) StartGame(ctx context.Context, in *StartGameRequest) (*StartGameResponse, error) {
	started, err := h.games.StartGame(ctx, sizeFromWire(in.GetWorldSize()))
	if err != nil {
		return nil, toStatus(err)
	}

	return &StartGameResponse{
		GameID:   int32(started.ID),
		WorldMap: mapToWire(started.WorldMap),
	}, nil
}

// PlayGame implements GameServer.
func (h *handler) PlayGame(ctx context.Context, in *PlayGameRequest) (*PlayGameResponse, error) {
	played, err := h.games.PlayGame(ctx, game.ID(in.GetGameID()))
	if err != nil {
		return nil, toStatus(err)
	}

	return &PlayGameResponse{
		PlayerID: int32(played.PlayerID),
		GameState: &GameStateUpdate{
			WorldMap: mapToWire(played.State.Map),
			Players:  playersToWire(played.State.Players),
		},
	}, nil
}

// toStatus converts service errors to gRPC status errors.
func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrMissingWorldSize), errors.Is(err, world.ErrInvalidSize):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, game.ErrGameNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, world.ErrDegenerateMap):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, "an unexpected error occurred")
	}
}
