package gamesvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-world/game"
	"github.com/beka-birhanu/vinom-world/service/i"
	"github.com/beka-birhanu/vinom-world/world"
	"google.golang.org/grpc"
)

const defaultRPCTimeout = 2 * time.Second

// Client calls a remote game service and returns domain types.
type Client struct {
	client     GameClient
	logger     i.Logger
	rpcTimeout time.Duration
}

// NewClient wraps cc. A non-positive rt uses a 2s per-call timeout.
func NewClient(cc grpc.ClientConnInterface, logger i.Logger, rt time.Duration) (*Client, error) {
	if cc == nil {
		return nil, errors.New("client connection is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if rt <= 0 {
		rt = defaultRPCTimeout
	}

	return &Client{
		client:     NewGameClient(cc),
		logger:     logger,
		rpcTimeout: rt,
	}, nil
}

// StartGame asks the server for a new world of the given size.
func (c *Client) StartGame(ctx context.Context, size world.Size) (game.ID, world.Map, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
	defer cancel()

	c.logger.Info(fmt.Sprintf("sending start game request for a %dx%d world", size.Width, size.Height))
	res, err := c.client.StartGame(timeoutCtx, &StartGameRequest{WorldSize: sizeToWire(size)})
	if err != nil {
		c.logger.Error(fmt.Sprintf("start game request failed: %s", err))
		return 0, world.Map{}, err
	}

	c.logger.Info(fmt.Sprintf("start game request success, game id: %d", res.GetGameID()))
	return game.ID(res.GetGameID()), mapFromWire(res.GetWorldMap()), nil
}

// PlayGame fetches the state of game id. It returns the caller's player id
// and the game snapshot.
func (c *Client) PlayGame(ctx context.Context, id game.ID) (int, game.Snapshot, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
	defer cancel()

	c.logger.Info(fmt.Sprintf("sending play game request for game: %d", id))
	res, err := c.client.PlayGame(timeoutCtx, &PlayGameRequest{GameID: int32(id)})
	if err != nil {
		c.logger.Error(fmt.Sprintf("play game request failed for game %d: %s", id, err))
		return 0, game.Snapshot{}, err
	}

	state := res.GetGameState()
	c.logger.Info(fmt.Sprintf("play game request success for game %d", id))
	return int(res.GetPlayerID()), game.Snapshot{
		ID:      id,
		Map:     mapFromWire(state.GetWorldMap()),
		Players: playersFromWire(state.GetPlayers()),
	}, nil
}
