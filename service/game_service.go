package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-world/game"
	"github.com/beka-birhanu/vinom-world/infrastruture/tracing"
	"github.com/beka-birhanu/vinom-world/random"
	"github.com/beka-birhanu/vinom-world/service/i"
	"github.com/beka-birhanu/vinom-world/world"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// spawnPlayerID is the ID of the single player placed by StartGame.
	spawnPlayerID = 0
)

// Game service errors.
var (
	ErrMissingWorldSize = errors.New("no world size specified")
	ErrNoPlayers        = errors.New("game has no players")
)

// RandFactory returns the random source used for one world.
type RandFactory func() (world.Rand, error)

// GameService creates games and serves their state.
type GameService struct {
	generator i.WorldGenerator
	registry  i.GameRegistry
	newRand   RandFactory
	logger    i.Logger
}

// Config holds the dependencies of a GameService.
type Config struct {
	Generator i.WorldGenerator
	Registry  i.GameRegistry
	Logger    i.Logger
	// NewRand defaults to an entropy-seeded PCG source per world.
	NewRand RandFactory
}

var _ i.GameService = &GameService{}

// NewGameService validates c and returns a GameService.
func NewGameService(c *Config) (*GameService, error) {
	if c == nil || c.Generator == nil || c.Registry == nil || c.Logger == nil {
		return nil, errors.New("game service requires a generator, a registry and a logger")
	}

	newRand := c.NewRand
	if newRand == nil {
		newRand = func() (world.Rand, error) { return random.New() }
	}

	return &GameService{
		generator: c.Generator,
		registry:  c.Registry,
		newRand:   newRand,
		logger:    c.Logger,
	}, nil
}

// StartGame generates a world of the requested size, spawns one player on
// it and registers the game. Nothing is registered when any step fails.
func (g *GameService) StartGame(ctx context.Context, size *world.Size) (*i.StartedGame, error) {
	_, span := tracing.StartSpan(ctx, "GameService.StartGame")
	defer span.End()

	if size == nil {
		span.SetStatus(codes.Error, ErrMissingWorldSize.Error())
		return nil, ErrMissingWorldSize
	}
	span.SetAttributes(attribute.Int("world.width", size.Width), attribute.Int("world.height", size.Height))

	rng, err := g.newRand()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		g.logger.Error(fmt.Sprintf("seeding world generator: %s", err))
		return nil, fmt.Errorf("seed world generator: %w", err)
	}

	worldMap, spawn, err := g.generator.Generate(*size, rng)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, world.ErrDegenerateMap) {
			g.logger.Error(fmt.Sprintf("generating %dx%d world: %s", size.Width, size.Height, err))
		}
		return nil, err
	}

	players := []game.Player{{ID: spawnPlayerID, Position: spawn}}
	id := g.registry.Create(worldMap, players)
	span.SetAttributes(attribute.Int("game.id", int(id)))
	g.logger.Info(fmt.Sprintf("created game id: %d (%dx%d, spawn %d,%d)", id, size.Width, size.Height, spawn.X, spawn.Y))

	return &i.StartedGame{
		ID:       id,
		WorldMap: worldMap,
		Spawn:    spawn,
	}, nil
}

// PlayGame returns the state of game id for its player.
func (g *GameService) PlayGame(ctx context.Context, id game.ID) (*i.PlayedGame, error) {
	_, span := tracing.StartSpan(ctx, "GameService.PlayGame", attribute.Int("game.id", int(id)))
	defer span.End()

	g.logger.Info(fmt.Sprintf("got a request for game id: %d", id))

	snapshot, err := g.registry.Snapshot(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if len(snapshot.Players) == 0 {
		span.SetStatus(codes.Error, ErrNoPlayers.Error())
		return nil, fmt.Errorf("%w: id %d", ErrNoPlayers, id)
	}

	return &i.PlayedGame{
		PlayerID: snapshot.Players[0].ID,
		State:    snapshot,
	}, nil
}
