package i

import (
	"context"

	"github.com/beka-birhanu/vinom-world/game"
	"github.com/beka-birhanu/vinom-world/world"
)

// WorldGenerator builds a validated world and a spawn position on it.
type WorldGenerator interface {
	// Generate returns world.ErrInvalidSize before consuming rng when size is
	// out of bounds, and world.ErrDegenerateMap when no spawn square is left.
	Generate(size world.Size, rng world.Rand) (world.Map, world.Position, error)
}

// GameRegistry stores live game instances.
type GameRegistry interface {
	// Create registers a new instance and returns its ID.
	Create(m world.Map, players []game.Player) game.ID

	// Snapshot returns a deep copy of an instance or game.ErrGameNotFound.
	Snapshot(id game.ID) (game.Snapshot, error)

	// Len returns the number of registered instances.
	Len() int
}

// StartedGame is the outcome of starting a game.
type StartedGame struct {
	ID       game.ID
	WorldMap world.Map
	Spawn    world.Position
}

// PlayedGame is the state handed to a player joining a game.
type PlayedGame struct {
	PlayerID int
	State    game.Snapshot
}

// GameService exposes the two game operations to the transports.
type GameService interface {
	// StartGame generates a world of the requested size and registers a game
	// on it. A nil size is rejected.
	StartGame(ctx context.Context, size *world.Size) (*StartedGame, error)

	// PlayGame returns the current state of an existing game.
	PlayGame(ctx context.Context, id game.ID) (*PlayedGame, error)
}
