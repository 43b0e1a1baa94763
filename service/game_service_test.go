package service

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/beka-birhanu/vinom-world/config"
	"github.com/beka-birhanu/vinom-world/game"
	logger "github.com/beka-birhanu/vinom-world/infrastruture/log"
	"github.com/beka-birhanu/vinom-world/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	err error
}

func (s stubGenerator) Generate(world.Size, world.Rand) (world.Map, world.Position, error) {
	return world.Map{}, world.Position{}, s.err
}

func newTestService(t *testing.T, gen *world.Generator) (*GameService, *game.Registry) {
	t.Helper()

	if gen == nil {
		var err error
		gen, err = world.NewGenerator(world.Config{
			Bounds: world.Bounds{MinWidth: 10, MaxWidth: 100, MinHeight: 10, MaxHeight: 100},
		})
		require.NoError(t, err)
	}

	l, err := logger.New("TEST", config.ColorBlue, io.Discard)
	require.NoError(t, err)

	var seed atomic.Uint64
	registry := game.NewRegistry()
	svc, err := NewGameService(&Config{
		Generator: gen,
		Registry:  registry,
		Logger:    l,
		NewRand: func() (world.Rand, error) {
			s := seed.Add(1)
			return rand.New(rand.NewPCG(s, s)), nil
		},
	})
	require.NoError(t, err)
	return svc, registry
}

func TestNewGameService(t *testing.T) {
	_, err := NewGameService(nil)
	assert.Error(t, err)

	_, err = NewGameService(&Config{Registry: game.NewRegistry()})
	assert.Error(t, err)
}

func TestStartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("20x20 world", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		started, err := svc.StartGame(ctx, &world.Size{Width: 20, Height: 20})
		require.NoError(t, err)

		m, pos := started.WorldMap, started.Spawn
		assert.Len(t, m.Cells, 400)
		assert.True(t, pos.X >= 0 && pos.X < 20 && pos.Y >= 0 && pos.Y < 20)
		assert.Equal(t, world.Empty, m.Cells[pos.Y*20+pos.X])
	})

	t.Run("sequential ids and rejected sizes leave no trace", func(t *testing.T) {
		svc, registry := newTestService(t, nil)

		first, err := svc.StartGame(ctx, &world.Size{Width: 20, Height: 20})
		require.NoError(t, err)
		assert.Equal(t, game.ID(0), first.ID)

		_, err = svc.StartGame(ctx, &world.Size{Width: 5, Height: 20})
		assert.ErrorIs(t, err, world.ErrInvalidSize)
		_, err = svc.StartGame(ctx, nil)
		assert.ErrorIs(t, err, ErrMissingWorldSize)
		assert.Equal(t, 1, registry.Len())

		second, err := svc.StartGame(ctx, &world.Size{Width: 30, Height: 12})
		require.NoError(t, err)
		assert.Equal(t, game.ID(1), second.ID)
		assert.Equal(t, 2, registry.Len())
	})

	t.Run("degenerate world is not registered", func(t *testing.T) {
		_, registry := newTestService(t, nil)
		l, err := logger.New("TEST", config.ColorBlue, io.Discard)
		require.NoError(t, err)
		svc, err := NewGameService(&Config{
			Generator: stubGenerator{err: world.ErrDegenerateMap},
			Registry:  registry,
			Logger:    l,
		})
		require.NoError(t, err)

		_, err = svc.StartGame(ctx, &world.Size{Width: 20, Height: 20})
		assert.ErrorIs(t, err, world.ErrDegenerateMap)
		assert.Zero(t, registry.Len())
	})

	t.Run("seeding failure is not registered", func(t *testing.T) {
		registry := game.NewRegistry()
		l, err := logger.New("TEST", config.ColorBlue, io.Discard)
		require.NoError(t, err)
		svc, err := NewGameService(&Config{
			Generator: stubGenerator{},
			Registry:  registry,
			Logger:    l,
			NewRand:   func() (world.Rand, error) { return nil, errors.New("no entropy") },
		})
		require.NoError(t, err)

		_, err = svc.StartGame(ctx, &world.Size{Width: 20, Height: 20})
		assert.Error(t, err)
		assert.Zero(t, registry.Len())
	})

	t.Run("concurrent starts get distinct ids", func(t *testing.T) {
		const n = 50
		svc, registry := newTestService(t, nil)

		ids := make(chan game.ID, n)
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				started, err := svc.StartGame(ctx, &world.Size{Width: 15, Height: 15})
				if assert.NoError(t, err) {
					ids <- started.ID
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := map[game.ID]struct{}{}
		for id := range ids {
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, n)
		assert.Equal(t, n, registry.Len())
	})
}

func TestPlayGame(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	started, err := svc.StartGame(ctx, &world.Size{Width: 25, Height: 18})
	require.NoError(t, err)

	t.Run("returns the spawned player", func(t *testing.T) {
		played, err := svc.PlayGame(ctx, started.ID)
		require.NoError(t, err)

		assert.Equal(t, 0, played.PlayerID)
		assert.Equal(t, started.ID, played.State.ID)
		assert.Equal(t, started.WorldMap, played.State.Map)
		require.Len(t, played.State.Players, 1)
		assert.Equal(t, started.Spawn, played.State.Players[0].Position)
	})

	t.Run("unknown game", func(t *testing.T) {
		_, err := svc.PlayGame(ctx, started.ID+1)
		assert.ErrorIs(t, err, game.ErrGameNotFound)

		_, err = svc.PlayGame(ctx, -1)
		assert.ErrorIs(t, err, game.ErrGameNotFound)
	})

	t.Run("game without players", func(t *testing.T) {
		svc, registry := newTestService(t, nil)
		id := registry.Create(world.NewMap(world.Size{Width: 10, Height: 10}), nil)

		_, err := svc.PlayGame(ctx, id)
		assert.ErrorIs(t, err, ErrNoPlayers)
	})
}
