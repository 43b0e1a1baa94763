package game

import (
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-world/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap() world.Map {
	m := world.NewMap(world.Size{Width: 4, Height: 3})
	m.Cells[1] = world.Wall
	m.Cells[6] = world.Wall
	return m
}

func testPlayers() []Player {
	return []Player{{ID: 0, Position: world.Position{X: 0, Y: 0, Facing: world.Down}}}
}

func TestRegistryCreate(t *testing.T) {
	t.Run("assigns sequential ids", func(t *testing.T) {
		r := NewRegistry()
		assert.Equal(t, ID(0), r.Create(testMap(), testPlayers()))
		assert.Equal(t, ID(1), r.Create(testMap(), testPlayers()))
		assert.Equal(t, 2, r.Len())
	})

	t.Run("does not alias caller data", func(t *testing.T) {
		r := NewRegistry()
		m, players := testMap(), testPlayers()
		id := r.Create(m, players)

		m.Cells[0] = world.Wall
		players[0].Position.X = 3

		got, err := r.Snapshot(id)
		require.NoError(t, err)
		assert.Equal(t, world.Empty, got.Map.Cells[0])
		assert.Equal(t, 0, got.Players[0].Position.X)
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		const n = 200
		r := NewRegistry()

		ids := make([]ID, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ids[i] = r.Create(testMap(), testPlayers())
			}()
		}
		wg.Wait()

		seen := make(map[ID]struct{}, n)
		for _, id := range ids {
			seen[id] = struct{}{}
			assert.GreaterOrEqual(t, int(id), 0)
			assert.Less(t, int(id), n)
		}
		assert.Len(t, seen, n)
		assert.Equal(t, n, r.Len())
	})
}

func TestRegistryReads(t *testing.T) {
	r := NewRegistry()
	m, players := testMap(), testPlayers()
	id := r.Create(m, players)

	t.Run("round trip", func(t *testing.T) {
		gotMap, err := r.Map(id)
		require.NoError(t, err)
		assert.Equal(t, m, gotMap)

		gotPlayers, err := r.Players(id)
		require.NoError(t, err)
		assert.Equal(t, players, gotPlayers)

		snap, err := r.Snapshot(id)
		require.NoError(t, err)
		assert.Equal(t, id, snap.ID)
		assert.Equal(t, m, snap.Map)
		assert.Equal(t, players, snap.Players)
	})

	t.Run("returned copies do not alias the registry", func(t *testing.T) {
		gotMap, err := r.Map(id)
		require.NoError(t, err)
		gotMap.Cells[0] = world.Wall

		gotPlayers, err := r.Players(id)
		require.NoError(t, err)
		gotPlayers[0].ID = 42

		snap, err := r.Snapshot(id)
		require.NoError(t, err)
		snap.Map.Cells[2] = world.Wall
		snap.Players[0].Position.Y = 2

		again, err := r.Snapshot(id)
		require.NoError(t, err)
		assert.Equal(t, m, again.Map)
		assert.Equal(t, players, again.Players)
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		for _, bad := range []ID{1, 100, -1} {
			_, err := r.Map(bad)
			assert.ErrorIs(t, err, ErrGameNotFound)

			_, err = r.Players(bad)
			assert.ErrorIs(t, err, ErrGameNotFound)

			_, err = r.Snapshot(bad)
			assert.ErrorIs(t, err, ErrGameNotFound)
		}
	})
}
