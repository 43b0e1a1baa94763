package game

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/beka-birhanu/vinom-world/world"
)

// Registry-related errors.
var (
	ErrGameNotFound = errors.New("game not found")
)

// ID identifies a game instance. IDs are assigned in creation order
// starting at 0 and are never reused.
type ID int

// Player is one participant of a game and where it stands.
type Player struct {
	ID       int
	Position world.Position
}

// Instance is a single running game: its world and its players.
type Instance struct {
	ID      ID
	Map     world.Map
	Players []Player
}

// Snapshot is a point-in-time copy of an instance. Mutating it never
// affects the registry.
type Snapshot struct {
	ID      ID
	Map     world.Map
	Players []Player
}

// Registry owns every live game instance. A single mutex covers all reads
// and writes, so creates are totally ordered and reads never see a torn
// instance. The lock is never held across I/O.
type Registry struct {
	mu    sync.Mutex
	games []Instance // games[i].ID == i
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Create registers a new instance holding copies of m and players and
// returns its ID, which equals the number of instances before the call.
func (r *Registry) Create(m world.Map, players []Player) ID {
	inst := Instance{
		Map:     m.Clone(),
		Players: slices.Clone(players),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inst.ID = ID(len(r.games))
	r.games = append(r.games, inst)
	return inst.ID
}

// Map returns a copy of the world of game id.
func (r *Registry) Map(id ID) (world.Map, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, err := r.instance(id)
	if err != nil {
		return world.Map{}, err
	}
	return inst.Map.Clone(), nil
}

// Players returns a copy of the players of game id.
func (r *Registry) Players(id ID) ([]Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, err := r.instance(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(inst.Players), nil
}

// Snapshot copies the world and the players of game id under one lock
// acquisition so both parts describe the same moment.
func (r *Registry) Snapshot(id ID) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, err := r.instance(id)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:      inst.ID,
		Map:     inst.Map.Clone(),
		Players: slices.Clone(inst.Players),
	}, nil
}

// Len returns the number of registered games, which is also the next ID.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games)
}

// instance looks id up. The caller must hold r.mu.
func (r *Registry) instance(id ID) (*Instance, error) {
	if id < 0 || int(id) >= len(r.games) {
		return nil, fmt.Errorf("%w: id %d", ErrGameNotFound, id)
	}
	return &r.games[id], nil
}
