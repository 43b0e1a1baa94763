package gamesvc

import (
	"github.com/beka-birhanu/vinom-world/game"
	"github.com/beka-birhanu/vinom-world/world"
)

// Message types of the game.Game service. Field numbers are listed in
// game.proto; the protowire encoding lives in wire.go.

// Size is the wire form of world.Size.
type Size struct {
	Width  int32
	Height int32
}

// GetWidth returns the width, or 0 for a nil Size.
func (x *Size) GetWidth() int32 {
	if x == nil {
		return 0
	}
	return x.Width
}

// GetHeight returns the height, or 0 for a nil Size.
func (x *Size) GetHeight() int32 {
	if x == nil {
		return 0
	}
	return x.Height
}

// Map is the wire form of world.Map. Cells holds 0 for empty and 1 for wall,
// row-major.
type Map struct {
	MapSize *Size
	Cells   []int32
}

// GetMapSize returns the map size, or nil.
func (x *Map) GetMapSize() *Size {
	if x == nil {
		return nil
	}
	return x.MapSize
}

// GetCells returns the cell states, or nil.
func (x *Map) GetCells() []int32 {
	if x == nil {
		return nil
	}
	return x.Cells
}

// Position is a grid coordinate and a facing (1 up, 2 down, 3 left, 4 right).
type Position struct {
	X      int32
	Y      int32
	Facing int32
}

// GetX returns the column, or 0 for a nil Position.
func (x *Position) GetX() int32 {
	if x == nil {
		return 0
	}
	return x.X
}

// GetY returns the row, or 0 for a nil Position.
func (x *Position) GetY() int32 {
	if x == nil {
		return 0
	}
	return x.Y
}

// GetFacing returns the facing, or 0 for a nil Position.
func (x *Position) GetFacing() int32 {
	if x == nil {
		return 0
	}
	return x.Facing
}

// PlayerState is one player of a game and where it stands.
type PlayerState struct {
	PlayerID int32
	Position *Position
}

// GetPlayerID returns the player id, or 0 for a nil PlayerState.
func (x *PlayerState) GetPlayerID() int32 {
	if x == nil {
		return 0
	}
	return x.PlayerID
}

// GetPosition returns the player position, or nil.
func (x *PlayerState) GetPosition() *Position {
	if x == nil {
		return nil
	}
	return x.Position
}

// StartGameRequest asks for a new game on a world of WorldSize.
type StartGameRequest struct {
	WorldSize *Size
}

// GetWorldSize returns the requested size, or nil when it was not sent.
func (x *StartGameRequest) GetWorldSize() *Size {
	if x == nil {
		return nil
	}
	return x.WorldSize
}

// StartGameResponse carries the id and the world of a new game.
type StartGameResponse struct {
	GameID   int32
	WorldMap *Map
}

// GetGameID returns the game id, or 0 for a nil response.
func (x *StartGameResponse) GetGameID() int32 {
	if x == nil {
		return 0
	}
	return x.GameID
}

// GetWorldMap returns the generated world, or nil.
func (x *StartGameResponse) GetWorldMap() *Map {
	if x == nil {
		return nil
	}
	return x.WorldMap
}

// PlayGameRequest asks for the state of game GameID.
type PlayGameRequest struct {
	GameID int32
}

// GetGameID returns the game id, or 0 for a nil request.
func (x *PlayGameRequest) GetGameID() int32 {
	if x == nil {
		return 0
	}
	return x.GameID
}

// GameStateUpdate is the world of a game and its players.
type GameStateUpdate struct {
	WorldMap *Map
	Players  []*PlayerState
}

// GetWorldMap returns the world, or nil.
func (x *GameStateUpdate) GetWorldMap() *Map {
	if x == nil {
		return nil
	}
	return x.WorldMap
}

// GetPlayers returns the players, or nil.
func (x *GameStateUpdate) GetPlayers() []*PlayerState {
	if x == nil {
		return nil
	}
	return x.Players
}

// PlayGameResponse carries the caller's player id and the game state.
type PlayGameResponse struct {
	PlayerID  int32
	GameState *GameStateUpdate
}

// GetPlayerID returns the player id, or 0 for a nil response.
func (x *PlayGameResponse) GetPlayerID() int32 {
	if x == nil {
		return 0
	}
	return x.PlayerID
}

// GetGameState returns the game state, or nil.
func (x *PlayGameResponse) GetGameState() *GameStateUpdate {
	if x == nil {
		return nil
	}
	return x.GameState
}

// Helper functions for converting between domain and wire types

func sizeFromWire(s *Size) *world.Size {
	if s == nil {
		return nil
	}
	return &world.Size{Width: int(s.GetWidth()), Height: int(s.GetHeight())}
}

func sizeToWire(s world.Size) *Size {
	return &Size{Width: int32(s.Width), Height: int32(s.Height)}
}

func mapToWire(m world.Map) *Map {
	cells := make([]int32, len(m.Cells))
	for idx, c := range m.Cells {
		cells[idx] = int32(c)
	}
	return &Map{MapSize: sizeToWire(m.Size), Cells: cells}
}

func mapFromWire(m *Map) world.Map {
	size := m.GetMapSize()
	cells := make([]world.Cell, len(m.GetCells()))
	for idx, c := range m.GetCells() {
		cells[idx] = world.Cell(c)
	}
	return world.Map{
		Size:  world.Size{Width: int(size.GetWidth()), Height: int(size.GetHeight())},
		Cells: cells,
	}
}

func positionToWire(p world.Position) *Position {
	return &Position{X: int32(p.X), Y: int32(p.Y), Facing: int32(p.Facing)}
}

// positionFromWire treats an unset or unknown facing as the spawn facing.
func positionFromWire(p *Position) world.Position {
	facing := world.Direction(p.GetFacing())
	if !facing.Valid() {
		facing = world.DefaultFacing
	}
	return world.Position{X: int(p.GetX()), Y: int(p.GetY()), Facing: facing}
}

func playersToWire(players []game.Player) []*PlayerState {
	out := make([]*PlayerState, 0, len(players))
	for _, p := range players {
		out = append(out, &PlayerState{PlayerID: int32(p.ID), Position: positionToWire(p.Position)})
	}
	return out
}

func playersFromWire(players []*PlayerState) []game.Player {
	out := make([]game.Player, 0, len(players))
	for _, p := range players {
		out = append(out, game.Player{ID: int(p.GetPlayerID()), Position: positionFromWire(p.GetPosition())})
	}
	return out
}
