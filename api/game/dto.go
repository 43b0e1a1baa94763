// Package gameapi provides the REST endpoints for starting and playing games.
package gameapi

import (
	"github.com/beka-birhanu/vinom-world/game"
	"github.com/beka-birhanu/vinom-world/world"
)

// SizeDTO is a world size in cells.
type SizeDTO struct {
	Width  int `json:"width" binding:"required"`
	Height int `json:"height" binding:"required"`
}

// StartGameRequest represents a request to create a new game.
type StartGameRequest struct {
	WorldSize *SizeDTO `json:"world_size" binding:"required"`
}

// MapDTO is a row-major grid, 0 for empty and 1 for wall.
type MapDTO struct {
	MapSize SizeDTO `json:"map_size"`
	Cells   []int   `json:"cells"`
}

// PositionDTO is a grid coordinate and facing (1 up, 2 down, 3 left, 4 right).
type PositionDTO struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Facing int `json:"facing"`
}

// PlayerDTO is one player of a game.
type PlayerDTO struct {
	PlayerID int         `json:"player_id"`
	Position PositionDTO `json:"position"`
}

// StartGameResponse carries the id of the new game and its world.
type StartGameResponse struct {
	GameID   int    `json:"game_id"`
	WorldMap MapDTO `json:"world_map"`
}

// GameStateDTO is the world and players of a game.
type GameStateDTO struct {
	WorldMap MapDTO      `json:"world_map"`
	Players  []PlayerDTO `json:"players"`
}

// PlayGameResponse represents the state handed to a player.
type PlayGameResponse struct {
	PlayerID  int          `json:"player_id"`
	GameState GameStateDTO `json:"game_state"`
}

func newMapDTO(m world.Map) MapDTO {
	cells := make([]int, len(m.Cells))
	for idx, c := range m.Cells {
		cells[idx] = int(c)
	}
	return MapDTO{
		MapSize: SizeDTO{Width: m.Size.Width, Height: m.Size.Height},
		Cells:   cells,
	}
}

func newPlayerDTOs(players []game.Player) []PlayerDTO {
	out := make([]PlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerDTO{
			PlayerID: p.ID,
			Position: PositionDTO{X: p.Position.X, Y: p.Position.Y, Facing: int(p.Position.Facing)},
		})
	}
	return out
}
