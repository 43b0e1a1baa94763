package gameapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-world/game"
	"github.com/beka-birhanu/vinom-world/service"
	"github.com/beka-birhanu/vinom-world/service/i"
	"github.com/beka-birhanu/vinom-world/world"
	"github.com/gin-gonic/gin"
)

// GameController serves game creation and game state.
type GameController struct {
	games i.GameService
}

// NewGameController initializes a GameController.
func NewGameController(gs i.GameService) (*GameController, error) {
	if gs == nil {
		return nil, errors.New("game service is required")
	}
	return &GameController{games: gs}, nil
}

// RegisterPublic registers public routes.
func (gc *GameController) RegisterPublic(route *gin.RouterGroup) {
	games := route.Group("/games")
	{
		games.POST("", gc.startGame)
		games.GET("/:ID", gc.playGame)
		games.GET("/:ID/map", gc.renderMap)
	}
}

// startGame handles game creation requests.
func (gc *GameController) startGame(ctx *gin.Context) {
	var request StartGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size := &world.Size{Width: request.WorldSize.Width, Height: request.WorldSize.Height}
	started, err := gc.games.StartGame(ctx.Request.Context(), size)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &StartGameResponse{
		GameID:   int(started.ID),
		WorldMap: newMapDTO(started.WorldMap),
	})
}

// playGame returns the state of an existing game.
func (gc *GameController) playGame(ctx *gin.Context) {
	id, ok := gameID(ctx)
	if !ok {
		return
	}

	played, err := gc.games.PlayGame(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &PlayGameResponse{
		PlayerID: played.PlayerID,
		GameState: GameStateDTO{
			WorldMap: newMapDTO(played.State.Map),
			Players:  newPlayerDTOs(played.State.Players),
		},
	})
}

// renderMap writes the world of a game as text, '#' for walls.
func (gc *GameController) renderMap(ctx *gin.Context) {
	id, ok := gameID(ctx)
	if !ok {
		return
	}

	played, err := gc.games.PlayGame(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.String(http.StatusOK, played.State.Map.String())
}

func gameID(ctx *gin.Context) (game.ID, bool) {
	id, err := strconv.Atoi(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "game id must be an integer"})
		return 0, false
	}
	return game.ID(id), true
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrMissingWorldSize), errors.Is(err, world.ErrInvalidSize):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
