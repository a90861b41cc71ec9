package controller

import (
	"errors"
	"net/http"

	"bulls_cows_backend/internal/service"
	"bulls_cows_backend/internal/util"
	"bulls_cows_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	GameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{GameService: gameService}
}

type CreateGameRequest struct {
	Username string `json:"username" binding:"required,alphanum,max=50"`
	Age      *int   `json:"age" binding:"required"`
}

type ProposeCombinationRequest struct {
	Game        string `json:"game" binding:"required"`
	Combination string `json:"combination" binding:"required,len=4,numeric"`
}

type PreviousCombinationRequest struct {
	Game    string `form:"game" binding:"required"`
	Attempt *int   `form:"attempt" binding:"omitempty,min=2"`
}

type DeleteGameRequest struct {
	ID string `json:"id" binding:"required"`
}

// @Summary Create a new game
// @Description Generates a secret combination and starts a timed game for the player
// @Tags Game
// @Accept json
// @Produce json
// @Param request body controller.CreateGameRequest true "Player profile"
// @Success 201 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /game/create [post]
func (c *GameController) CreateGame(ctx *gin.Context) {
	var req CreateGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, "The data received is not valid", err.Error())
		return
	}

	game, err := c.GameService.CreateGame(ctx.Request.Context(), req.Username, *req.Age)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, "The game has been created", gin.H{"id": game.ID})
}

// @Summary Propose a combination
// @Description Scores a 4-digit guess against the game's secret combination
// @Tags Game
// @Accept json
// @Produce json
// @Param request body controller.ProposeCombinationRequest true "Guess"
// @Success 200 {object} util.Response{data=model.Attempt}
// @Failure 404 {object} util.Response
// @Failure 410 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /game/propose_combination [post]
func (c *GameController) ProposeCombination(ctx *gin.Context) {
	var req ProposeCombinationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, "The data received is not valid", err.Error())
		return
	}

	attempt, err := c.GameService.ProposeCombination(ctx.Request.Context(), req.Game, req.Combination)
	if err != nil {
		var expired *util.TimeExpiredError
		switch {
		case errors.Is(err, util.ErrGameNotFound):
			monitoring.AttemptOutcomes.WithLabelValues("not_found").Inc()
			util.NotFound(ctx, util.ErrGameNotFound.Error())
		case errors.Is(err, util.ErrDuplicateCombination):
			monitoring.AttemptOutcomes.WithLabelValues("duplicate").Inc()
			util.Error(ctx, http.StatusAlreadyReported, "Duplicated combination")
		case errors.As(err, &expired):
			monitoring.AttemptOutcomes.WithLabelValues("expired").Inc()
			util.ErrorWithData(ctx, http.StatusGone, "The time for the game has run out", gin.H{
				"combination": expired.Combination,
			})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if attempt.Bulls == 4 {
		monitoring.AttemptOutcomes.WithLabelValues("won").Inc()
	} else {
		monitoring.AttemptOutcomes.WithLabelValues("accepted").Inc()
	}
	util.Success(ctx, "The combination has been accepted", attempt)
}

// @Summary Fetch a previous attempt
// @Description Returns the result of an earlier accepted attempt, or the latest one when no attempt number is given
// @Tags Game
// @Produce json
// @Param game query string true "Game identifier"
// @Param attempt query int false "Attempt number (minimum 2)"
// @Success 200 {object} util.Response{data=model.Attempt}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /game/previous_combination [get]
func (c *GameController) PreviousCombination(ctx *gin.Context) {
	var req PreviousCombinationRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		util.UnprocessableEntity(ctx, "The data received is not valid", err.Error())
		return
	}

	attempt, err := c.GameService.PreviousCombination(ctx.Request.Context(), req.Game, req.Attempt)
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFound(ctx, util.ErrAttemptNotFound.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "The combination has been accepted", attempt)
}

// @Summary Delete a game
// @Description Removes the game and invalidates its cached attempt history
// @Tags Game
// @Accept json
// @Produce json
// @Param request body controller.DeleteGameRequest true "Game identifier"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /game/delete [delete]
func (c *GameController) DeleteGame(ctx *gin.Context) {
	var req DeleteGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, "The data received is not valid", err.Error())
		return
	}

	if err := c.GameService.DeleteGame(ctx.Request.Context(), req.ID); err != nil {
		if errors.Is(err, util.ErrGameNotFound) {
			util.NotFound(ctx, util.ErrGameNotFound.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "The game has been deleted", gin.H{"id": req.ID})
}
