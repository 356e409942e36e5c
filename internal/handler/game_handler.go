package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cardparty/backend/internal/game"
	"cardparty/backend/internal/models"
	"cardparty/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// GameHandler exposes the round engine over HTTP.
type GameHandler struct {
	Service *game.Service
}

func NewGameHandler(service *game.Service) *GameHandler {
	return &GameHandler{Service: service}
}

// region --- DTOs ---

type CreateGameInput struct {
	UserName     string `json:"userName" binding:"required" example:"rick"`
	ExpansionIDs []uint `json:"expansionIds" binding:"required,min=1"`
}

type JoinGameInput struct {
	UserName string `json:"userName" binding:"required" example:"morty"`
}

type SubmitCardsInput struct {
	HandEntryIDs []uint `json:"handEntryIds" binding:"required"`
	SubmitAmount int    `json:"submitAmount" binding:"required,min=1,max=3"`
}

type PlayerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type BlackCardResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
	Pick int    `json:"pick"`
}

type WhiteCardResponse struct {
	ID          uint   `json:"id"`
	Text        string `json:"text"`
	ExpansionID uint   `json:"expansion_id"`
}

type HandEntryResponse struct {
	ID       uint              `json:"id"`
	Card     WhiteCardResponse `json:"card"`
	Selected bool              `json:"selected"`
}

type GameResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Code      string             `json:"code"`
	Ended     bool               `json:"ended"`
	JudgeID   *uint              `json:"judge_id"`
	BlackCard *BlackCardResponse `json:"black_card"`
	Players   []PlayerResponse   `json:"players"`
}

// SessionResponse is returned from create/join: the new player, their
// token, the game, and the freshly dealt hand.
type SessionResponse struct {
	Player PlayerResponse      `json:"player"`
	Token  string              `json:"token"`
	Game   GameResponse        `json:"game"`
	Cards  []WhiteCardResponse `json:"cards"`
}

type StateResponse struct {
	Game         GameResponse        `json:"game"`
	Hand         []HandEntryResponse `json:"hand"`
	HasSubmitted bool                `json:"has_submitted"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

func newPlayerResponse(p models.Player) PlayerResponse {
	return PlayerResponse{ID: p.ID, Name: p.Name, Score: p.Score}
}

func newBlackCardResponse(c *models.BlackCard) *BlackCardResponse {
	if c == nil {
		return nil
	}
	return &BlackCardResponse{ID: c.ID, Text: c.Text, Pick: c.Pick}
}

func newWhiteCardResponse(c models.WhiteCard) WhiteCardResponse {
	return WhiteCardResponse{ID: c.ID, Text: c.Text, ExpansionID: c.ExpansionID}
}

func newWhiteCardResponses(cards []models.WhiteCard) []WhiteCardResponse {
	out := make([]WhiteCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, newWhiteCardResponse(c))
	}
	return out
}

func newGameResponse(g models.Game) GameResponse {
	players := make([]PlayerResponse, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, newPlayerResponse(p))
	}
	return GameResponse{
		ID:        g.ID,
		Name:      g.Name,
		Code:      g.Code,
		Ended:     g.Ended,
		JudgeID:   g.JudgeID,
		BlackCard: newBlackCardResponse(g.BlackCard),
		Players:   players,
	}
}

func newSessionResponse(view *game.GameView, token string) SessionResponse {
	return SessionResponse{
		Player: newPlayerResponse(view.Player),
		Token:  token,
		Game:   newGameResponse(view.Game),
		Cards:  newWhiteCardResponses(view.Cards),
	}
}

// endregion

// respondError maps engine error kinds onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrAlreadySubmitted), errors.Is(err, game.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, game.ErrDeckExhausted):
		status = http.StatusGone
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func gameIDParam(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

func playerIDFrom(c *gin.Context) uint {
	playerID, _ := c.Get("playerID")
	return playerID.(uint)
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game with the selected expansions, makes the creator the first judge, and deals their hand.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        input body CreateGameInput true "Creator name and expansion IDs"
// @Success      201  {object}  SessionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /game [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var input CreateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.Service.CreateGame(input.UserName, input.ExpansionIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(view.Player.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, newSessionResponse(view, token))
}

// JoinGame godoc
// @Summary      Join a game by code
// @Description  Adds a player to the active game matching the join code and deals their hand.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        code  path string         true "4-character join code"
// @Param        input body JoinGameInput true "Player name"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  ErrorResponse "No active game with that code"
// @Failure      422  {object}  ErrorResponse
// @Router       /game/join/{code} [post]
func (h *GameHandler) JoinGame(c *gin.Context) {
	var input JoinGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.Service.JoinGame(c.Param("code"), input.UserName)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(view.Player.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(view, token))
}

// SubmitCards godoc
// @Summary      Submit cards for the current round
// @Description  Records the caller's picks for the round in the order given. The judge cannot submit; a second submission is rejected.
// @Tags         game
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int              true "Game ID"
// @Param        input body SubmitCardsInput true "Hand entry IDs in play order"
// @Success      204
// @Failure      403  {object}  ErrorResponse "Judge or non-member submitting"
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Already submitted this round"
// @Failure      422  {object}  ErrorResponse "Count does not match the black card's pick"
// @Router       /game/{id}/submit [post]
func (h *GameHandler) SubmitCards(c *gin.Context) {
	var input SubmitCardsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := h.Service.SubmitCards(gameIDParam(c), playerIDFrom(c), input.HandEntryIDs, input.SubmitAmount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Rotate godoc
// @Summary      Rotate the round
// @Description  Closes the round: reassigns the judge, tombstones submitted cards, tops up every hand, and draws a new black card.
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "No round open"
// @Failure      410  {object}  ErrorResponse "Black deck exhausted, game over"
// @Router       /game/{id}/rotate [post]
func (h *GameHandler) Rotate(c *gin.Context) {
	g, err := h.Service.Rotate(gameIDParam(c), playerIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*g))
}

// DrawWhiteCards godoc
// @Summary      Top up the caller's hand
// @Description  Draws white cards until the caller's hand reaches the hand limit and returns the new cards.
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {array}   WhiteCardResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      410  {object}  ErrorResponse "No white cards left for this player"
// @Router       /game/{id}/whiteCards/draw [get]
func (h *GameHandler) DrawWhiteCards(c *gin.Context) {
	cards, err := h.Service.DrawWhiteCards(gameIDParam(c), playerIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWhiteCardResponses(cards))
}

// DrawBlackCard godoc
// @Summary      Open a round
// @Description  Draws a black card the game has not played yet and makes it the current prompt.
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  BlackCardResponse
// @Failure      409  {object}  ErrorResponse "A black card is already in play"
// @Failure      410  {object}  ErrorResponse "Black deck exhausted, game over"
// @Router       /game/{id}/blackCard/draw [post]
func (h *GameHandler) DrawBlackCard(c *gin.Context) {
	card, err := h.Service.DrawBlackCard(gameIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBlackCardResponse(card))
}

// DiscardBlackCard godoc
// @Summary      Discard the current black card
// @Description  Retires the prompt in play without rotating. The card cannot be drawn again.
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      204
// @Failure      409  {object}  ErrorResponse "No black card in play"
// @Router       /game/{id}/blackCard/discard [post]
func (h *GameHandler) DiscardBlackCard(c *gin.Context) {
	if err := h.Service.DiscardBlackCard(gameIDParam(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GameState godoc
// @Summary      Get the caller's view of a game
// @Description  Returns the game, its members, the current prompt, the caller's hand, and whether the caller has submitted.
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  StateResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /game/{id}/state [get]
func (h *GameHandler) GameState(c *gin.Context) {
	state, err := h.Service.GameState(gameIDParam(c), playerIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	hand := make([]HandEntryResponse, 0, len(state.Hand))
	for _, e := range state.Hand {
		hand = append(hand, HandEntryResponse{
			ID:       e.ID,
			Card:     newWhiteCardResponse(e.WhiteCard),
			Selected: e.Selected,
		})
	}

	c.JSON(http.StatusOK, StateResponse{
		Game:         newGameResponse(state.Game),
		Hand:         hand,
		HasSubmitted: state.HasSubmitted,
	})
}
