package handler

import (
	"net/http"
	"strconv"

	"cardparty/backend/internal/game"

	"github.com/gin-gonic/gin"
)

// ExpansionHandler serves the selectable card sets.
type ExpansionHandler struct {
	Service *game.Service
}

func NewExpansionHandler(service *game.Service) *ExpansionHandler {
	return &ExpansionHandler{Service: service}
}

// ListExpansions godoc
// @Summary      List expansions
// @Description  Gets a paginated list of selectable expansions with their black/white card counts.
// @Tags         expansions
// @Produce      json
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(20)
// @Success      200 {object} PaginatedResponse[game.ExpansionSummary]
// @Router       /expansions [get]
func (h *ExpansionHandler) ListExpansions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	summaries, total, err := h.Service.ListExpansions(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list expansions"})
		return
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(summaries, total, page, limit))
}
