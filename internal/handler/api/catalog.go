package api

import (
	"net/http"

	"playroom-booking/internal/handler/middleware"
	"playroom-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Rooms for the draft
// @Description Rooms offering the selected console that fit the party
// @Tags catalog
// @Produce json
// @Success 200 {array} draft.Room
// @Router /api/catalog/rooms [get]
func (h *CatalogHandler) Rooms(c *gin.Context) {
	rooms, err := h.q.Rooms(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Units in the selected room
// @Tags catalog
// @Produce json
// @Success 200 {array} draft.Unit
// @Router /api/catalog/units [get]
func (h *CatalogHandler) Units(c *gin.Context) {
	units, err := h.q.Units(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// @Summary Food and drink menu
// @Tags catalog
// @Produce json
// @Success 200 {array} draft.FoodItem
// @Router /api/catalog/fnbs [get]
func (h *CatalogHandler) Fnbs(c *gin.Context) {
	items, err := h.q.Fnbs(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
