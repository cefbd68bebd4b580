package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/server/http/dto"
)

// StatsHandler serves the admin dashboard rollup.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Stats handles GET /api/orders/admin/stats (admin).
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromStoreStats(stats)))
}
