package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/services"
)

type StatsHandler struct {
	service services.StatsService
}

func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// @Summary      Dashboard statistics
// @Description  Task counts, overdue and priority figures and the per-category breakdown for the current user
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  models.Stats
// @Failure      401  {object}  map[string]string
// @Router       /api/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, _ := currentUserID(c)

	stats, err := h.service.GetStats(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[stats][get][err] user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
