package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timewinder-app/timewinder/internal/core/services"
)

type StreakHandler struct {
	streaks *services.StreakService
	goals   *services.GoalService
}

func NewStreakHandler(streaks *services.StreakService, goals *services.GoalService) *StreakHandler {
	return &StreakHandler{
		streaks: streaks,
		goals:   goals,
	}
}

func (h *StreakHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/streak", h.Get)
}

type streakResponse struct {
	Streak         int `json:"streak"`
	CompletedGoals int `json:"completed_goals"`
}

// Get godoc
// @Summary  Completion streak and completed-goal count
// @Tags     streak
// @Produce  json
// @Success  200 {object} streakResponse
// @Router   /streak [get]
func (h *StreakHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, streakResponse{
		Streak:         h.streaks.Current(),
		CompletedGoals: h.goals.CompletedCount(),
	})
}
