package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timewinder-app/timewinder/internal/core/services"
)

type MotivationHandler struct {
	svc *services.MotivationService
}

func NewMotivationHandler(svc *services.MotivationService) *MotivationHandler {
	return &MotivationHandler{svc: svc}
}

func (h *MotivationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/motivation", h.Generate)
}

type motivationRequest struct {
	GoalDescription string `json:"goal_description" binding:"required"`
}

type motivationResponse struct {
	Message string `json:"message"`
}

// Generate godoc
// @Summary  Motivational message for a goal description
// @Tags     motivation
// @Accept   json
// @Produce  json
// @Param    request body motivationRequest true "goal description"
// @Success  200 {object} motivationResponse
// @Router   /motivation [post]
func (h *MotivationHandler) Generate(c *gin.Context) {
	var req motivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Never fails: the service falls back to a fixed message.
	message := h.svc.Generate(c.Request.Context(), req.GoalDescription)

	c.JSON(http.StatusOK, motivationResponse{Message: message})
}
