package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/timewinder-app/timewinder/internal/core/domain"
	"github.com/timewinder-app/timewinder/internal/core/services"
	"github.com/timewinder-app/timewinder/internal/core/workers"
)

type GoalHandler struct {
	svc    *services.GoalService
	ticker *workers.TickerWorker
}

func NewGoalHandler(svc *services.GoalService, ticker *workers.TickerWorker) *GoalHandler {
	return &GoalHandler{
		svc:    svc,
		ticker: ticker,
	}
}

// createGoalRequest is the form boundary: title length and priority values
// are enforced here and by the domain constructor, the goal store itself
// trusts its callers.
type createGoalRequest struct {
	Title      string    `json:"title" binding:"required"`
	TargetDate time.Time `json:"target_date" binding:"required"`
	Priority   string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
}

type moveGoalRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.POST("", h.Create)
		goals.GET("", h.List)
		goals.GET("/classified", h.Classified)
		goals.GET("/stream", h.Stream)
		goals.GET("/:id/countdown", h.Countdown)
		goals.POST("/:id/move", h.Move)
		goals.POST("/:id/toggle", h.Toggle)
		goals.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary  Add a goal
// @Tags     goals
// @Accept   json
// @Produce  json
// @Param    goal body createGoalRequest true "goal"
// @Success  201 {object} domain.Goal
// @Router   /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.svc.Add(c.Request.Context(), req.Title, req.TargetDate, req.Priority)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGoalTitleTooShort),
			errors.Is(err, domain.ErrGoalTitleTooLong),
			errors.Is(err, domain.ErrGoalTargetZero),
			errors.Is(err, domain.ErrInvalidPriority):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// List godoc
// @Summary  List goals in manual order
// @Tags     goals
// @Produce  json
// @Success  200 {array} domain.Goal
// @Router   /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List())
}

// Classified godoc
// @Summary  Goals partitioned into upcoming, overdue and completed
// @Tags     goals
// @Produce  json
// @Success  200 {object} domain.Buckets
// @Router   /goals/classified [get]
func (h *GoalHandler) Classified(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Classified())
}

// Countdown godoc
// @Summary  Live countdown for one goal
// @Tags     goals
// @Produce  json
// @Param    id path string true "goal id"
// @Success  200 {object} domain.Countdown
// @Router   /goals/{id}/countdown [get]
func (h *GoalHandler) Countdown(c *gin.Context) {
	countdown, err := h.svc.Countdown(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, countdown)
}

// Move godoc
// @Summary  Swap a goal with its neighbor
// @Tags     goals
// @Accept   json
// @Param    id path string true "goal id"
// @Param    move body moveGoalRequest true "direction"
// @Success  204
// @Router   /goals/{id}/move [post]
func (h *GoalHandler) Move(c *gin.Context) {
	var req moveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Move(c.Request.Context(), c.Param("id"), req.Direction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary  Flip a goal's completion state
// @Tags     goals
// @Produce  json
// @Param    id path string true "goal id"
// @Success  200 {object} domain.Goal
// @Router   /goals/{id}/toggle [post]
func (h *GoalHandler) Toggle(c *gin.Context) {
	goal, err := h.svc.ToggleComplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Unknown id is a silent no-op, not an error.
	if goal == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Delete godoc
// @Summary  Remove a goal
// @Tags     goals
// @Param    id path string true "goal id"
// @Success  204
// @Router   /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Stream godoc
// @Summary  Server-sent tick snapshots (1s period)
// @Tags     goals
// @Produce  text/event-stream
// @Router   /goals/stream [get]
func (h *GoalHandler) Stream(c *gin.Context) {
	sub := h.ticker.Subscribe()
	defer h.ticker.Unsubscribe(sub)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-sub:
			if !ok {
				return false
			}
			c.SSEvent("tick", snap)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
