package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/saltybytes-picks/internal/logger"
	"github.com/windoze95/saltybytes-picks/internal/models"
	"github.com/windoze95/saltybytes-picks/internal/service"
	"go.uber.org/zap"
)

// RecommendHandler serves dish recommendations.
type RecommendHandler struct {
	Service *service.RecommendService
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(recommendService *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{Service: recommendService}
}

// Recommend handles GET /recommend?calories=500&activity=moderate&taste=balanced
func (h *RecommendHandler) Recommend(c *gin.Context) {
	target := models.ParseTarget(c.Query("calories"), c.Query("activity"), c.Query("taste"))

	rec, err := h.Service.Recommend(c.Request.Context(), target)
	if err != nil {
		logger.WithRequestID(c.GetString("request_id")).Error("failed to build recommendation",
			zap.Int("calories", target.Calories),
			zap.String("activity", string(target.Activity)),
			zap.String("taste", string(target.Taste)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Health handles GET /
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
