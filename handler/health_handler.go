package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tranvd/askbot-be/types"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth is a static liveness reply.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.CommandResponse{
		ResponseType: "ephemeral",
		Blocks:       []types.Block{types.SectionBlock("Ask Bot is healthy and running!")},
	})
}
