package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tranvd/askbot-be/service"
	"github.com/tranvd/askbot-be/types"
)

type AskHandler struct {
	askService *service.AskService
}

func NewAskHandler(askService *service.AskService) *AskHandler {
	return &AskHandler{
		askService: askService,
	}
}

// HandleAsk serves the /ask slash command. The payload is the standard
// form-encoded command body; the reply is a JSON block list.
func (h *AskHandler) HandleAsk(c *gin.Context) {
	question := c.PostForm("text")
	userID := c.PostForm("user_id")
	log.Printf("/ask command received | user_id=%s", userID)

	blocks := h.askService.Ask(c.Request.Context(), question)

	c.JSON(http.StatusOK, types.CommandResponse{
		ResponseType: "in_channel",
		Blocks:       blocks,
	})
}
