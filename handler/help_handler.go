package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tranvd/askbot-be/types"
)

const helpText = "*Welcome to the Ask Bot!* :robot_face:\n\n" +
	"This bot answers questions from its knowledge base with AI assistance.\n\n" +
	"*Available Commands:*\n" +
	"• `/ask <question>` — Ask any question and get an AI-powered answer.\n" +
	"• `/help` — Show this help message.\n\n" +
	"_Tip: Use `/ask` to get started!_"

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

// HandleHelp returns the static help message. No pipeline involvement.
func (h *HelpHandler) HandleHelp(c *gin.Context) {
	c.JSON(http.StatusOK, types.CommandResponse{
		ResponseType: "ephemeral",
		Blocks:       []types.Block{types.SectionBlock(helpText)},
	})
}
