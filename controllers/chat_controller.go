package controllers

import (
	"errors"
	"net/http"

	"charter-backend/services"

	"github.com/gin-gonic/gin"
)

// Fixed visitor-facing messages, Italian like the rest of the site copy.
const (
	chatMsgNotConfigured = "Il servizio di chat non è al momento configurato. Riprova più tardi."
	chatMsgUnavailable   = "Non riesco a connettermi al servizio di chat. Riprova tra qualche minuto."
)

type ChatController struct {
	ChatSvc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{ChatSvc: svc}
}

type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

// RelayMessage forwards one visitor message to the automation webhook and
// returns the upstream reply verbatim.
func (ctrl *ChatController) RelayMessage(c *gin.Context) {
	var payload chatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Messaggio non valido."})
		return
	}

	reply, err := ctrl.ChatSvc.Relay(payload.Message, payload.SessionID)
	if err != nil {
		if errors.Is(err, services.ErrWebhookNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": chatMsgNotConfigured})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": chatMsgUnavailable})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", reply)
}
