package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fenrirlabsnl/airesume/internal/delivery/http/response"
	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/apperror"
	"github.com/fenrirlabsnl/airesume/pkg/audit"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

// NewChatHandler registers the public chat routes
func NewChatHandler(public *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{
		chatUC: chatUC,
	}

	public.POST("/chat", handler.SendMessage)
	public.GET("/chat/:session_id/history", handler.History)
	public.POST("/chat/:session_id/clear", handler.ClearSession)
}

// SendMessage godoc
// @Summary      Send Chat Message
// @Description  Send a message to the candidate's assistant. The reply is grounded in the candidate's knowledge base.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        message  body      domain.SendMessageRequest  true  "Chat Message"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /chat [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	reply, err := h.chatUC.SendMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	requestID, _ := c.Get("RequestID")
	reqIDStr, _ := requestID.(string)
	audit.Default().Log(audit.Event{
		Event:     audit.EventChatTurn,
		SessionID: req.SessionID,
		IP:        c.ClientIP(),
		RequestID: reqIDStr,
	})

	response.Success(c, http.StatusOK, "Message sent", reply)
}

// History godoc
// @Summary      Get Session History
// @Description  Return the full message log for a session, oldest first.
// @Tags         chat
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /chat/{session_id}/history [get]
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.chatUC.History(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		c.Error(err)
		return
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	response.Success(c, http.StatusOK, "Session history", messages)
}

// ClearSession godoc
// @Summary      Clear Session
// @Description  Issue a fresh session identifier. The old session's history is retained.
// @Tags         chat
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.Response
// @Router       /chat/{session_id}/clear [post]
func (h *ChatHandler) ClearSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	fresh, err := h.chatUC.ClearSession(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	requestID, _ := c.Get("RequestID")
	reqIDStr, _ := requestID.(string)
	audit.Default().Log(audit.Event{
		Event:     audit.EventSessionCleared,
		SessionID: sessionID,
		IP:        c.ClientIP(),
		RequestID: reqIDStr,
	})

	response.Success(c, http.StatusOK, "Session cleared", gin.H{"session_id": fresh})
}
