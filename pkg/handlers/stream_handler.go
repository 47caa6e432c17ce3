package handlers

import (
	"io"
	"net/http"

	"shopmate-api/pkg/models"
	"shopmate-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StreamHandler serves the real-time channel over server-sent events.
type StreamHandler struct {
	stream *services.StreamService
}

// NewStreamHandler creates a stream handler.
func NewStreamHandler(stream *services.StreamService) *StreamHandler {
	return &StreamHandler{stream: stream}
}

// Events handles GET /events: subscribes the connection to the hub and
// relays broadcast events until the client disconnects. A client may
// pass ?userId= to make its typing signals excludable.
func (h *StreamHandler) Events(c *gin.Context) {
	id := c.Query("userId")
	if id == "" {
		id = uuid.New().String()
	}

	events := h.stream.Subscribe(id)
	defer h.stream.Unsubscribe(id)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(event.Name, event.Data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// typingRequest is the body of POST /typing.
type typingRequest struct {
	UserID string `json:"userId"`
}

// Typing handles POST /typing: rebroadcasts the signal to every other
// connected session as user_typing.
func (h *StreamHandler) Typing(c *gin.Context) {
	var req typingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.stream.BroadcastExcept(req.UserID, models.StreamEvent{
		Name: "user_typing",
		Data: gin.H{"userId": req.UserID},
	})

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
