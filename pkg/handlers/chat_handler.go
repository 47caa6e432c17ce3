package handlers

import (
	"log"
	"net/http"
	"time"

	"shopmate-api/pkg/models"
	"shopmate-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler drives the message-to-filter-to-response pipeline.
type ChatHandler struct {
	extractor *services.ExtractorService
	catalog   *services.CatalogService
	filter    *services.FilterService
	responder *services.ResponderService
	stream    *services.StreamService
}

// NewChatHandler wires the pipeline services together.
func NewChatHandler(extractor *services.ExtractorService, catalog *services.CatalogService, filter *services.FilterService, responder *services.ResponderService, stream *services.StreamService) *ChatHandler {
	return &ChatHandler{
		extractor: extractor,
		catalog:   catalog,
		filter:    filter,
		responder: responder,
		stream:    stream,
	}
}

// Chat handles POST /chat: extract filters, narrow the catalog,
// compose a reply, and broadcast it to connected sessions. Every
// external dependency degrades to its fallback, so this handler only
// fails on a malformed request.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	ctx := c.Request.Context()

	filters := h.extractor.ExtractFilters(ctx, req.Message)
	snapshot := h.catalog.GetCatalog("")
	matched := h.filter.FilterProducts(snapshot, filters, req.Message)
	reply, results := h.responder.Compose(ctx, req.Message, matched)

	timestamp := time.Now().Format(time.RFC3339)

	// Fire-and-forget relay to connected sessions; the HTTP response
	// does not wait for it.
	botMessage := models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    "bot",
		Text:      reply,
		Timestamp: timestamp,
		Products:  results,
	}
	go func() {
		h.stream.Broadcast(models.StreamEvent{Name: "new_message", Data: botMessage})
		log.Printf("chat: broadcast reply to %d subscribers", h.stream.SubscriberCount())
	}()

	c.JSON(http.StatusOK, models.ChatResponse{
		Reply:     reply,
		Results:   results,
		Filters:   filters,
		Timestamp: timestamp,
	})
}
