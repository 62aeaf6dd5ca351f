package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/requestdata"
	"github.com/yungbote/pedalmarket-backend/internal/services"
)

type InteractionHandler struct {
	log    *logger.Logger
	intSvc services.InteractionService
}

func NewInteractionHandler(log *logger.Logger, intSvc services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		log:    log.With("handler", "InteractionHandler"),
		intSvc: intSvc,
	}
}

type ingestRequest struct {
	Events []services.InteractionInput `json:"events"`
}

// POST /api/events
// Batched append of interaction events. Anonymous callers may submit view
// and search events; the rows simply carry no user ID.
func (h *InteractionHandler) Ingest(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("malformed event batch: %w", err))
		return
	}

	userID := uuid.Nil
	if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
		userID = rd.UserID
	}

	n, err := h.intSvc.Ingest(c.Request.Context(), nil, userID, req.Events)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "ingest_failed", err)
		return
	}
	RespondOK(c, gin.H{"ingested": n})
}
