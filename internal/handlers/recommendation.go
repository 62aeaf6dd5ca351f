package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/requestdata"
	"github.com/yungbote/pedalmarket-backend/internal/services"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

type RecommendationHandler struct {
	log    *logger.Logger
	recSvc services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		log:    log.With("handler", "RecommendationHandler"),
		recSvc: recSvc,
	}
}

// GET /api/recommendations?limit=50&listing_type=sale&refresh=false
// Works for both anonymous and identified callers; identity comes from the
// optional auth middleware. Invalid inputs are rejected here so the engine
// only ever sees pre-validated requests.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	limit := services.DefaultRecommendationLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > services.MaxRecommendationLimit {
			RespondError(c, http.StatusBadRequest, "invalid_limit",
				fmt.Errorf("limit must be an integer between 1 and %d", services.MaxRecommendationLimit))
			return
		}
		limit = parsed
	}

	listingType := strings.TrimSpace(c.Query("listing_type"))
	if listingType != "" && !types.ValidListingType(listingType) {
		RespondError(c, http.StatusBadRequest, "invalid_listing_type",
			fmt.Errorf("unknown listing type %q", listingType))
		return
	}

	forceRefresh := false
	if raw := strings.TrimSpace(c.Query("refresh")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_refresh", fmt.Errorf("refresh must be a boolean"))
			return
		}
		forceRefresh = parsed
	}

	userID := uuid.Nil
	if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
		userID = rd.UserID
	}

	result, err := h.recSvc.GenerateRecommendations(c.Request.Context(), services.RecommendationRequest{
		UserID:       userID,
		Limit:        limit,
		ForceRefresh: forceRefresh,
		ListingType:  listingType,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "recommendation_failed", err)
		return
	}
	RespondOK(c, result)
}

// POST /api/recommendations/refresh?listing_type=sale
// Explicit "give me something new": drops the cached feed and recomputes.
func (h *RecommendationHandler) Refresh(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthenticated", fmt.Errorf("refresh requires an identified user"))
		return
	}

	listingType := strings.TrimSpace(c.Query("listing_type"))
	if listingType != "" && !types.ValidListingType(listingType) {
		RespondError(c, http.StatusBadRequest, "invalid_listing_type",
			fmt.Errorf("unknown listing type %q", listingType))
		return
	}

	result, err := h.recSvc.Refresh(c.Request.Context(), rd.UserID, listingType)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "refresh_failed", err)
		return
	}
	RespondOK(c, result)
}
