// README: Trip query handlers (full parse and extraction-only preview).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripsense/internal/modules/trip"
)

// maxQueryLen guards against pasting whole documents into the query field.
const maxQueryLen = 1024

// TripPlanner is the slice of trip.Service the handlers need.
type TripPlanner interface {
	Plan(ctx context.Context, query string) (*trip.Result, error)
	Extract(ctx context.Context, query string) trip.Extraction
}

type TripHandler struct {
	planner TripPlanner
}

func NewTripHandler(planner TripPlanner) *TripHandler {
	return &TripHandler{planner: planner}
}

type tripQueryReq struct {
	Query string `json:"query"`
}

func (h *TripHandler) bindQuery(c *gin.Context) (string, bool) {
	var req tripQueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return "", false
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return "", false
	}
	if len(req.Query) > maxQueryLen {
		writeError(c, http.StatusBadRequest, "query too long")
		return "", false
	}
	return req.Query, true
}

// Parse handles POST /api/trips/parse: the full pipeline, resolvers included.
func (h *TripHandler) Parse(c *gin.Context) {
	query, ok := h.bindQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := h.planner.Plan(ctx, query)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, result)
}

// ExtractOnly handles POST /api/trips/extract: intents, spans and
// constraints without any resolver round-trips.
func (h *TripHandler) ExtractOnly(c *gin.Context) {
	query, ok := h.bindQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	writeJSON(c, http.StatusOK, h.planner.Extract(ctx, query))
}
