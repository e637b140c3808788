package coding

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chartsense/chartsense/internal/domain/record"
)

// SnapshotProvider supplies encounter snapshots for suggestion runs.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context, encounterID string) (*record.Snapshot, error)
}

type AcceptRequest struct {
	SuggestionIDs []int `json:"suggestion_ids"`
}

type AcceptResponse struct {
	Status      string `json:"status"`
	EncounterID string `json:"encounter_id"`
	AcceptedIDs []int  `json:"accepted_ids"`
	Message     string `json:"message"`
}

type Handler struct {
	svc       *Service
	snapshots SnapshotProvider
	demoMode  bool
}

func NewHandler(svc *Service, snapshots SnapshotProvider, demoMode bool) *Handler {
	return &Handler{svc: svc, snapshots: snapshots, demoMode: demoMode}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/code-suggestion/:encounterID", h.Suggest)
	api.POST("/code-suggestion/:encounterID/accept", h.Accept)
}

func (h *Handler) Suggest(c echo.Context) error {
	encounterID := c.Param("encounterID")
	snap, err := h.snapshots.GetSnapshot(c.Request().Context(), encounterID)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) && h.demoMode {
			snap = record.DemoSnapshot(encounterID)
		} else if errors.Is(err, record.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "encounter not found")
		} else {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, h.svc.SuggestForSnapshot(c.Request().Context(), snap))
}

// Accept acknowledges a coder's acceptance of suggestions. Persistence
// of accepted codes into the chart is the record system's concern; this
// endpoint records intent and echoes the acknowledgement.
func (h *Handler) Accept(c echo.Context) error {
	var req AcceptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.SuggestionIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "suggestion_ids are required")
	}
	return c.JSON(http.StatusOK, AcceptResponse{
		Status:      "success",
		EncounterID: c.Param("encounterID"),
		AcceptedIDs: req.SuggestionIDs,
		Message:     fmt.Sprintf("accepted %d code(s)", len(req.SuggestionIDs)),
	})
}
