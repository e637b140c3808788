package chart

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chartsense/chartsense/internal/domain/record"
)

// SnapshotProvider supplies encounter snapshots for evaluation.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context, encounterID string) (*record.Snapshot, error)
}

type ScoreResponse struct {
	EncounterID string              `json:"encounter_id"`
	TotalScore  float64             `json:"total_score"`
	Grade       string              `json:"grade"`
	Breakdown   []CategoryBreakdown `json:"breakdown"`
	Gaps        []Gap               `json:"gaps"`
	EvaluatedAt time.Time           `json:"evaluated_at"`
}

type EvaluateRequest struct {
	EncounterID  string `json:"encounter_id"`
	ForceRefresh bool   `json:"force_refresh"`
}

type Handler struct {
	engine    *Engine
	snapshots SnapshotProvider
	demoMode  bool
}

func NewHandler(engine *Engine, snapshots SnapshotProvider, demoMode bool) *Handler {
	return &Handler{engine: engine, snapshots: snapshots, demoMode: demoMode}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/chart-completeness/:encounterID", h.GetScore)
	api.POST("/chart-completeness/evaluate", h.Evaluate)
}

func (h *Handler) GetScore(c echo.Context) error {
	return h.score(c, c.Param("encounterID"))
}

func (h *Handler) Evaluate(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EncounterID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "encounter_id is required")
	}
	return h.score(c, req.EncounterID)
}

func (h *Handler) score(c echo.Context, encounterID string) error {
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

	result := h.engine.Evaluate(snap)
	return c.JSON(http.StatusOK, ScoreResponse{
		EncounterID: encounterID,
		TotalScore:  result.TotalScore,
		Grade:       result.Grade,
		Breakdown:   result.Breakdown,
		Gaps:        result.Gaps,
		EvaluatedAt: time.Now().UTC(),
	})
}
