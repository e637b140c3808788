package chart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/chartsense/chartsense/internal/domain/record"
)

type mockSnapshots struct {
	snapshots map[string]*record.Snapshot
}

func (m *mockSnapshots) GetSnapshot(_ context.Context, encounterID string) (*record.Snapshot, error) {
	snap, ok := m.snapshots[encounterID]
	if !ok {
		return nil, record.ErrNotFound
	}
	return snap, nil
}

func newTestHandler(demoMode bool) (*Handler, *echo.Echo) {
	snapshots := &mockSnapshots{snapshots: map[string]*record.Snapshot{
		"ENC-1": record.DemoSnapshot("ENC-1"),
	}}
	h := NewHandler(NewEngine(DefaultRules()), snapshots, demoMode)
	return h, echo.New()
}

func TestHandler_GetScore(t *testing.T) {
	h, e := newTestHandler(false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("encounterID")
	c.SetParamValues("ENC-1")

	if err := h.GetScore(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ScoreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.EncounterID != "ENC-1" {
		t.Errorf("expected ENC-1, got %s", resp.EncounterID)
	}
	if resp.Grade == "" || len(resp.Breakdown) != 4 {
		t.Errorf("incomplete response: %+v", resp)
	}
	if resp.EvaluatedAt.IsZero() {
		t.Error("expected evaluated_at to be set")
	}
}

func TestHandler_GetScore_UnknownEncounterDemoMode(t *testing.T) {
	h, e := newTestHandler(true)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("encounterID")
	c.SetParamValues("ENC-MISSING")

	if err := h.GetScore(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("demo mode should fall back to the demo snapshot, got %d", rec.Code)
	}
}

func TestHandler_GetScore_UnknownEncounterNotFound(t *testing.T) {
	h, e := newTestHandler(false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("encounterID")
	c.SetParamValues("ENC-MISSING")

	err := h.GetScore(c)
	if err == nil {
		t.Fatal("expected error without demo mode")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_Evaluate(t *testing.T) {
	h, e := newTestHandler(false)
	body := `{"encounter_id":"ENC-1"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Evaluate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_Evaluate_MissingEncounterID(t *testing.T) {
	h, e := newTestHandler(false)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Evaluate(c); err == nil {
		t.Error("expected error for missing encounter_id")
	}
}
