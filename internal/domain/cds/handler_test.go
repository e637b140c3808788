package cds

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/chartsense/chartsense/internal/platform/nlp"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := NewService(DefaultGraph(), DefaultOrderTemplates(), nlp.NewExtractor(nlp.DefaultKeywords()))
	return NewHandler(svc), echo.New()
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_PreDiagnosis(t *testing.T) {
	h, e := newTestHandler()
	body := `{"symptoms":["fever","cough","sputum"],"age":72,"sex":"M","pmh":["diabetes"],"labs":[{"code":"CBC","value":15000,"unit":"cells/uL"}]}`
	c, rec := postJSON(e, body)

	if err := h.PreDiagnosis(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp PreDiagnosisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Differentials) == 0 {
		t.Fatal("expected differentials")
	}
	if resp.Differentials[0].ICDCode != "J18.9" {
		t.Errorf("expected J18.9 first, got %s", resp.Differentials[0].ICDCode)
	}
	if resp.PrimaryDiseaseGroup != GroupCAP {
		t.Errorf("expected CAP group, got %s", resp.PrimaryDiseaseGroup)
	}
}

func TestHandler_PreDiagnosis_ChiefComplaintExtraction(t *testing.T) {
	h, e := newTestHandler()
	body := `{"symptoms":[],"age":68,"chief_complaint":"productive cough and high fever for 3 days"}`
	c, rec := postJSON(e, body)

	if err := h.PreDiagnosis(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp PreDiagnosisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Differentials) == 0 {
		t.Fatal("expected differentials extracted from chief complaint")
	}
	if resp.Differentials[0].ICDCode != "J18.9" {
		t.Errorf("expected J18.9 first, got %s", resp.Differentials[0].ICDCode)
	}
}

func TestHandler_PreDiagnosis_NoSymptoms(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"age":50}`)

	if err := h.PreDiagnosis(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp PreDiagnosisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Differentials) != 0 {
		t.Errorf("expected empty differential list, got %d entries", len(resp.Differentials))
	}
	if resp.PrimaryDiseaseGroup != "GENERAL" {
		t.Errorf("expected GENERAL group, got %s", resp.PrimaryDiseaseGroup)
	}
	if resp.ConfidenceNote != "no matching differential diagnosis found" {
		t.Errorf("unexpected confidence note: %s", resp.ConfidenceNote)
	}
}

func TestService_PreDiagnosis_NilSymptoms(t *testing.T) {
	svc := NewService(DefaultGraph(), DefaultOrderTemplates(), nil)

	resp, err := svc.PreDiagnosis(PreDiagnosisRequest{Age: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Differentials) != 0 {
		t.Errorf("expected empty differential list, got %d entries", len(resp.Differentials))
	}
}

func TestHandler_OrderSuggestion(t *testing.T) {
	h, e := newTestHandler()
	body := `{"primary_dx":"Heart failure","icd_code":"I50.9","age":70,"comorbidities":["ckd"],"creatinine":2.1}`
	c, rec := postJSON(e, body)

	if err := h.OrderSuggestion(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp OrderSuggestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.DiseaseGroup != GroupHF {
		t.Errorf("expected HF, got %s", resp.DiseaseGroup)
	}
	if len(resp.Orders) == 0 {
		t.Error("expected orders")
	}
	// Age, creatinine and CKD should each produce a note.
	if len(resp.PersonalizationNotes) != 3 {
		t.Errorf("expected 3 personalization notes, got %v", resp.PersonalizationNotes)
	}
}

func TestHandler_OrderSuggestion_MissingCode(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{"primary_dx":"Pneumonia","age":50}`)
	if err := h.OrderSuggestion(c); err == nil {
		t.Error("expected error for missing icd_code")
	}
}

func TestHandler_AdmissionDecision(t *testing.T) {
	h, e := newTestHandler()
	body := `{"primary_dx":"Pneumonia","icd_code":"J18.9","age":78,"confusion":true,"urea":9.5,"vitals":{"respiratory_rate":32,"systolic_bp":85}}`
	c, rec := postJSON(e, body)

	if err := h.AdmissionDecision(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp AdmissionDecisionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Recommendation != DispositionICU {
		t.Errorf("expected ICU, got %s", resp.Recommendation)
	}
	if len(resp.RiskScores) != 2 {
		t.Errorf("expected CURB-65 and qSOFA, got %d tools", len(resp.RiskScores))
	}
}

func TestHandler_AdmissionDecision_BadBody(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{not json`)
	if err := h.AdmissionDecision(c); err == nil {
		t.Error("expected error for malformed body")
	}
}
