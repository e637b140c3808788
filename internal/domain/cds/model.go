package cds

// VitalSigns carries a point-in-time vital-sign set. Nil pointers mean
// the measurement was not taken; scorers treat absent readings as
// non-contributing rather than zero.
type VitalSigns struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	HeartRate       *int     `json:"heart_rate,omitempty"`
	RespiratoryRate *int     `json:"respiratory_rate,omitempty"`
	SystolicBP      *int     `json:"systolic_bp,omitempty"`
	DiastolicBP     *int     `json:"diastolic_bp,omitempty"`
	SpO2            *float64 `json:"spo2,omitempty"`
	GCS             *int     `json:"gcs,omitempty"`
}

type LabResult struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type PreDiagnosisRequest struct {
	Symptoms       []string    `json:"symptoms"`
	Vitals         *VitalSigns `json:"vitals,omitempty"`
	Labs           []LabResult `json:"labs"`
	PMH            []string    `json:"pmh"`
	Age            int         `json:"age"`
	Sex            string      `json:"sex"`
	ChiefComplaint *string     `json:"chief_complaint,omitempty"`
}

type DifferentialDiagnosis struct {
	Rank          int      `json:"rank"`
	ICDCode       string   `json:"icd_code"`
	Description   string   `json:"description"`
	DescriptionTH string   `json:"description_th"`
	Probability   float64  `json:"probability"`
	Reasoning     string   `json:"reasoning"`
	Evidence      []string `json:"evidence"`
	CPGReference  string   `json:"cpg_reference,omitempty"`
}

type PreDiagnosisResponse struct {
	Differentials       []DifferentialDiagnosis `json:"differentials"`
	PrimaryDiseaseGroup string                  `json:"primary_disease_group"`
	ConfidenceNote      string                  `json:"confidence_note"`
}

type OrderItem struct {
	Category    string `json:"category"`
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
	Priority    string `json:"priority"`
	Rationale   string `json:"rationale"`
	CPGSource   string `json:"cpg_source,omitempty"`
}

type OrderSuggestionRequest struct {
	EncounterID   *string  `json:"encounter_id,omitempty"`
	PrimaryDx     string   `json:"primary_dx"`
	ICDCode       string   `json:"icd_code"`
	Age           int      `json:"age"`
	Sex           string   `json:"sex"`
	Comorbidities []string `json:"comorbidities"`
	Creatinine    *float64 `json:"creatinine,omitempty"`
	GFR           *float64 `json:"gfr,omitempty"`
}

type OrderSuggestionResponse struct {
	Orders               []OrderItem `json:"orders"`
	DiseaseGroup         string      `json:"disease_group"`
	PersonalizationNotes []string    `json:"personalization_notes"`
}

type AdmissionDecisionRequest struct {
	EncounterID *string     `json:"encounter_id,omitempty"`
	PrimaryDx   string      `json:"primary_dx"`
	ICDCode     string      `json:"icd_code"`
	Vitals      VitalSigns  `json:"vitals"`
	Labs        []LabResult `json:"labs"`
	Age         int         `json:"age"`
	Confusion   bool        `json:"confusion"`
	Urea        *float64    `json:"urea,omitempty"`
	NursingHome bool        `json:"nursing_home"`
}

// RiskScoreDetail is one scoring tool's result with its per-component
// contributions, so the caller can render how the total was reached.
type RiskScoreDetail struct {
	ToolName       string         `json:"tool_name"`
	Score          int            `json:"score"`
	MaxScore       int            `json:"max_score"`
	Components     map[string]int `json:"components"`
	Interpretation string         `json:"interpretation"`
	MortalityRisk  string         `json:"mortality_risk,omitempty"`
}

type AdmissionDecisionResponse struct {
	Recommendation string            `json:"recommendation"`
	RiskLevel      string            `json:"risk_level"`
	RiskScores     []RiskScoreDetail `json:"risk_scores"`
	Reasoning      string            `json:"reasoning"`
	SuggestedWard  string            `json:"suggested_ward"`
}
