package record

// Snapshot is a point-in-time, read-only projection of one encounter, built
// fresh per request and handed to the scoring engines. Engines never see the
// store itself and never mutate a snapshot.
type Snapshot struct {
	EncounterID  string                `json:"encounter_id"`
	Status       string                `json:"status"`
	Diagnoses    []SnapshotDiagnosis   `json:"diagnoses"`
	Observations []SnapshotObservation `json:"observations"`
	Orders       []SnapshotOrder       `json:"orders"`
	Notes        []string              `json:"notes"`
}

type SnapshotDiagnosis struct {
	Code        string `json:"icd_code"`
	Description string `json:"description"`
	Type        string `json:"dx_type"` // PDx or SDx
	Source      string `json:"source"`  // MD or AI
}

type SnapshotObservation struct {
	Type     string `json:"obs_type"` // vital or lab
	Code     string `json:"code"`
	Value    string `json:"value"`
	Abnormal bool   `json:"abnormal"`
}

type SnapshotOrder struct {
	Category    string `json:"category"`
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}

// DiagnosisCodes returns the set of diagnosis codes present in the snapshot.
// Codes match by exact string equality throughout the engines.
func (s *Snapshot) DiagnosisCodes() map[string]bool {
	codes := make(map[string]bool, len(s.Diagnoses))
	for _, d := range s.Diagnoses {
		codes[d.Code] = true
	}
	return codes
}

// HasPrimaryDiagnosis reports whether any diagnosis is typed PDx.
func (s *Snapshot) HasPrimaryDiagnosis() bool {
	for _, d := range s.Diagnoses {
		if d.Type == DxTypePrimary {
			return true
		}
	}
	return false
}

// DemoSnapshot returns a fixed snapshot used when the record store has no
// encounter for the requested id. The fallback lives in the handler layer;
// the engines are indifferent to where a snapshot came from.
func DemoSnapshot(encounterID string) *Snapshot {
	return &Snapshot{
		EncounterID: encounterID,
		Status:      StatusActive,
		Diagnoses: []SnapshotDiagnosis{
			{Code: "J18.9", Description: "Community-Acquired Pneumonia", Type: DxTypePrimary, Source: DxSourceMD},
		},
		Observations: []SnapshotObservation{
			{Type: ObsTypeVital, Code: "temperature", Value: "38.5", Abnormal: true},
			{Type: ObsTypeVital, Code: "heart_rate", Value: "98"},
			{Type: ObsTypeVital, Code: "respiratory_rate", Value: "24", Abnormal: true},
			{Type: ObsTypeVital, Code: "systolic_bp", Value: "150", Abnormal: true},
			{Type: ObsTypeLab, Code: "Creatinine", Value: "1.8", Abnormal: true},
			{Type: ObsTypeLab, Code: "FBS", Value: "180", Abnormal: true},
			{Type: ObsTypeLab, Code: "Hemoglobin", Value: "9.5", Abnormal: true},
			{Type: ObsTypeLab, Code: "Potassium", Value: "3.2", Abnormal: true},
			{Type: ObsTypeLab, Code: "Procalcitonin", Value: "3.5", Abnormal: true},
		},
		Orders: []SnapshotOrder{
			{Category: "MEDICATION", Code: "Ceftriaxone", DisplayName: "Ceftriaxone 2g IV q24h"},
		},
		Notes: []string{
			"Persistent fever with productive cough, on empiric antibiotics.",
		},
	}
}
