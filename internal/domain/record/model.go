package record

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	HN        string    `db:"hn" json:"hn"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Sex       string    `db:"sex" json:"sex"`
	PMH       []string  `db:"pmh" json:"pmh"`
	Allergies []string  `db:"allergies" json:"allergies"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Encounter maps to the encounter table. EncounterID is the human-facing
// identifier (e.g. "ENC-2026-0001") used in API routes.
type Encounter struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	EncounterID    string     `db:"encounter_id" json:"encounter_id"`
	PatientID      uuid.UUID  `db:"patient_id" json:"patient_id"`
	AdmitDate      time.Time  `db:"admit_date" json:"admit_date"`
	DischargeDate  *time.Time `db:"discharge_date" json:"discharge_date,omitempty"`
	Ward           string     `db:"ward" json:"ward"`
	LengthOfStay   int        `db:"length_of_stay" json:"length_of_stay"`
	Status         string     `db:"status" json:"status"`
	ChiefComplaint *string    `db:"chief_complaint" json:"chief_complaint,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// Encounter statuses.
const (
	StatusActive     = "ACTIVE"
	StatusDischarged = "DISCHARGED"
)

// Diagnosis types and sources.
const (
	DxTypePrimary   = "PDx"
	DxTypeSecondary = "SDx"
	DxSourceMD      = "MD"
	DxSourceAI      = "AI"
)

// Diagnosis maps to the diagnosis table.
type Diagnosis struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EncounterID uuid.UUID `db:"encounter_id" json:"encounter_id"`
	ICDCode     string    `db:"icd_code" json:"icd_code"`
	Description string    `db:"description" json:"description"`
	DxType      string    `db:"dx_type" json:"dx_type"`
	Source      string    `db:"source" json:"source"`
	Confidence  *float64  `db:"confidence" json:"confidence,omitempty"`
}

// Observation types.
const (
	ObsTypeVital = "vital"
	ObsTypeLab   = "lab"
)

// Observation maps to the observation table. Value is stored as text; some
// results (e.g. "3+", "Negative") are not numeric.
type Observation struct {
	ID             uuid.UUID `db:"id" json:"id"`
	EncounterID    uuid.UUID `db:"encounter_id" json:"encounter_id"`
	ObsType        string    `db:"obs_type" json:"obs_type"`
	Code           string    `db:"code" json:"code"`
	DisplayName    string    `db:"display_name" json:"display_name"`
	Value          string    `db:"value" json:"value"`
	Unit           *string   `db:"unit" json:"unit,omitempty"`
	TakenAt        time.Time `db:"taken_at" json:"taken_at"`
	Abnormal       bool      `db:"abnormal" json:"abnormal"`
	ReferenceRange *string   `db:"reference_range" json:"reference_range,omitempty"`
}

// OrderRecord maps to the order_record table.
type OrderRecord struct {
	ID           uuid.UUID `db:"id" json:"id"`
	EncounterID  uuid.UUID `db:"encounter_id" json:"encounter_id"`
	Category     string    `db:"category" json:"category"`
	StandardCode string    `db:"standard_code" json:"standard_code"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	Status       string    `db:"status" json:"status"`
	Priority     string    `db:"priority" json:"priority"`
	CPGSource    *string   `db:"cpg_source" json:"cpg_source,omitempty"`
}

// ProgressNote maps to the progress_note table.
type ProgressNote struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EncounterID uuid.UUID `db:"encounter_id" json:"encounter_id"`
	NoteTime    time.Time `db:"note_time" json:"note_time"`
	Text        string    `db:"text" json:"text"`
	Author      *string   `db:"author" json:"author,omitempty"`
}

// EncounterDetail is the admin API projection of an encounter with all of its
// clinical content attached.
type EncounterDetail struct {
	Encounter     *Encounter      `json:"encounter"`
	Patient       *Patient        `json:"patient"`
	Diagnoses     []*Diagnosis    `json:"diagnoses"`
	Observations  []*Observation  `json:"observations"`
	Orders        []*OrderRecord  `json:"orders"`
	ProgressNotes []*ProgressNote `json:"progress_notes"`
}
