package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.HN == "" {
		return fmt.Errorf("hn is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must be non-negative")
	}
	return s.repo.CreatePatient(ctx, p)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.ListPatients(ctx, limit, offset)
}

func (s *Service) ListEncountersByPatient(ctx context.Context, patientID uuid.UUID) ([]*Encounter, error) {
	return s.repo.ListEncountersByPatient(ctx, patientID)
}

func (s *Service) CreateEncounter(ctx context.Context, enc *Encounter) error {
	if enc.EncounterID == "" {
		return fmt.Errorf("encounter_id is required")
	}
	if enc.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if enc.Status == "" {
		enc.Status = StatusActive
	}
	if enc.Status != StatusActive && enc.Status != StatusDischarged {
		return fmt.Errorf("invalid status: %s", enc.Status)
	}
	return s.repo.CreateEncounter(ctx, enc)
}

func (s *Service) AddDiagnosis(ctx context.Context, d *Diagnosis) error {
	if d.ICDCode == "" {
		return fmt.Errorf("icd_code is required")
	}
	if d.DxType != DxTypePrimary && d.DxType != DxTypeSecondary {
		return fmt.Errorf("invalid dx_type: %s", d.DxType)
	}
	if d.Source == "" {
		d.Source = DxSourceMD
	}
	return s.repo.AddDiagnosis(ctx, d)
}

func (s *Service) AddObservation(ctx context.Context, o *Observation) error {
	if o.Code == "" {
		return fmt.Errorf("code is required")
	}
	if o.ObsType != ObsTypeVital && o.ObsType != ObsTypeLab {
		return fmt.Errorf("invalid obs_type: %s", o.ObsType)
	}
	return s.repo.AddObservation(ctx, o)
}

func (s *Service) AddOrder(ctx context.Context, o *OrderRecord) error {
	if o.StandardCode == "" {
		return fmt.Errorf("standard_code is required")
	}
	if o.Status == "" {
		o.Status = "ORDERED"
	}
	return s.repo.AddOrder(ctx, o)
}

func (s *Service) AddProgressNote(ctx context.Context, n *ProgressNote) error {
	if n.Text == "" {
		return fmt.Errorf("text is required")
	}
	return s.repo.AddProgressNote(ctx, n)
}

// GetEncounterDetail returns an encounter and all attached clinical content.
func (s *Service) GetEncounterDetail(ctx context.Context, encounterID string) (*EncounterDetail, error) {
	enc, err := s.repo.GetEncounterByEID(ctx, encounterID)
	if err != nil {
		return nil, err
	}

	patient, err := s.repo.GetPatient(ctx, enc.PatientID)
	if err != nil {
		return nil, err
	}

	detail := &EncounterDetail{Encounter: enc, Patient: patient}
	if detail.Diagnoses, err = s.repo.GetDiagnoses(ctx, enc.ID); err != nil {
		return nil, err
	}
	if detail.Observations, err = s.repo.GetObservations(ctx, enc.ID); err != nil {
		return nil, err
	}
	if detail.Orders, err = s.repo.GetOrders(ctx, enc.ID); err != nil {
		return nil, err
	}
	if detail.ProgressNotes, err = s.repo.GetProgressNotes(ctx, enc.ID); err != nil {
		return nil, err
	}
	return detail, nil
}

// GetSnapshot builds the scoring-engine projection of one encounter. Returns
// ErrNotFound when the encounter does not exist; callers decide whether to
// surface the miss or substitute a demo snapshot.
func (s *Service) GetSnapshot(ctx context.Context, encounterID string) (*Snapshot, error) {
	enc, err := s.repo.GetEncounterByEID(ctx, encounterID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		EncounterID: enc.EncounterID,
		Status:      enc.Status,
	}

	diagnoses, err := s.repo.GetDiagnoses(ctx, enc.ID)
	if err != nil {
		return nil, err
	}
	for _, d := range diagnoses {
		snap.Diagnoses = append(snap.Diagnoses, SnapshotDiagnosis{
			Code:        d.ICDCode,
			Description: d.Description,
			Type:        d.DxType,
			Source:      d.Source,
		})
	}

	observations, err := s.repo.GetObservations(ctx, enc.ID)
	if err != nil {
		return nil, err
	}
	for _, o := range observations {
		snap.Observations = append(snap.Observations, SnapshotObservation{
			Type:     o.ObsType,
			Code:     o.Code,
			Value:    o.Value,
			Abnormal: o.Abnormal,
		})
	}

	orders, err := s.repo.GetOrders(ctx, enc.ID)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		snap.Orders = append(snap.Orders, SnapshotOrder{
			Category:    o.Category,
			Code:        o.StandardCode,
			DisplayName: o.DisplayName,
		})
	}

	notes, err := s.repo.GetProgressNotes(ctx, enc.ID)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		snap.Notes = append(snap.Notes, n.Text)
	}

	return snap, nil
}
