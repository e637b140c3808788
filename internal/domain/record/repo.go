package record

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested patient or encounter does not
// exist in the store.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// Patients
	CreatePatient(ctx context.Context, p *Patient) error
	GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error)
	ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	CountPatients(ctx context.Context) (int, error)

	// Encounters
	CreateEncounter(ctx context.Context, enc *Encounter) error
	GetEncounterByEID(ctx context.Context, encounterID string) (*Encounter, error)
	ListEncountersByPatient(ctx context.Context, patientID uuid.UUID) ([]*Encounter, error)

	// Clinical content
	AddDiagnosis(ctx context.Context, d *Diagnosis) error
	GetDiagnoses(ctx context.Context, encounterID uuid.UUID) ([]*Diagnosis, error)
	AddObservation(ctx context.Context, o *Observation) error
	GetObservations(ctx context.Context, encounterID uuid.UUID) ([]*Observation, error)
	AddOrder(ctx context.Context, o *OrderRecord) error
	GetOrders(ctx context.Context, encounterID uuid.UUID) ([]*OrderRecord, error)
	AddProgressNote(ctx context.Context, n *ProgressNote) error
	GetProgressNotes(ctx context.Context, encounterID uuid.UUID) ([]*ProgressNote, error)
}
