package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

// -- Patients --

func (r *repoPG) CreatePatient(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, hn, name, age, sex, pmh, allergies)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.HN, p.Name, p.Age, p.Sex, p.PMH, p.Allergies,
	)
	return err
}

func (r *repoPG) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, hn, name, age, sex, pmh, allergies, created_at
		FROM patient WHERE id = $1`, id)
	return scanPatient(row)
}

func (r *repoPG) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, hn, name, age, sex, pmh, allergies, created_at
		FROM patient ORDER BY hn LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	return patients, total, rows.Err()
}

func (r *repoPG) CountPatients(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&n)
	return n, err
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.HN, &p.Name, &p.Age, &p.Sex, &p.PMH, &p.Allergies, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// -- Encounters --

func (r *repoPG) CreateEncounter(ctx context.Context, enc *Encounter) error {
	enc.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO encounter (
			id, encounter_id, patient_id, admit_date, discharge_date,
			ward, length_of_stay, status, chief_complaint
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		enc.ID, enc.EncounterID, enc.PatientID, enc.AdmitDate, enc.DischargeDate,
		enc.Ward, enc.LengthOfStay, enc.Status, enc.ChiefComplaint,
	)
	return err
}

const encCols = `id, encounter_id, patient_id, admit_date, discharge_date,
	ward, length_of_stay, status, chief_complaint, created_at`

func (r *repoPG) GetEncounterByEID(ctx context.Context, encounterID string) (*Encounter, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+encCols+` FROM encounter WHERE encounter_id = $1`, encounterID)
	return scanEncounter(row)
}

func (r *repoPG) ListEncountersByPatient(ctx context.Context, patientID uuid.UUID) ([]*Encounter, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+encCols+` FROM encounter WHERE patient_id = $1 ORDER BY admit_date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var encounters []*Encounter
	for rows.Next() {
		enc, err := scanEncounter(rows)
		if err != nil {
			return nil, err
		}
		encounters = append(encounters, enc)
	}
	return encounters, rows.Err()
}

func scanEncounter(row pgx.Row) (*Encounter, error) {
	var enc Encounter
	err := row.Scan(
		&enc.ID, &enc.EncounterID, &enc.PatientID, &enc.AdmitDate, &enc.DischargeDate,
		&enc.Ward, &enc.LengthOfStay, &enc.Status, &enc.ChiefComplaint, &enc.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &enc, nil
}

// -- Clinical content --

func (r *repoPG) AddDiagnosis(ctx context.Context, d *Diagnosis) error {
	d.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO diagnosis (id, encounter_id, icd_code, description, dx_type, source, confidence)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.EncounterID, d.ICDCode, d.Description, d.DxType, d.Source, d.Confidence,
	)
	return err
}

func (r *repoPG) GetDiagnoses(ctx context.Context, encounterID uuid.UUID) ([]*Diagnosis, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, encounter_id, icd_code, description, dx_type, source, confidence
		FROM diagnosis WHERE encounter_id = $1 ORDER BY dx_type, icd_code`, encounterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diagnoses []*Diagnosis
	for rows.Next() {
		var d Diagnosis
		if err := rows.Scan(&d.ID, &d.EncounterID, &d.ICDCode, &d.Description, &d.DxType, &d.Source, &d.Confidence); err != nil {
			return nil, err
		}
		diagnoses = append(diagnoses, &d)
	}
	return diagnoses, rows.Err()
}

func (r *repoPG) AddObservation(ctx context.Context, o *Observation) error {
	o.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO observation (id, encounter_id, obs_type, code, display_name, value, unit, taken_at, abnormal, reference_range)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		o.ID, o.EncounterID, o.ObsType, o.Code, o.DisplayName, o.Value, o.Unit, o.TakenAt, o.Abnormal, o.ReferenceRange,
	)
	return err
}

func (r *repoPG) GetObservations(ctx context.Context, encounterID uuid.UUID) ([]*Observation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, encounter_id, obs_type, code, display_name, value, unit, taken_at, abnormal, reference_range
		FROM observation WHERE encounter_id = $1 ORDER BY taken_at`, encounterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []*Observation
	for rows.Next() {
		var o Observation
		if err := rows.Scan(&o.ID, &o.EncounterID, &o.ObsType, &o.Code, &o.DisplayName, &o.Value, &o.Unit, &o.TakenAt, &o.Abnormal, &o.ReferenceRange); err != nil {
			return nil, err
		}
		observations = append(observations, &o)
	}
	return observations, rows.Err()
}

func (r *repoPG) AddOrder(ctx context.Context, o *OrderRecord) error {
	o.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO order_record (id, encounter_id, category, standard_code, display_name, status, priority, cpg_source)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		o.ID, o.EncounterID, o.Category, o.StandardCode, o.DisplayName, o.Status, o.Priority, o.CPGSource,
	)
	return err
}

func (r *repoPG) GetOrders(ctx context.Context, encounterID uuid.UUID) ([]*OrderRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, encounter_id, category, standard_code, display_name, status, priority, cpg_source
		FROM order_record WHERE encounter_id = $1 ORDER BY category, standard_code`, encounterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*OrderRecord
	for rows.Next() {
		var o OrderRecord
		if err := rows.Scan(&o.ID, &o.EncounterID, &o.Category, &o.StandardCode, &o.DisplayName, &o.Status, &o.Priority, &o.CPGSource); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *repoPG) AddProgressNote(ctx context.Context, n *ProgressNote) error {
	n.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO progress_note (id, encounter_id, note_time, text, author)
		VALUES ($1,$2,$3,$4,$5)`,
		n.ID, n.EncounterID, n.NoteTime, n.Text, n.Author,
	)
	return err
}

func (r *repoPG) GetProgressNotes(ctx context.Context, encounterID uuid.UUID) ([]*ProgressNote, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, encounter_id, note_time, text, author
		FROM progress_note WHERE encounter_id = $1 ORDER BY note_time`, encounterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*ProgressNote
	for rows.Next() {
		var n ProgressNote
		if err := rows.Scan(&n.ID, &n.EncounterID, &n.NoteTime, &n.Text, &n.Author); err != nil {
			return nil, err
		}
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}
