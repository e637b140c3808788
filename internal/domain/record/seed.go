package record

import (
	"context"
	"fmt"
	"time"
)

func strPtr(s string) *string { return &s }

type seedObservation struct {
	obsType  string
	code     string
	display  string
	value    string
	unit     string
	abnormal bool
	refRange string
}

type seedEncounter struct {
	patientHN string
	eid       string
	ward      string
	los       int
	status    string
	cc        string
	pdx       [2]string // code, description
	sdx       [][2]string
	obs       []seedObservation
	orders    [][3]string // category, code, display
	notes     []string
}

// Seed loads demo patients and encounters into an empty store. It is
// idempotent: a store that already has patients is left untouched.
func (s *Service) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.CountPatients(ctx)
	if err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	patients := []*Patient{
		{HN: "HN-640001", Name: "Somchai Jaidee", Age: 72, Sex: "M", PMH: []string{"hypertension", "diabetes", "copd"}, Allergies: []string{"Penicillin"}},
		{HN: "HN-640002", Name: "Somying Raksuk", Age: 65, Sex: "F", PMH: []string{"diabetes", "ckd"}, Allergies: []string{}},
		{HN: "HN-640003", Name: "Prasert Mankong", Age: 78, Sex: "M", PMH: []string{"hypertension", "cad", "diabetes"}, Allergies: []string{"Sulfa"}},
		{HN: "HN-640004", Name: "Wipa Srisawat", Age: 58, Sex: "F", PMH: []string{"diabetes", "dyslipidemia"}, Allergies: []string{}},
	}

	byHN := make(map[string]*Patient, len(patients))
	for _, p := range patients {
		if err := s.CreatePatient(ctx, p); err != nil {
			return 0, fmt.Errorf("seed patient %s: %w", p.HN, err)
		}
		byHN[p.HN] = p
	}

	encounters := []seedEncounter{
		{
			patientHN: "HN-640001", eid: "ENC-2026-0001", ward: "Medicine Ward 1", los: 5, status: StatusActive,
			cc:  "High fever for 3 days, productive cough with thick yellow sputum, dyspnea",
			pdx: [2]string{"J18.9", "Community-Acquired Pneumonia"},
			sdx: [][2]string{{"I10", "Essential Hypertension"}, {"E11.9", "DM Type 2"}},
			obs: []seedObservation{
				{ObsTypeVital, "temperature", "Temperature", "38.8", "C", true, ""},
				{ObsTypeVital, "heart_rate", "Heart Rate", "105", "bpm", true, ""},
				{ObsTypeVital, "respiratory_rate", "Respiratory Rate", "28", "/min", true, ""},
				{ObsTypeVital, "systolic_bp", "Systolic BP", "145", "mmHg", true, ""},
				{ObsTypeVital, "diastolic_bp", "Diastolic BP", "88", "mmHg", false, ""},
				{ObsTypeVital, "spo2", "SpO2", "92", "%", true, ""},
				{ObsTypeLab, "WBC", "WBC", "15800", "/uL", true, "4500-11000"},
				{ObsTypeLab, "Creatinine", "Creatinine", "1.8", "mg/dL", true, "0.6-1.2"},
				{ObsTypeLab, "BUN", "BUN", "32", "mg/dL", true, "7-20"},
				{ObsTypeLab, "FBS", "FBS", "185", "mg/dL", true, "70-100"},
				{ObsTypeLab, "Potassium", "Potassium", "3.2", "mEq/L", true, "3.5-5.5"},
				{ObsTypeLab, "Procalcitonin", "Procalcitonin", "4.5", "ng/mL", true, "<0.5"},
			},
			orders: [][3]string{
				{"MEDICATION", "Ceftriaxone", "Ceftriaxone 2g IV q24h"},
				{"MEDICATION", "Azithromycin", "Azithromycin 500mg IV qd"},
				{"LAB", "Blood_culture", "Blood Culture x2"},
				{"IMAGING", "CXR", "Chest X-ray PA upright"},
			},
			notes: []string{
				"72M with high fever for 3 days, productive cough, dyspnea. Crepitation at right lower lobe. Dx: CAP, HTN, DM. Plan: antibiotics, CXR, blood culture.",
				"Day 2: fever subsiding, still coughing with sputum. SpO2 94% on nasal cannula 3L. CXR shows RLL infiltration. Continue antibiotics, monitor.",
			},
		},
		{
			patientHN: "HN-640002", eid: "ENC-2026-0002", ward: "Medicine Ward 2", los: 3, status: StatusActive,
			cc:  "Fatigue and nausea for 2 days, decreased urine output",
			pdx: [2]string{"E11.65", "DM Type 2 with Hyperglycemia"},
			sdx: [][2]string{{"N17.9", "Acute Kidney Injury"}, {"E87.2", "Metabolic Acidosis"}},
			obs: []seedObservation{
				{ObsTypeVital, "temperature", "Temperature", "37.2", "C", false, ""},
				{ObsTypeVital, "respiratory_rate", "Respiratory Rate", "22", "/min", false, ""},
				{ObsTypeVital, "systolic_bp", "Systolic BP", "130", "mmHg", false, ""},
				{ObsTypeLab, "FBS", "FBS", "320", "mg/dL", true, "70-100"},
				{ObsTypeLab, "HbA1c", "HbA1c", "11.5", "%", true, "<7"},
				{ObsTypeLab, "Creatinine", "Creatinine", "2.5", "mg/dL", true, "0.6-1.2"},
				{ObsTypeLab, "Potassium", "Potassium", "5.8", "mEq/L", true, "3.5-5.5"},
				{ObsTypeLab, "Ketone", "Urine Ketone", "3+", "", true, "Negative"},
			},
			orders: [][3]string{
				{"MEDICATION", "Insulin_RI", "Regular Insulin sliding scale"},
				{"MEDICATION", "NSS", "NSS 1000ml IV 100ml/hr"},
				{"LAB", "ABG", "Arterial Blood Gas"},
			},
			notes: []string{
				"65F with diabetes on metformin, fatigue and nausea for 2 days with oliguria. Glucose 320, ketone 3+, creatinine 2.5. Dx: hyperglycemia, AKI, metabolic acidosis. Plan: insulin, IV fluid, monitor renal function.",
			},
		},
		{
			patientHN: "HN-640003", eid: "ENC-2026-0003", ward: "CCU", los: 7, status: StatusActive,
			cc:  "Dyspnea, orthopnea for 3 days, bilateral leg edema",
			pdx: [2]string{"I50.1", "Left Ventricular Failure"},
			sdx: [][2]string{{"I10", "Essential Hypertension"}, {"E11.9", "DM Type 2"}},
			obs: []seedObservation{
				{ObsTypeVital, "heart_rate", "Heart Rate", "110", "bpm", true, ""},
				{ObsTypeVital, "respiratory_rate", "Respiratory Rate", "30", "/min", true, ""},
				{ObsTypeVital, "systolic_bp", "Systolic BP", "160", "mmHg", true, ""},
				{ObsTypeVital, "spo2", "SpO2", "88", "%", true, ""},
				{ObsTypeLab, "BNP", "BNP", "1850", "pg/mL", true, "<100"},
				{ObsTypeLab, "Creatinine", "Creatinine", "1.6", "mg/dL", true, "0.6-1.2"},
				{ObsTypeLab, "Hemoglobin", "Hemoglobin", "10.5", "g/dL", true, "12-16"},
			},
			orders: [][3]string{
				{"MEDICATION", "Furosemide", "Furosemide 40mg IV q12h"},
				{"MEDICATION", "Enalapril", "Enalapril 5mg PO BID"},
				{"IMAGING", "Echo", "Echocardiogram"},
				{"IMAGING", "ECG", "12-Lead ECG"},
			},
			notes: []string{
				"78M with HTN, DM, CAD presenting with dyspnea and orthopnea for 3 days, bilateral pitting edema. JVP elevated, bibasilar crepitation. BNP 1850, CXR cardiomegaly with pulmonary congestion. Dx: acute decompensated heart failure. Plan: IV diuretics, ACEi, O2 support, echo.",
			},
		},
		{
			patientHN: "HN-640004", eid: "ENC-2026-0004", ward: "Medicine Ward 2", los: 6, status: StatusDischarged,
			cc:  "Non-healing left foot wound for 2 weeks, poor glycemic control",
			pdx: [2]string{"E11.69", "DM Type 2 with Other Complications"},
			sdx: [][2]string{{"E78.5", "Dyslipidemia"}},
			obs: []seedObservation{
				{ObsTypeVital, "temperature", "Temperature", "37.5", "C", false, ""},
				{ObsTypeVital, "systolic_bp", "Systolic BP", "138", "mmHg", false, ""},
				{ObsTypeLab, "FBS", "FBS", "220", "mg/dL", true, "70-100"},
				{ObsTypeLab, "HbA1c", "HbA1c", "9.8", "%", true, "<7"},
			},
			orders: [][3]string{
				{"MEDICATION", "Insulin_RI", "Insulin sliding scale + basal insulin"},
				{"NURSING", "wound_care", "Wound care daily"},
			},
			notes: []string{
				"58F with diabetes presenting with a non-healing left foot ulcer for 2 weeks. HbA1c 9.8, glucose 220. Grade 2 plantar ulcer 3x2 cm. Plan: insulin, wound care, orthopedics consult.",
				"Discharge summary: wound improving with daily care, glycemic control achieved on basal-bolus insulin. Follow up in 2 weeks.",
			},
		},
	}

	now := time.Now().UTC()
	for _, se := range encounters {
		patient := byHN[se.patientHN]
		enc := &Encounter{
			EncounterID:    se.eid,
			PatientID:      patient.ID,
			AdmitDate:      now.AddDate(0, 0, -se.los),
			Ward:           se.ward,
			LengthOfStay:   se.los,
			Status:         se.status,
			ChiefComplaint: strPtr(se.cc),
		}
		if se.status == StatusDischarged {
			dc := now
			enc.DischargeDate = &dc
		}
		if err := s.CreateEncounter(ctx, enc); err != nil {
			return 0, fmt.Errorf("seed encounter %s: %w", se.eid, err)
		}

		if err := s.AddDiagnosis(ctx, &Diagnosis{EncounterID: enc.ID, ICDCode: se.pdx[0], Description: se.pdx[1], DxType: DxTypePrimary, Source: DxSourceMD}); err != nil {
			return 0, err
		}
		for _, sd := range se.sdx {
			if err := s.AddDiagnosis(ctx, &Diagnosis{EncounterID: enc.ID, ICDCode: sd[0], Description: sd[1], DxType: DxTypeSecondary, Source: DxSourceMD}); err != nil {
				return 0, err
			}
		}
		for i, o := range se.obs {
			obs := &Observation{
				EncounterID: enc.ID,
				ObsType:     o.obsType,
				Code:        o.code,
				DisplayName: o.display,
				Value:       o.value,
				TakenAt:     enc.AdmitDate.Add(time.Duration(i) * time.Minute),
				Abnormal:    o.abnormal,
			}
			if o.unit != "" {
				obs.Unit = strPtr(o.unit)
			}
			if o.refRange != "" {
				obs.ReferenceRange = strPtr(o.refRange)
			}
			if err := s.AddObservation(ctx, obs); err != nil {
				return 0, err
			}
		}
		for _, o := range se.orders {
			if err := s.AddOrder(ctx, &OrderRecord{EncounterID: enc.ID, Category: o[0], StandardCode: o[1], DisplayName: o[2], Priority: "ESSENTIAL"}); err != nil {
				return 0, err
			}
		}
		for i, text := range se.notes {
			note := &ProgressNote{
				EncounterID: enc.ID,
				NoteTime:    enc.AdmitDate.AddDate(0, 0, i),
				Text:        text,
			}
			if err := s.AddProgressNote(ctx, note); err != nil {
				return 0, err
			}
		}
	}

	return len(patients), nil
}
