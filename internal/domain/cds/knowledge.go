package cds

// Disease is one node of the knowledge graph: an ICD-10 code with the
// clinical features that link to it. NameTH carries the Thai display
// name shown to clinicians alongside the English one.
type Disease struct {
	ICDCode       string
	Name          string
	NameTH        string
	Group         string
	Symptoms      []string
	Labs          []string
	RiskFactors   []string
	Complications []string
}

// Graph is the in-memory knowledge graph the differential scorer walks.
// It is immutable configuration: built once at startup and shared
// read-only across requests.
type Graph struct {
	Diseases []Disease
	// SymptomWeights maps disease group -> symptom -> weight.
	// Symptoms without an entry fall back to DefaultSymptomWeight.
	SymptomWeights map[string]map[string]float64
}

const DefaultSymptomWeight = 0.4

// Disease groups; also keys into the order template catalog.
const (
	GroupCAP = "CAP"
	GroupDM  = "DM"
	GroupHF  = "HF"
)

// GroupFor returns the disease group of an ICD code, or fallback when
// the code is not in the graph.
func (g *Graph) GroupFor(icdCode, fallback string) string {
	for _, d := range g.Diseases {
		if d.ICDCode == icdCode {
			return d.Group
		}
	}
	return fallback
}

// DefaultGraph returns the hand-curated graph covering the pilot
// disease groups: community-acquired pneumonia, diabetes and its
// metabolic complications, and heart failure.
func DefaultGraph() *Graph {
	return &Graph{
		Diseases: []Disease{
			{
				ICDCode:       "J18.9",
				Name:          "Community-Acquired Pneumonia",
				NameTH:        "ปอดอักเสบชุมชน",
				Group:         GroupCAP,
				Symptoms:      []string{"fever", "cough", "dyspnea", "sputum", "chest_pain", "tachypnea"},
				Labs:          []string{"CBC", "CXR", "Blood_culture", "Sputum_culture", "Procalcitonin", "BUN", "Creatinine"},
				RiskFactors:   []string{"age_over_65", "diabetes", "copd", "smoking", "immunosuppressed"},
				Complications: []string{"sepsis", "respiratory_failure", "pleural_effusion", "empyema"},
			},
			{
				ICDCode:       "E11.65",
				Name:          "DM Type 2 with Hyperglycemia",
				NameTH:        "เบาหวานชนิดที่ 2 มีน้ำตาลสูง",
				Group:         GroupDM,
				Symptoms:      []string{"polyuria", "polydipsia", "weight_loss", "fatigue", "blurred_vision", "nausea"},
				Labs:          []string{"FBS", "HbA1c", "BUN", "Creatinine", "Electrolytes", "UA", "Ketone"},
				RiskFactors:   []string{"obesity", "family_history_dm", "hypertension", "dyslipidemia"},
				Complications: []string{"dka", "hhs", "aki", "neuropathy", "retinopathy"},
			},
			{
				ICDCode:       "E11.69",
				Name:          "DM Type 2 with Other Complications",
				NameTH:        "เบาหวานชนิดที่ 2 มีภาวะแทรกซ้อนอื่น",
				Group:         GroupDM,
				Symptoms:      []string{"polyuria", "polydipsia", "numbness", "foot_ulcer", "fatigue"},
				Labs:          []string{"FBS", "HbA1c", "Lipid_profile", "Creatinine", "Urine_albumin"},
				RiskFactors:   []string{"long_duration_dm", "poor_control", "smoking"},
				Complications: []string{"nephropathy", "neuropathy", "pvd"},
			},
			{
				ICDCode:       "I50.9",
				Name:          "Heart Failure, Unspecified",
				NameTH:        "ภาวะหัวใจล้มเหลว",
				Group:         GroupHF,
				Symptoms:      []string{"dyspnea", "orthopnea", "pnd", "edema", "fatigue", "weight_gain", "jvd"},
				Labs:          []string{"BNP", "NT-proBNP", "CXR", "ECG", "Echo", "CBC", "BUN", "Creatinine", "Electrolytes"},
				RiskFactors:   []string{"hypertension", "cad", "diabetes", "valvular_disease", "age_over_65"},
				Complications: []string{"pulmonary_edema", "cardiogenic_shock", "arrhythmia", "renal_failure"},
			},
			{
				ICDCode:       "I50.1",
				Name:          "Left Ventricular Failure",
				NameTH:        "หัวใจห้องล่างซ้ายล้มเหลว",
				Group:         GroupHF,
				Symptoms:      []string{"dyspnea", "orthopnea", "pnd", "cough", "fatigue", "tachycardia"},
				Labs:          []string{"BNP", "CXR", "Echo", "ECG"},
				RiskFactors:   []string{"hypertension", "cad", "mi"},
				Complications: []string{"pulmonary_edema", "cardiogenic_shock"},
			},
			{
				ICDCode:       "N17.9",
				Name:          "Acute Kidney Injury",
				NameTH:        "ไตวายเฉียบพลัน",
				Group:         GroupDM,
				Symptoms:      []string{"oliguria", "edema", "nausea", "fatigue", "confusion"},
				Labs:          []string{"Creatinine", "BUN", "Electrolytes", "UA", "Urine_output"},
				RiskFactors:   []string{"diabetes", "hypertension", "nephrotoxic_drugs", "dehydration"},
				Complications: []string{"hyperkalemia", "metabolic_acidosis", "fluid_overload"},
			},
			{
				ICDCode:       "E87.2",
				Name:          "Metabolic Acidosis",
				NameTH:        "ภาวะกรดจากเมตาบอลิซึม",
				Group:         GroupDM,
				Symptoms:      []string{"kussmaul_breathing", "nausea", "vomiting", "abdominal_pain", "confusion"},
				Labs:          []string{"ABG", "Electrolytes", "Lactate", "Ketone"},
				RiskFactors:   []string{"dka", "renal_failure", "sepsis", "toxic_ingestion"},
				Complications: []string{"cardiac_arrhythmia", "coma"},
			},
			{
				ICDCode:       "A41.9",
				Name:          "Sepsis, Unspecified",
				NameTH:        "ภาวะติดเชื้อในกระแสเลือด",
				Group:         GroupCAP,
				Symptoms:      []string{"fever", "tachycardia", "tachypnea", "hypotension", "confusion", "rigors"},
				Labs:          []string{"Blood_culture", "CBC", "Lactate", "Procalcitonin", "CRP"},
				RiskFactors:   []string{"immunosuppressed", "age_over_65", "diabetes", "indwelling_catheter"},
				Complications: []string{"septic_shock", "mods", "dic"},
			},
		},
		SymptomWeights: map[string]map[string]float64{
			GroupCAP: {"fever": 0.8, "cough": 0.9, "dyspnea": 0.7, "sputum": 0.8, "chest_pain": 0.5, "tachypnea": 0.6},
			GroupDM:  {"polyuria": 0.8, "polydipsia": 0.8, "weight_loss": 0.5, "fatigue": 0.4, "blurred_vision": 0.5, "nausea": 0.4, "numbness": 0.6, "foot_ulcer": 0.7},
			GroupHF:  {"dyspnea": 0.9, "orthopnea": 0.8, "pnd": 0.8, "edema": 0.7, "fatigue": 0.4, "weight_gain": 0.6, "jvd": 0.7},
		},
	}
}
