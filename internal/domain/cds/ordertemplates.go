package cds

import "fmt"

// Order priorities in descending clinical urgency.
const (
	PriorityEssential   = "ESSENTIAL"
	PriorityRecommended = "RECOMMENDED"
	PriorityOptional    = "OPTIONAL"
)

// Order categories.
const (
	CategoryLab        = "LAB"
	CategoryImaging    = "IMAGING"
	CategoryMedication = "MEDICATION"
	CategoryNursing    = "NURSING"
	CategoryDiet       = "DIET"
)

// OrderTemplates maps a disease group to its CPG-derived admission
// order bundle. Like the knowledge graph, this is immutable
// configuration shared read-only across requests.
type OrderTemplates map[string][]OrderItem

// DefaultOrderTemplates returns the curated order bundles for the
// pilot disease groups.
func DefaultOrderTemplates() OrderTemplates {
	return OrderTemplates{
		GroupCAP: {
			{Category: CategoryLab, Code: "CBC", DisplayName: "Complete Blood Count", Priority: PriorityEssential, Rationale: "Assess infection (WBC, neutrophils)"},
			{Category: CategoryLab, Code: "BUN_Cr", DisplayName: "BUN/Creatinine", Priority: PriorityEssential, Rationale: "Assess renal function (CURB-65 component)"},
			{Category: CategoryLab, Code: "Electrolytes", DisplayName: "Na/K/Cl/CO2", Priority: PriorityEssential, Rationale: "Assess electrolyte imbalance"},
			{Category: CategoryLab, Code: "Blood_culture", DisplayName: "Blood Culture x2", Priority: PriorityEssential, Rationale: "Identify causative organism (before antibiotics)"},
			{Category: CategoryLab, Code: "Sputum_culture", DisplayName: "Sputum Culture & Gram Stain", Priority: PriorityRecommended, Rationale: "Identify the pathogen"},
			{Category: CategoryLab, Code: "Procalcitonin", DisplayName: "Procalcitonin", Priority: PriorityRecommended, Rationale: "Distinguish bacterial vs viral; track antibiotic response"},
			{Category: CategoryImaging, Code: "CXR_PA", DisplayName: "Chest X-ray PA upright", Priority: PriorityEssential, Rationale: "Confirm infiltrate; assess severity"},
			{Category: CategoryMedication, Code: "Ceftriaxone", DisplayName: "Ceftriaxone 2g IV q24h", Priority: PriorityEssential, Rationale: "Empiric antibiotic for CAP", CPGSource: "Thai CPG CAP 2023"},
			{Category: CategoryMedication, Code: "Azithromycin", DisplayName: "Azithromycin 500mg IV/PO qd", Priority: PriorityEssential, Rationale: "Atypical pathogen coverage", CPGSource: "Thai CPG CAP 2023"},
			{Category: CategoryMedication, Code: "Paracetamol", DisplayName: "Paracetamol 500mg PO q6h PRN", Priority: PriorityRecommended, Rationale: "Antipyretic"},
			{Category: CategoryNursing, Code: "O2_monitor", DisplayName: "SpO2 monitoring q4h", Priority: PriorityEssential, Rationale: "Watch for respiratory failure"},
			{Category: CategoryNursing, Code: "I_O", DisplayName: "Intake/Output monitoring", Priority: PriorityRecommended, Rationale: "Assess fluid balance"},
			{Category: CategoryDiet, Code: "soft_diet", DisplayName: "Soft diet", Priority: PriorityRecommended, Rationale: "Easier to tolerate"},
		},
		GroupDM: {
			{Category: CategoryLab, Code: "FBS", DisplayName: "Fasting Blood Sugar", Priority: PriorityEssential, Rationale: "Assess glucose level"},
			{Category: CategoryLab, Code: "HbA1c", DisplayName: "HbA1c", Priority: PriorityEssential, Rationale: "Assess 3-month glycemic control"},
			{Category: CategoryLab, Code: "BUN_Cr", DisplayName: "BUN/Creatinine", Priority: PriorityEssential, Rationale: "Assess diabetic nephropathy"},
			{Category: CategoryLab, Code: "Electrolytes", DisplayName: "Na/K/Cl/CO2", Priority: PriorityEssential, Rationale: "Assess for DKA/HHS"},
			{Category: CategoryLab, Code: "UA", DisplayName: "Urinalysis", Priority: PriorityEssential, Rationale: "Check ketones and protein"},
			{Category: CategoryLab, Code: "Lipid", DisplayName: "Lipid Profile", Priority: PriorityRecommended, Rationale: "Assess cardiovascular risk"},
			{Category: CategoryLab, Code: "Urine_albumin", DisplayName: "Urine Albumin/Creatinine Ratio", Priority: PriorityRecommended, Rationale: "Screen for microalbuminuria"},
			{Category: CategoryImaging, Code: "CXR", DisplayName: "Chest X-ray", Priority: PriorityOptional, Rationale: "Assess heart and lungs"},
			{Category: CategoryMedication, Code: "Insulin_RI", DisplayName: "Regular Insulin sliding scale", Priority: PriorityEssential, Rationale: "Glucose control during admission"},
			{Category: CategoryMedication, Code: "NSS", DisplayName: "NSS 1000ml IV 100ml/hr", Priority: PriorityEssential, Rationale: "Correct dehydration"},
			{Category: CategoryNursing, Code: "DTX_q6h", DisplayName: "DTX monitoring q6h", Priority: PriorityEssential, Rationale: "Track glucose levels"},
			{Category: CategoryDiet, Code: "DM_diet", DisplayName: "Diabetic diet 1500 kcal", Priority: PriorityEssential, Rationale: "Dietary glucose control"},
		},
		GroupHF: {
			{Category: CategoryLab, Code: "BNP", DisplayName: "BNP / NT-proBNP", Priority: PriorityEssential, Rationale: "Confirm HF and assess severity"},
			{Category: CategoryLab, Code: "CBC", DisplayName: "Complete Blood Count", Priority: PriorityEssential, Rationale: "Assess anemia (trigger factor)"},
			{Category: CategoryLab, Code: "BUN_Cr", DisplayName: "BUN/Creatinine", Priority: PriorityEssential, Rationale: "Assess cardiorenal syndrome"},
			{Category: CategoryLab, Code: "Electrolytes", DisplayName: "Na/K/Cl/CO2", Priority: PriorityEssential, Rationale: "Baseline before diuretics"},
			{Category: CategoryLab, Code: "Troponin", DisplayName: "Troponin-T hs", Priority: PriorityRecommended, Rationale: "Screen for acute coronary syndrome"},
			{Category: CategoryLab, Code: "TSH", DisplayName: "Thyroid Function Test", Priority: PriorityRecommended, Rationale: "Rule out thyroid-related HF"},
			{Category: CategoryImaging, Code: "CXR", DisplayName: "Chest X-ray PA upright", Priority: PriorityEssential, Rationale: "Look for pulmonary congestion, cardiomegaly"},
			{Category: CategoryImaging, Code: "Echo", DisplayName: "Echocardiogram", Priority: PriorityEssential, Rationale: "Assess EF, valvular disease, wall motion"},
			{Category: CategoryImaging, Code: "ECG", DisplayName: "12-Lead ECG", Priority: PriorityEssential, Rationale: "Look for arrhythmia, ischemia, LVH"},
			{Category: CategoryMedication, Code: "Furosemide", DisplayName: "Furosemide 40mg IV", Priority: PriorityEssential, Rationale: "Reduce fluid overload", CPGSource: "ESC HF Guidelines 2023"},
			{Category: CategoryMedication, Code: "Enalapril", DisplayName: "Enalapril 5mg PO BID", Priority: PriorityEssential, Rationale: "ACEi for HFrEF (EF<40%)", CPGSource: "ESC HF Guidelines 2023"},
			{Category: CategoryMedication, Code: "Carvedilol", DisplayName: "Carvedilol 3.125mg PO BID", Priority: PriorityRecommended, Rationale: "Beta-blocker for HFrEF", CPGSource: "ESC HF Guidelines 2023"},
			{Category: CategoryNursing, Code: "daily_weight", DisplayName: "Daily morning weight", Priority: PriorityEssential, Rationale: "Track fluid balance"},
			{Category: CategoryNursing, Code: "fluid_restrict", DisplayName: "Fluid restriction 1500ml/day", Priority: PriorityEssential, Rationale: "Reduce fluid overload"},
			{Category: CategoryDiet, Code: "low_salt", DisplayName: "Low-salt diet <2g Na/day", Priority: PriorityEssential, Rationale: "Reduce fluid retention"},
		},
	}
}

// Personalize returns advisory notes adjusting a template bundle to
// the individual patient. The bundle itself is returned unmodified;
// notes are for the ordering clinician.
func Personalize(req OrderSuggestionRequest) []string {
	notes := []string{}
	if req.Age >= 65 {
		notes = append(notes, "Age >= 65: adjust drug doses for renal function")
	}
	if req.Creatinine != nil && *req.Creatinine > 1.5 {
		notes = append(notes, fmt.Sprintf("Cr=%g: avoid nephrotoxic drugs, adjust doses", *req.Creatinine))
	}
	if contains(req.Comorbidities, "diabetes") {
		notes = append(notes, "DM comorbidity: add DTX monitoring")
	}
	if contains(req.Comorbidities, "ckd") {
		notes = append(notes, "CKD comorbidity: caution with renally cleared drugs")
	}
	return notes
}
