package chart

// DefaultRules returns the built-in completeness rule catalog.
func DefaultRules() []Rule {
	return []Rule{
		{ID: "DX-01", Category: CategoryDiagnosis, Name: "Primary diagnosis recorded", Weight: 15, Active: true,
			Condition: RequiredField{Field: "primary_dx", RequiredAction: "ADD_PDX"}},
		{ID: "DX-02", Category: CategoryDiagnosis, Name: "SDx: Hypertension (if BP elevated)", Weight: 8, Active: true,
			Condition: VitalThreshold{VitalCode: "systolic_bp", Operator: OpGTE, Threshold: 140, RequiredAction: "ADD_SDX", SuggestedCode: "I10"}},
		{ID: "DX-03", Category: CategoryDiagnosis, Name: "SDx: DM (if FBS elevated)", Weight: 8, Active: true,
			Condition: LabThreshold{LabCode: "FBS", Operator: OpGTE, Threshold: 126, RequiredAction: "ADD_SDX", SuggestedCode: "E11.9"}},
		{ID: "DX-04", Category: CategoryDiagnosis, Name: "SDx: AKI (if creatinine rising)", Weight: 10, Active: true,
			Condition: LabThreshold{LabCode: "Creatinine", Operator: OpIncreaseFromBaseline, Threshold: 0.3, RequiredAction: "ADD_SDX", SuggestedCode: "N17.9"}},
		{ID: "DX-05", Category: CategoryDiagnosis, Name: "SDx: Anemia (if Hb low)", Weight: 6, Active: true,
			Condition: LabThreshold{LabCode: "Hemoglobin", Operator: OpLT, Threshold: 10, RequiredAction: "ADD_SDX", SuggestedCode: "D64.9"}},
		{ID: "DX-06", Category: CategoryDiagnosis, Name: "SDx: Hypokalemia (if K low)", Weight: 7, Active: true,
			Condition: LabThreshold{LabCode: "Potassium", Operator: OpLT, Threshold: 3.5, RequiredAction: "ADD_SDX", SuggestedCode: "E87.6"}},
		{ID: "DX-07", Category: CategoryDiagnosis, Name: "SDx: Hyperkalemia (if K high)", Weight: 7, Active: true,
			Condition: LabThreshold{LabCode: "Potassium", Operator: OpGT, Threshold: 5.5, RequiredAction: "ADD_SDX", SuggestedCode: "E87.5"}},
		{ID: "DX-08", Category: CategoryDiagnosis, Name: "SDx: Sepsis (if qSOFA >= 2)", Weight: 12, Active: true,
			Condition: ScoreThreshold{ScoreCode: "qSOFA", Operator: OpGTE, Threshold: 2, RequiredAction: "ADD_SDX", SuggestedCode: "A41.9"}},

		{ID: "PR-01", Category: CategoryProcedure, Name: "Procedure coded when ordered", Weight: 10, Active: true,
			Condition: RequiredIf{Trigger: "has_procedure_order", RequiredAction: "ADD_PROCEDURE"}},
		{ID: "PR-02", Category: CategoryProcedure, Name: "Ventilator procedure code", Weight: 10, Active: true,
			Condition: RequiredIf{Trigger: "ventilator_order", RequiredAction: "ADD_PROCEDURE", SuggestedCode: "5A1955Z"}},

		{ID: "CO-01", Category: CategoryConsistency, Name: "Diagnoses consistent with labs", Weight: 10, Active: true,
			Condition: ConsistencyCheck{Check: "dx_lab_match"}},
		{ID: "CO-02", Category: CategoryConsistency, Name: "Diagnoses consistent with medications", Weight: 8, Active: true,
			Condition: ConsistencyCheck{Check: "dx_med_match"}},
		{ID: "CO-03", Category: CategoryConsistency, Name: "PDx matches chief complaint", Weight: 7, Active: true,
			Condition: ConsistencyCheck{Check: "pdx_cc_match"}},
		{ID: "CO-04", Category: CategoryConsistency, Name: "LOS consistent with severity", Weight: 5, Active: true,
			Condition: ConsistencyCheck{Check: "los_severity_match"}},
		{ID: "CO-05", Category: CategoryConsistency, Name: "Diagnosis ordering correct", Weight: 5, Active: true,
			Condition: ConsistencyCheck{Check: "dx_order_correct"}},

		{ID: "DO-01", Category: CategoryDocumentation, Name: "Daily progress notes present", Weight: 8, Active: true,
			Condition: RequiredField{Field: "daily_notes"}},
		{ID: "DO-02", Category: CategoryDocumentation, Name: "Discharge summary present", Weight: 8, Active: true,
			Condition: RequiredIf{Trigger: "discharged", RequiredAction: "ADD_DISCHARGE_SUMMARY"}},
		{ID: "DO-03", Category: CategoryDocumentation, Name: "Vital signs fully recorded", Weight: 5, Active: true,
			Condition: RequiredField{Field: "vitals_complete"}},
		{ID: "DO-04", Category: CategoryDocumentation, Name: "Allergies documented", Weight: 4, Active: true,
			Condition: RequiredField{Field: "allergy_documented"}},
		{ID: "DO-05", Category: CategoryDocumentation, Name: "Informed consent recorded", Weight: 5, Active: true,
			Condition: RequiredIf{Trigger: "has_procedure", RequiredAction: "ADD_CONSENT"}},
	}
}
