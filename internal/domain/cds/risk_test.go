package cds

import "testing"

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestScoreCURB65_AllComponents(t *testing.T) {
	vitals := VitalSigns{
		RespiratoryRate: intPtr(32),
		SystolicBP:      intPtr(85),
	}
	rs := ScoreCURB65(vitals, 70, true, floatPtr(9.0))

	if rs.Score != 5 {
		t.Errorf("expected score 5, got %d", rs.Score)
	}
	if rs.MaxScore != 5 {
		t.Errorf("expected max 5, got %d", rs.MaxScore)
	}
	if rs.Interpretation != "High risk" {
		t.Errorf("expected High risk, got %s", rs.Interpretation)
	}
	if rs.MortalityRisk != "27.8%" {
		t.Errorf("expected 27.8%%, got %s", rs.MortalityRisk)
	}
}

func TestScoreCURB65_AbsentMeasurementsScoreZero(t *testing.T) {
	rs := ScoreCURB65(VitalSigns{}, 40, false, nil)
	if rs.Score != 0 {
		t.Errorf("expected 0, got %d", rs.Score)
	}
	if rs.Interpretation != "Low risk" {
		t.Errorf("expected Low risk, got %s", rs.Interpretation)
	}
	if rs.MortalityRisk != "<1%" {
		t.Errorf("expected <1%%, got %s", rs.MortalityRisk)
	}
}

func TestScoreCURB65_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		vitals VitalSigns
		age    int
		urea   *float64
		want   int
	}{
		{"urea exactly 7 does not score", VitalSigns{}, 40, floatPtr(7.0), 0},
		{"urea above 7 scores", VitalSigns{}, 40, floatPtr(7.1), 1},
		{"RR 29 does not score", VitalSigns{RespiratoryRate: intPtr(29)}, 40, nil, 0},
		{"RR 30 scores", VitalSigns{RespiratoryRate: intPtr(30)}, 40, nil, 1},
		{"SBP 90 does not score", VitalSigns{SystolicBP: intPtr(90)}, 40, nil, 0},
		{"SBP 89 scores", VitalSigns{SystolicBP: intPtr(89)}, 40, nil, 1},
		{"DBP 60 scores", VitalSigns{DiastolicBP: intPtr(60)}, 40, nil, 1},
		{"DBP 61 does not score", VitalSigns{DiastolicBP: intPtr(61)}, 40, nil, 0},
		{"age 64 does not score", VitalSigns{}, 64, nil, 0},
		{"age 65 scores", VitalSigns{}, 65, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := ScoreCURB65(tt.vitals, tt.age, false, tt.urea)
			if rs.Score != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rs.Score)
			}
		})
	}
}

func TestScoreQSOFA_GCSOverridesConfusionFlag(t *testing.T) {
	// GCS 15 present: confusion flag is ignored.
	rs := ScoreQSOFA(VitalSigns{GCS: intPtr(15)}, true)
	if rs.Components["Altered mentation"] != 0 {
		t.Errorf("GCS 15 should override confusion flag: %+v", rs.Components)
	}

	// GCS below 15 scores regardless of flag.
	rs = ScoreQSOFA(VitalSigns{GCS: intPtr(13)}, false)
	if rs.Components["Altered mentation"] != 1 {
		t.Errorf("GCS < 15 should score: %+v", rs.Components)
	}

	// No GCS: falls back to confusion flag.
	rs = ScoreQSOFA(VitalSigns{}, true)
	if rs.Components["Altered mentation"] != 1 {
		t.Errorf("confusion flag should score without GCS: %+v", rs.Components)
	}
}

func TestScoreQSOFA_Boundaries(t *testing.T) {
	rs := ScoreQSOFA(VitalSigns{RespiratoryRate: intPtr(22), SystolicBP: intPtr(100)}, false)
	if rs.Score != 2 {
		t.Errorf("RR 22 and SBP 100 should both score, got %d", rs.Score)
	}
	if rs.Interpretation == "Low risk" {
		t.Error("qSOFA 2 should be high risk")
	}
	if rs.MortalityRisk != ">10%" {
		t.Errorf("expected >10%%, got %s", rs.MortalityRisk)
	}

	rs = ScoreQSOFA(VitalSigns{RespiratoryRate: intPtr(21), SystolicBP: intPtr(101)}, false)
	if rs.Score != 0 {
		t.Errorf("RR 21 and SBP 101 should not score, got %d", rs.Score)
	}
}

func TestDecideAdmission_CAPRunsBothTools(t *testing.T) {
	resp := DecideAdmission(GroupCAP, VitalSigns{}, 40, false, nil)
	if len(resp.RiskScores) != 2 {
		t.Fatalf("expected CURB-65 and qSOFA, got %d tools", len(resp.RiskScores))
	}
	if resp.RiskScores[0].ToolName != "CURB-65" || resp.RiskScores[1].ToolName != "qSOFA" {
		t.Errorf("unexpected tools: %s, %s", resp.RiskScores[0].ToolName, resp.RiskScores[1].ToolName)
	}
}

func TestDecideAdmission_NonCAPOnlyQSOFA(t *testing.T) {
	resp := DecideAdmission(GroupHF, VitalSigns{}, 40, false, nil)
	if len(resp.RiskScores) != 1 || resp.RiskScores[0].ToolName != "qSOFA" {
		t.Fatalf("expected only qSOFA for non-CAP group, got %+v", resp.RiskScores)
	}
}

func TestDecideAdmission_DispositionLevels(t *testing.T) {
	tests := []struct {
		name      string
		vitals    VitalSigns
		age       int
		confusion bool
		urea      *float64
		wantRec   string
		wantRisk  string
	}{
		{
			name:     "all zero is outpatient",
			vitals:   VitalSigns{},
			age:      40,
			wantRec:  DispositionOutpatient,
			wantRisk: RiskLow,
		},
		{
			name:     "CURB-65 of 1 is observation",
			vitals:   VitalSigns{},
			age:      70,
			wantRec:  DispositionObservation,
			wantRisk: RiskModerate,
		},
		{
			name:     "CURB-65 of 2 is ward",
			vitals:   VitalSigns{},
			age:      70,
			urea:     floatPtr(9.0),
			wantRec:  DispositionWard,
			wantRisk: RiskHigh,
		},
		{
			name:      "CURB-65 of 3 is ICU",
			vitals:    VitalSigns{},
			age:       70,
			confusion: true,
			urea:      floatPtr(9.0),
			wantRec:   DispositionICU,
			wantRisk:  RiskCritical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := DecideAdmission(GroupCAP, tt.vitals, tt.age, tt.confusion, tt.urea)
			if resp.Recommendation != tt.wantRec {
				t.Errorf("expected %s, got %s", tt.wantRec, resp.Recommendation)
			}
			if resp.RiskLevel != tt.wantRisk {
				t.Errorf("expected %s, got %s", tt.wantRisk, resp.RiskLevel)
			}
		})
	}
}

func TestDecideAdmission_QSOFATwoOfThreeIsICU(t *testing.T) {
	// qSOFA 2/3 gives ratio 0.667, crossing the ICU boundary.
	vitals := VitalSigns{RespiratoryRate: intPtr(24), SystolicBP: intPtr(95)}
	resp := DecideAdmission(GroupHF, vitals, 50, false, nil)
	if resp.Recommendation != DispositionICU {
		t.Errorf("expected ICU, got %s", resp.Recommendation)
	}
}
