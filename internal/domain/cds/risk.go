package cds

// Disposition recommendations ordered by escalating risk.
const (
	DispositionOutpatient  = "OUTPATIENT"
	DispositionObservation = "OBSERVATION"
	DispositionWard        = "WARD"
	DispositionICU         = "ICU"
)

const (
	RiskLow      = "LOW"
	RiskModerate = "MODERATE"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

var curb65Mortality = map[int]string{
	0: "<1%", 1: "2.7%", 2: "6.8%", 3: "14%", 4: "27.8%", 5: "27.8%",
}

// ScoreCURB65 computes the CURB-65 pneumonia severity score. Absent
// measurements contribute zero.
func ScoreCURB65(vitals VitalSigns, age int, confusion bool, urea *float64) RiskScoreDetail {
	c := boolScore(confusion)
	u := boolScore(urea != nil && *urea > 7)
	r := boolScore(vitals.RespiratoryRate != nil && *vitals.RespiratoryRate >= 30)
	b := boolScore((vitals.SystolicBP != nil && *vitals.SystolicBP < 90) ||
		(vitals.DiastolicBP != nil && *vitals.DiastolicBP <= 60))
	a := boolScore(age >= 65)
	total := c + u + r + b + a

	interpretation := "High risk"
	switch {
	case total <= 1:
		interpretation = "Low risk"
	case total == 2:
		interpretation = "Moderate risk"
	}

	mortality, ok := curb65Mortality[total]
	if !ok {
		mortality = "N/A"
	}

	return RiskScoreDetail{
		ToolName: "CURB-65",
		Score:    total,
		MaxScore: 5,
		Components: map[string]int{
			"Confusion": c,
			"Urea>7":    u,
			"RR>=30":    r,
			"BP<90/60":  b,
			"Age>=65":   a,
		},
		Interpretation: interpretation,
		MortalityRisk:  mortality,
	}
}

// ScoreQSOFA computes the quick SOFA sepsis screen. Altered mentation
// comes from a GCS reading below 15 when one exists, otherwise from
// the supplied confusion flag.
func ScoreQSOFA(vitals VitalSigns, confusion bool) RiskScoreDetail {
	rr := boolScore(vitals.RespiratoryRate != nil && *vitals.RespiratoryRate >= 22)
	bp := boolScore(vitals.SystolicBP != nil && *vitals.SystolicBP <= 100)
	var mentation int
	if vitals.GCS != nil {
		mentation = boolScore(*vitals.GCS < 15)
	} else {
		mentation = boolScore(confusion)
	}
	total := rr + bp + mentation

	interpretation := "Low risk"
	mortality := "<10%"
	if total >= 2 {
		interpretation = "High risk — evaluate for sepsis"
		mortality = ">10%"
	}

	return RiskScoreDetail{
		ToolName: "qSOFA",
		Score:    total,
		MaxScore: 3,
		Components: map[string]int{
			"RR>=22":            rr,
			"SBP<=100":          bp,
			"Altered mentation": mentation,
		},
		Interpretation: interpretation,
		MortalityRisk:  mortality,
	}
}

// DecideAdmission runs the applicable scoring tools for a disease
// group (CURB-65 only applies to the CAP group; qSOFA always runs) and
// maps the worst score ratio onto a disposition.
func DecideAdmission(group string, vitals VitalSigns, age int, confusion bool, urea *float64) AdmissionDecisionResponse {
	var scores []RiskScoreDetail
	if group == GroupCAP {
		scores = append(scores, ScoreCURB65(vitals, age, confusion, urea))
	}
	scores = append(scores, ScoreQSOFA(vitals, confusion))

	// Disposition follows the highest raw score across tools,
	// normalized by the largest tool maximum in play.
	maxScore, totalMax := 0, 0
	for _, rs := range scores {
		if rs.Score > maxScore {
			maxScore = rs.Score
		}
		if rs.MaxScore > totalMax {
			totalMax = rs.MaxScore
		}
	}
	ratio := 0.0
	if totalMax > 0 {
		ratio = float64(maxScore) / float64(totalMax)
	}

	var resp AdmissionDecisionResponse
	switch {
	case ratio >= 0.6:
		resp = AdmissionDecisionResponse{
			Recommendation: DispositionICU,
			RiskLevel:      RiskCritical,
			SuggestedWard:  "ICU / CCU",
			Reasoning:      "High risk score; admit to ICU for close monitoring",
		}
	case ratio >= 0.4:
		resp = AdmissionDecisionResponse{
			Recommendation: DispositionWard,
			RiskLevel:      RiskHigh,
			SuggestedWard:  "Medicine Ward",
			Reasoning:      "Moderate-to-high risk score; admit to a general ward",
		}
	case ratio >= 0.2:
		resp = AdmissionDecisionResponse{
			Recommendation: DispositionObservation,
			RiskLevel:      RiskModerate,
			SuggestedWard:  "Observation Unit",
			Reasoning:      "Moderate risk score; observe before deciding on admission",
		}
	default:
		resp = AdmissionDecisionResponse{
			Recommendation: DispositionOutpatient,
			RiskLevel:      RiskLow,
			SuggestedWard:  "OPD Follow-up",
			Reasoning:      "Low risk score; suitable for outpatient management",
		}
	}
	resp.RiskScores = scores
	return resp
}

func boolScore(b bool) int {
	if b {
		return 1
	}
	return 0
}
