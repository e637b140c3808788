package coding

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chartsense/chartsense/internal/domain/record"
)

const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
)

const (
	documentationBonus = 0.05
	treatmentBonus     = 0.05
	confidenceCap      = 0.95
)

// CodeSuggestion is one proposed secondary diagnosis code with the
// evidence behind it and its standalone reimbursement weight.
type CodeSuggestion struct {
	ID          int      `json:"id"`
	ICDCode     string   `json:"icd_code"`
	Description string   `json:"description"`
	DxType      string   `json:"dx_type"`
	Confidence  float64  `json:"confidence"`
	Evidence    []string `json:"evidence"`
	RWImpact    float64  `json:"rw_impact"`
	Status      string   `json:"status"`
}

// suggestionRule links a lab threshold to a missing diagnosis code.
type suggestionRule struct {
	Lab            string
	Op             string
	Threshold      float64
	Code           string
	Description    string
	BaseConfidence float64
}

var defaultSuggestionRules = []suggestionRule{
	{Lab: "Creatinine", Op: ">=", Threshold: 1.5, Code: "N17.9", Description: "Acute Kidney Injury", BaseConfidence: 0.75},
	{Lab: "FBS", Op: ">=", Threshold: 126, Code: "E11.9", Description: "DM Type 2", BaseConfidence: 0.70},
	{Lab: "HbA1c", Op: ">=", Threshold: 6.5, Code: "E11.65", Description: "DM with Hyperglycemia", BaseConfidence: 0.80},
	{Lab: "Potassium", Op: "<", Threshold: 3.5, Code: "E87.6", Description: "Hypokalemia", BaseConfidence: 0.85},
	{Lab: "Potassium", Op: ">", Threshold: 5.5, Code: "E87.5", Description: "Hyperkalemia", BaseConfidence: 0.85},
	{Lab: "Hemoglobin", Op: "<", Threshold: 10, Code: "D64.9", Description: "Anemia, Unspecified", BaseConfidence: 0.70},
	{Lab: "BNP", Op: ">", Threshold: 400, Code: "I50.9", Description: "Heart Failure", BaseConfidence: 0.80},
	{Lab: "Procalcitonin", Op: ">", Threshold: 2.0, Code: "A41.9", Description: "Sepsis", BaseConfidence: 0.75},
}

// Suggest walks the lab-threshold catalog against a snapshot and
// returns secondary code suggestions for triggered thresholds whose
// code the chart does not already carry. IDs are 1-based positions in
// the returned slice.
func Suggest(table RWTable, snap *record.Snapshot) []CodeSuggestion {
	labs := make(map[string]float64)
	for _, obs := range snap.Observations {
		if obs.Type != record.ObsTypeLab {
			continue
		}
		val, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		labs[obs.Code] = val
	}

	current := snap.DiagnosisCodes()
	hasNotes := len(snap.Notes) > 0
	hasOrders := len(snap.Orders) > 0

	suggestions := []CodeSuggestion{}
	for _, rule := range defaultSuggestionRules {
		val, ok := labs[rule.Lab]
		if !ok {
			continue
		}
		triggered := false
		switch rule.Op {
		case ">=":
			triggered = val >= rule.Threshold
		case ">":
			triggered = val > rule.Threshold
		case "<":
			triggered = val < rule.Threshold
		}
		if !triggered || current[rule.Code] {
			continue
		}

		confidence := rule.BaseConfidence
		evidence := []string{
			fmt.Sprintf("%s = %g (%s %g)", rule.Lab, val, rule.Op, rule.Threshold),
			"derived from laboratory results",
		}
		if hasNotes {
			confidence += documentationBonus
			evidence = append(evidence, "supported by progress notes")
		}
		if hasOrders {
			confidence += treatmentBonus
			evidence = append(evidence, "consistent treatment orders on file")
		}

		suggestions = append(suggestions, CodeSuggestion{
			ID:          len(suggestions) + 1,
			ICDCode:     rule.Code,
			Description: rule.Description,
			DxType:      record.DxTypeSecondary,
			Confidence:  round3(math.Min(confidence, confidenceCap)),
			Evidence:    evidence,
			RWImpact:    round4(table[rule.Code].Weight),
			Status:      StatusPending,
		})
	}
	return suggestions
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
