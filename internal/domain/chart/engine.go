package chart

import (
	"math"
	"strconv"

	"github.com/chartsense/chartsense/internal/domain/record"
)

// Category weights in the blended total. They sum to 1.
var categoryWeights = map[string]float64{
	CategoryDiagnosis:     0.30,
	CategoryProcedure:     0.20,
	CategoryConsistency:   0.25,
	CategoryDocumentation: 0.25,
}

type Gap struct {
	RuleID          string `json:"rule_id"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	Severity        string `json:"severity"`
	SuggestedAction string `json:"suggested_action,omitempty"`
	SuggestedCode   string `json:"suggested_code,omitempty"`
}

type CategoryBreakdown struct {
	Category      string  `json:"category"`
	Score         float64 `json:"score"`
	MaxScore      float64 `json:"max_score"`
	Weight        float64 `json:"weight"`
	ItemsFound    int     `json:"items_found"`
	ItemsExpected int     `json:"items_expected"`
}

type ScoreResult struct {
	TotalScore float64             `json:"total_score"`
	Grade      string              `json:"grade"`
	Breakdown  []CategoryBreakdown `json:"breakdown"`
	Gaps       []Gap               `json:"gaps"`
}

// Engine evaluates one rule catalog against encounter snapshots.
type Engine struct {
	rules []Rule
}

func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

func (e *Engine) Rules() []Rule {
	return e.rules
}

// Evaluate scores a snapshot against every active rule and returns the
// blended completeness score, per-category breakdown, and the gaps
// behind every failed rule.
func (e *Engine) Evaluate(snap *record.Snapshot) *ScoreResult {
	labs := make(map[string]float64)
	vitals := make(map[string]float64)
	for _, obs := range snap.Observations {
		val, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		switch obs.Type {
		case record.ObsTypeLab:
			labs[obs.Code] = val
		case record.ObsTypeVital:
			vitals[obs.Code] = val
		}
	}

	dxCodes := snap.DiagnosisCodes()
	state := chartState{
		snap:   snap,
		labs:   labs,
		vitals: vitals,
		codes:  dxCodes,
		hasPDx: snap.HasPrimaryDiagnosis(),
	}

	earned := map[string]float64{}
	possible := map[string]float64{}
	gaps := []Gap{}

	for _, rule := range e.rules {
		if !rule.Active {
			continue
		}
		possible[rule.Category] += rule.Weight
		if state.passes(rule.Condition) {
			earned[rule.Category] += rule.Weight
			continue
		}
		severity := SeverityWarning
		if rule.Weight >= 10 {
			severity = SeverityCritical
		}
		action, code := suggestion(rule.Condition)
		gaps = append(gaps, Gap{
			RuleID:          rule.ID,
			Category:        rule.Category,
			Description:     rule.Name,
			Severity:        severity,
			SuggestedAction: action,
			SuggestedCode:   code,
		})
	}

	total := 0.0
	breakdown := make([]CategoryBreakdown, 0, len(categoryWeights))
	for _, cat := range []string{CategoryDiagnosis, CategoryProcedure, CategoryConsistency, CategoryDocumentation} {
		weight := categoryWeights[cat]
		pct := 100.0
		if possible[cat] > 0 {
			pct = earned[cat] / possible[cat] * 100
		}
		total += pct * weight
		breakdown = append(breakdown, CategoryBreakdown{
			Category:      cat,
			Score:         round1(pct),
			MaxScore:      100.0,
			Weight:        weight,
			ItemsFound:    int(earned[cat]),
			ItemsExpected: int(possible[cat]),
		})
	}

	return &ScoreResult{
		TotalScore: round1(total),
		Grade:      gradeFor(total),
		Breakdown:  breakdown,
		Gaps:       gaps,
	}
}

type chartState struct {
	snap   *record.Snapshot
	labs   map[string]float64
	vitals map[string]float64
	codes  map[string]bool
	hasPDx bool
}

// passes is fail-open: conditions the engine cannot assess (unknown
// fields, absent measurements, unknown triggers and checks) pass.
func (s chartState) passes(c Condition) bool {
	switch v := c.(type) {
	case RequiredField:
		switch v.Field {
		case "primary_dx":
			return s.hasPDx
		case "daily_notes":
			return len(s.snap.Notes) > 0
		case "vitals_complete":
			return len(s.vitals) >= 3
		case "allergy_documented":
			return true
		}
		return true

	case LabThreshold:
		val, ok := s.labs[v.LabCode]
		if !ok {
			return true
		}
		if v.Operator == OpIncreaseFromBaseline {
			// No baseline feed yet: degrades to a presence check.
			return s.codes[v.SuggestedCode]
		}
		if compare(val, v.Operator, v.Threshold) {
			return s.codes[v.SuggestedCode]
		}
		return true

	case VitalThreshold:
		val, ok := s.vitals[v.VitalCode]
		if !ok {
			return true
		}
		if v.Operator == OpGTE && val >= v.Threshold {
			return s.codes[v.SuggestedCode]
		}
		return true

	case RequiredIf:
		if v.Trigger == "discharged" && s.snap.Status == record.StatusDischarged {
			return len(s.snap.Notes) > 0
		}
		return true

	case ConsistencyCheck:
		switch v.Check {
		case "dx_lab_match":
			return len(s.snap.Diagnoses) > 0 && len(s.snap.Observations) > 0
		case "dx_med_match":
			return len(s.snap.Diagnoses) > 0 && len(s.snap.Orders) > 0
		}
		return true

	case ScoreThreshold:
		return true
	}
	return true
}

func compare(val float64, op string, threshold float64) bool {
	switch op {
	case OpGTE:
		return val >= threshold
	case OpGT:
		return val > threshold
	case OpLT:
		return val < threshold
	}
	return false
}

func gradeFor(total float64) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 75:
		return "B"
	case total >= 60:
		return "C"
	case total >= 40:
		return "D"
	}
	return "F"
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
