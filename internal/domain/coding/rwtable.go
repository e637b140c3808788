package coding

import "math"

// RWEntry is one ICD-10 code's relative weight and short name.
type RWEntry struct {
	Weight float64
	Name   string
}

// RWTable maps ICD-10 codes to reimbursement relative weights. Codes
// outside the table carry zero weight. Immutable configuration.
type RWTable map[string]RWEntry

// DefaultRWTable returns the built-in relative-weight lookup covering
// the pilot disease groups and their common secondary codes.
func DefaultRWTable() RWTable {
	return RWTable{
		"J18.9":  {Weight: 0.8956, Name: "Pneumonia"},
		"J18.0":  {Weight: 0.9234, Name: "Bronchopneumonia"},
		"A41.9":  {Weight: 2.1543, Name: "Sepsis"},
		"R65.20": {Weight: 3.2100, Name: "Severe sepsis"},
		"I50.9":  {Weight: 1.0245, Name: "Heart failure"},
		"I50.1":  {Weight: 1.1500, Name: "Left ventricular failure"},
		"I50.21": {Weight: 1.3200, Name: "Acute systolic HF"},
		"E11.65": {Weight: 0.7823, Name: "DM with hyperglycemia"},
		"E11.69": {Weight: 0.8100, Name: "DM with complications"},
		"E11.22": {Weight: 1.4500, Name: "DM with CKD"},
		"N17.9":  {Weight: 1.2345, Name: "AKI"},
		"N18.3":  {Weight: 0.9500, Name: "CKD stage 3"},
		"E87.2":  {Weight: 0.6700, Name: "Metabolic acidosis"},
		"E87.6":  {Weight: 0.5500, Name: "Hypokalemia"},
		"E87.5":  {Weight: 0.6800, Name: "Hyperkalemia"},
		"I10":    {Weight: 0.4500, Name: "Hypertension"},
		"E78.5":  {Weight: 0.3200, Name: "Dyslipidemia"},
		"D64.9":  {Weight: 0.5000, Name: "Anemia"},
		"J96.0":  {Weight: 2.5600, Name: "Acute respiratory failure"},
		"J90":    {Weight: 0.7800, Name: "Pleural effusion"},
	}
}

// RWImpact is the before/after reimbursement weight comparison for a
// set of suggested codes.
type RWImpact struct {
	RWBefore      float64 `json:"rw_before"`
	RWAfter       float64 `json:"rw_after"`
	Delta         float64 `json:"rw_delta"`
	RevenueImpact float64 `json:"revenue_impact_thb"`
}

// CalculateRW sums weights over the current codes, then over the union
// of current and suggested codes, and prices the delta at baseRate per
// RW unit. The after-sum deduplicates, so re-suggesting an existing
// code contributes nothing.
func CalculateRW(table RWTable, currentCodes, suggestedCodes []string, baseRate float64) RWImpact {
	before := 0.0
	for _, c := range currentCodes {
		before += table[c].Weight
	}

	union := make(map[string]bool, len(currentCodes)+len(suggestedCodes))
	for _, c := range currentCodes {
		union[c] = true
	}
	for _, c := range suggestedCodes {
		union[c] = true
	}
	after := 0.0
	for c := range union {
		after += table[c].Weight
	}

	delta := after - before
	return RWImpact{
		RWBefore:      round4(before),
		RWAfter:       round4(after),
		Delta:         round4(delta),
		RevenueImpact: round2(delta * baseRate),
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
